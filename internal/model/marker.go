package model

import "time"

type Marker struct {
	ID           uint64  `gorm:"primaryKey"`
	RecitationID uint64  `gorm:"not null;index"`
	ScholarID    uint64  `gorm:"not null;index"`
	Timestamp    float64 `gorm:"not null"`
	Label        string  `gorm:"size:128;not null"`
	Description  string  `gorm:"size:255"`
	Category     string  `gorm:"size:32;not null;default:general"`
	Color        string  `gorm:"size:16;not null;default:#f59e0b"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (m *Marker) AuthoredBy() (uint64, bool) { return m.ScholarID, true }

// LoopRegion 循环练习区间，约束 StartTime < EndTime
type LoopRegion struct {
	ID           uint64  `gorm:"primaryKey"`
	RecitationID uint64  `gorm:"not null;index"`
	ScholarID    uint64  `gorm:"not null;index"`
	StartTime    float64 `gorm:"not null"`
	EndTime      float64 `gorm:"not null"`
	Label        string  `gorm:"size:128;not null"`
	Color        string  `gorm:"size:16;not null;default:#10b981"`
	IsActive     bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (l *LoopRegion) AuthoredBy() (uint64, bool) { return l.ScholarID, true }
