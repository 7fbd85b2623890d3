package model

import "time"

type RecitationStatus string

const (
	RecitationPending       RecitationStatus = "pending"
	RecitationReviewed      RecitationStatus = "reviewed"
	RecitationNeedsRevision RecitationStatus = "needs_revision"
)

type Recitation struct {
	ID            uint64           `gorm:"primaryKey"`
	UserID        uint64           `gorm:"not null;index:idx_user_time"`
	SurahName     string           `gorm:"size:64;not null"`
	AyahStart     int              `gorm:"not null"`
	AyahEnd       int              `gorm:"not null"`
	AudioFilePath string           `gorm:"size:255"`
	AudioData     string           `gorm:"type:text"` // 小文件的 base64 音频
	Duration      float64          ``
	Status        RecitationStatus `gorm:"size:16;not null;default:pending;index"`
	CreatedAt     time.Time        `gorm:"index:idx_user_time"`
	UpdatedAt     time.Time
}

// OwnedBy 归属者=上传用户
func (r *Recitation) OwnedBy() (uint64, bool) { return r.UserID, true }
