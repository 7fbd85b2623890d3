package model

import "time"

// Comment 学者对诵读的点评。ScholarID 是点评作者，UserID 冗余存诵读
// 归属用户，读权限判断时免去一次回表。
type Comment struct {
	ID               uint64  `gorm:"primaryKey"`
	RecitationID     uint64  `gorm:"not null;index"`
	ScholarID        uint64  `gorm:"not null;index"`
	UserID           uint64  `gorm:"not null;index"`
	Timestamp        float64 `gorm:"not null"` // 点评位置（秒）
	TextComment      string  `gorm:"type:text"`
	AudioCommentPath string  `gorm:"size:255"`
	IsResolved       bool    `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (c *Comment) OwnedBy() (uint64, bool)    { return c.UserID, true }
func (c *Comment) AuthoredBy() (uint64, bool) { return c.ScholarID, true }
