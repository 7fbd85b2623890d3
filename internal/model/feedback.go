package model

import "time"

const (
	FeedbackOpen       = "open"
	FeedbackInProgress = "in_progress"
	FeedbackResolved   = "resolved"
	FeedbackClosed     = "closed"
)

// UserFeedback 用户反馈，UserID 可空以支持匿名提交
type UserFeedback struct {
	ID            uint64  `gorm:"primaryKey"`
	UserID        *uint64 `gorm:"index"`
	FeedbackType  string  `gorm:"size:32;not null"` // bug_report / feature_request / general
	Title         string  `gorm:"size:128;not null"`
	Description   string  `gorm:"type:text;not null"`
	Priority      string  `gorm:"size:16;not null;default:medium"`
	Status        string  `gorm:"size:16;not null;default:open;index"`
	ContactEmail  string  `gorm:"size:64"`
	ContactName   string  `gorm:"size:64"`
	BrowserInfo   string  `gorm:"type:text"`
	DeviceInfo    string  `gorm:"type:text"`
	ScreenshotURL string  `gorm:"size:255"`
	AdminResponse string  `gorm:"type:text"`
	ResolvedBy    *uint64
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (f *UserFeedback) TableName() string { return "user_feedback" }

func (f *UserFeedback) OwnedBy() (uint64, bool) {
	if f.UserID == nil {
		return 0, false
	}
	return *f.UserID, true
}
