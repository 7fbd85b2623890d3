package model

import "time"

// ReviewOutbox 领域事件暂存表，和业务写同事务落库，由 relayer 投递 kafka
type ReviewOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // recitation_reviewed / member_joined / member_left
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"` // 事件对象：诵读ID或社区ID
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReviewOutbox) TableName() string { return "review_outbox" }
