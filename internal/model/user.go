package model

import "time"

type Role string

const (
	RoleUser    Role = "user"
	RoleScholar Role = "scholar"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID         uint64 `gorm:"primaryKey"`
	Email      string `gorm:"uniqueIndex;size:64;not null"`
	Username   string `gorm:"uniqueIndex;size:32;not null"`
	Password   string `gorm:"size:255;not null"`
	FullName   string `gorm:"size:64"`
	Role       Role   `gorm:"size:16;not null;default:user"`
	IsActive   bool   `gorm:"not null;default:true"`
	IsVerified bool   `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
