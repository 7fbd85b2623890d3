package model

import "time"

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null;index"`
	Description string `gorm:"type:text"`
	Address     string `gorm:"type:text"`
	Location    string `gorm:"size:128"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedBy   uint64 `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Community) OwnedBy() (uint64, bool) { return c.CreatedBy, true }

// 社区内角色，和平台 Role 无关
const (
	MemberRoleMember = "member"
	MemberRoleAdmin  = "admin"
)

// CommunityMembership 软删除成员关系：退出置 is_active=false，
// 重新加入复用同一行。(community_id, user_id) 最多一行。
type CommunityMembership struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        string `gorm:"size:16;not null;default:member"`
	IsActive    bool   `gorm:"not null;default:true"`
	JoinedAt    time.Time
	LeftAt      *time.Time
	UpdatedAt   time.Time
}

func (m *CommunityMembership) TableName() string { return "community_memberships" }

func (m *CommunityMembership) OwnedBy() (uint64, bool) { return m.UserID, true }
