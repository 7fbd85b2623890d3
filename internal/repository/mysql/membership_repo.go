package mysql

import (
	"context"
	"errors"
	"time"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// Join 成员生命周期：无记录则新建 active；inactive 则复活并清空 left_at；
// active 则报 AlreadyMember。唯一索引兜底并发插入，复活用带条件更新 +
// RowsAffected 判定，保证 (community, user) 至多一行 active。
func (r *MembershipRepository) Join(ctx context.Context, communityID, userID uint64, role string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.CommunityMembership
		err := tx.Where("community_id = ? AND user_id = ?", communityID, userID).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = model.CommunityMembership{
				CommunityID: communityID,
				UserID:      userID,
				Role:        role,
				IsActive:    true,
				JoinedAt:    time.Now(),
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).Create(&m)
			if res.Error != nil {
				return res.Error
			}
			// 冲突说明并发方已抢先加入
			if res.RowsAffected == 0 {
				return apperr.ErrAlreadyMember
			}
			return r.insertOutbox(tx, "member_joined", userID, communityID)
		}
		if err != nil {
			return err
		}
		if m.IsActive {
			return apperr.ErrAlreadyMember
		}
		res := tx.Model(&model.CommunityMembership{}).
			Where("id = ? AND is_active = ?", m.ID, false).
			Updates(map[string]any{"is_active": true, "left_at": nil})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrAlreadyMember
		}
		return r.insertOutbox(tx, "member_joined", userID, communityID)
	})
}

// Leave 仅 active 行可退出；重复退出命中 RowsAffected==0，报 NotMember
func (r *MembershipRepository) Leave(ctx context.Context, communityID, userID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&model.CommunityMembership{}).
			Where("community_id = ? AND user_id = ? AND is_active = ?", communityID, userID, true).
			Updates(map[string]any{"is_active": false, "left_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotMember
		}
		return r.insertOutbox(tx, "member_left", userID, communityID)
	})
}

func (r *MembershipRepository) Find(communityID, userID uint64) (*model.CommunityMembership, error) {
	var m model.CommunityMembership
	err := r.DB.Where("community_id = ? AND user_id = ?", communityID, userID).First(&m).Error
	return &m, err
}

func (r *MembershipRepository) IsActiveMember(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMembership{}).
		Where("community_id = ? AND user_id = ? AND is_active = ?", communityID, userID, true).
		Count(&count).Error
	return count > 0, err
}

// IsActiveAdmin 是否是该社区的 active 管理员成员
func (r *MembershipRepository) IsActiveAdmin(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMembership{}).
		Where("community_id = ? AND user_id = ? AND role = ? AND is_active = ?",
			communityID, userID, model.MemberRoleAdmin, true).
		Count(&count).Error
	return count > 0, err
}

func (r *MembershipRepository) ListActiveByUser(userID uint64) ([]model.CommunityMembership, error) {
	var list []model.CommunityMembership
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(&list).Error
	return list, err
}

func (r *MembershipRepository) CountActive(communityID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMembership{}).
		Where("community_id = ? AND is_active = ?", communityID, true).
		Count(&count).Error
	return count, err
}

// CountActiveScholars 社区内学者/管理员数量（按平台角色）
func (r *MembershipRepository) CountActiveScholars(communityID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMembership{}).
		Joins("JOIN users ON users.id = community_memberships.user_id").
		Where("community_memberships.community_id = ? AND community_memberships.is_active = ?", communityID, true).
		Where("users.role IN ?", []model.Role{model.RoleScholar, model.RoleAdmin}).
		Count(&count).Error
	return count, err
}

func (r *MembershipRepository) ListActiveMembers(communityID uint64) ([]model.User, error) {
	var users []model.User
	err := r.DB.Model(&model.User{}).
		Joins("JOIN community_memberships ON community_memberships.user_id = users.id").
		Where("community_memberships.community_id = ? AND community_memberships.is_active = ?", communityID, true).
		Find(&users).Error
	return users, err
}

func (r *MembershipRepository) insertOutbox(tx *gorm.DB, eventType string, userID, communityID uint64) error {
	ob := &OutboxRepository{DB: tx}
	return ob.Insert(eventType, userID, communityID, map[string]any{
		"community_id": communityID,
		"user_id":      userID,
	})
}
