package mysql

import (
	"time"

	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create 建社区并把创建者作为社区管理员加入，同一事务
func (r *CommunityRepository) Create(c *model.Community) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Create(&model.CommunityMembership{
			CommunityID: c.ID,
			UserID:      c.CreatedBy,
			Role:        model.MemberRoleAdmin,
			IsActive:    true,
			JoinedAt:    time.Now(),
		}).Error
	})
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

// List 只列 active 社区，search 同时匹配名称/描述/地区
func (r *CommunityRepository) List(search string, offset, limit int) ([]model.Community, error) {
	q := r.DB.Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ? OR location LIKE ?", like, like, like)
	}
	var list []model.Community
	err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *CommunityRepository) Save(c *model.Community) error {
	return r.DB.Save(c).Error
}
