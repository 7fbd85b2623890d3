package mysql

import (
	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(c *model.Comment) error {
	return r.DB.Create(c).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CommentRepository) ListByRecitation(recitationID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("recitation_id = ?", recitationID).Order("timestamp").Find(&list).Error
	return list, err
}

// ListBySubject 某用户收到的全部点评（冗余 user_id 的用途）
func (r *CommentRepository) ListBySubject(userID uint64, offset, limit int) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *CommentRepository) Save(c *model.Comment) error {
	return r.DB.Save(c).Error
}

func (r *CommentRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
