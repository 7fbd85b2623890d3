package mysql

import (
	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type RecitationRepository struct {
	DB *gorm.DB
}

func (r *RecitationRepository) Create(rec *model.Recitation) error {
	return r.DB.Create(rec).Error
}

func (r *RecitationRepository) FindByID(id uint64) (*model.Recitation, error) {
	var rec model.Recitation
	err := r.DB.First(&rec, id).Error
	return &rec, err
}

func (r *RecitationRepository) ListByUser(userID uint64, offset, limit int) ([]model.Recitation, error) {
	var list []model.Recitation
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *RecitationRepository) ListByStatus(status model.RecitationStatus, offset, limit int) ([]model.Recitation, error) {
	var list []model.Recitation
	err := r.DB.Where("status = ?", status).
		Order("created_at").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// Save 整条回写，状态流转在同事务写 outbox
func (r *RecitationRepository) Save(rec *model.Recitation, reviewed bool, actorID uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rec).Error; err != nil {
			return err
		}
		if !reviewed {
			return nil
		}
		ob := &OutboxRepository{DB: tx}
		return ob.Insert("recitation_reviewed", actorID, rec.ID, map[string]any{
			"recitation_id": rec.ID,
			"status":        rec.Status,
		})
	})
}
