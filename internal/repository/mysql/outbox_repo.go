package mysql

import (
	"context"
	"encoding/json"

	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// Insert 事件与业务写同事务落库
func (r *OutboxRepository) Insert(eventType string, actorID, subjectID uint64, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.DB.Create(&model.ReviewOutbox{
		EventType: eventType,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(raw),
	}).Error
}

func (r *OutboxRepository) List(ctx context.Context, limit int) ([]model.ReviewOutbox, error) {
	var rows []model.ReviewOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").Order("id").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ReviewOutbox{}).
		Where("id = ?", id).Update("status", 1).Error
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ReviewOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"retry": gorm.Expr("retry + 1")}).Error
}
