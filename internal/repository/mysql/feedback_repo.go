package mysql

import (
	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

// FeedbackFilter 列表过滤条件；OwnerID 非 nil 时只看自己的
type FeedbackFilter struct {
	OwnerID  *uint64
	Category string
	Priority string
	Status   string
	Search   string
}

func (r *FeedbackRepository) Create(f *model.UserFeedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) FindByID(id uint64) (*model.UserFeedback, error) {
	var f model.UserFeedback
	err := r.DB.First(&f, id).Error
	return &f, err
}

func (r *FeedbackRepository) List(filter FeedbackFilter, offset, limit int) ([]model.UserFeedback, error) {
	q := r.DB.Model(&model.UserFeedback{})
	if filter.OwnerID != nil {
		q = q.Where("user_id = ?", *filter.OwnerID)
	}
	if filter.Category != "" {
		q = q.Where("feedback_type = ?", filter.Category)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	var list []model.UserFeedback
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *FeedbackRepository) Save(f *model.UserFeedback) error {
	return r.DB.Save(f).Error
}

func (r *FeedbackRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.UserFeedback{}, id).Error
}

type FeedbackStats struct {
	TotalFeedback      int64 `json:"total_feedback"`
	OpenFeedback       int64 `json:"open_feedback"`
	InProgressFeedback int64 `json:"in_progress_feedback"`
	ResolvedFeedback   int64 `json:"resolved_feedback"`
	BugReports         int64 `json:"bug_reports"`
	FeatureRequests    int64 `json:"feature_requests"`
	GeneralFeedback    int64 `json:"general_feedback"`
	HighPriority       int64 `json:"high_priority"`
}

func (r *FeedbackRepository) Stats() (*FeedbackStats, error) {
	var s FeedbackStats
	counts := []struct {
		dst  *int64
		cond []any
	}{
		{&s.TotalFeedback, nil},
		{&s.OpenFeedback, []any{"status = ?", model.FeedbackOpen}},
		{&s.InProgressFeedback, []any{"status = ?", model.FeedbackInProgress}},
		{&s.ResolvedFeedback, []any{"status = ?", model.FeedbackResolved}},
		{&s.BugReports, []any{"feedback_type = ?", "bug_report"}},
		{&s.FeatureRequests, []any{"feedback_type = ?", "feature_request"}},
		{&s.GeneralFeedback, []any{"feedback_type = ?", "general"}},
		{&s.HighPriority, []any{"priority = ?", "high"}},
	}
	for _, c := range counts {
		q := r.DB.Model(&model.UserFeedback{})
		if c.cond != nil {
			q = q.Where(c.cond[0], c.cond[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
