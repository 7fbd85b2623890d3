package service

import (
	"errors"
	"time"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type FeedbackService struct {
	repo *mysql.FeedbackRepository
}

func NewFeedbackService() *FeedbackService {
	return &FeedbackService{
		repo: &mysql.FeedbackRepository{DB: mysql.DB},
	}
}

type FeedbackCreate struct {
	FeedbackType  string `json:"feedback_type" binding:"required,oneof=bug_report feature_request general"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Priority      string `json:"priority"`
	ContactEmail  string `json:"contact_email"`
	ContactName   string `json:"contact_name"`
	BrowserInfo   string `json:"browser_info"`
	DeviceInfo    string `json:"device_info"`
	ScreenshotURL string `json:"screenshot_url"`
}

// Create 支持匿名提交（actor 为 nil）
func (s *FeedbackService) Create(actor *authz.Actor, in *FeedbackCreate) (*model.UserFeedback, error) {
	f := &model.UserFeedback{
		FeedbackType:  in.FeedbackType,
		Title:         in.Title,
		Description:   in.Description,
		Priority:      in.Priority,
		Status:        model.FeedbackOpen,
		ContactEmail:  in.ContactEmail,
		ContactName:   in.ContactName,
		BrowserInfo:   in.BrowserInfo,
		DeviceInfo:    in.DeviceInfo,
		ScreenshotURL: in.ScreenshotURL,
	}
	if f.Priority == "" {
		f.Priority = "medium"
	}
	if actor != nil {
		id := actor.ID
		f.UserID = &id
	}
	if err := s.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// List 管理员看全部，普通用户只看自己的
func (s *FeedbackService) List(actor *authz.Actor, filter mysql.FeedbackFilter, page, size int) ([]model.UserFeedback, error) {
	if !actor.Admin() {
		id := actor.ID
		filter.OwnerID = &id
	}
	offset, limit := pageToRange(page, size)
	return s.repo.List(filter, offset, limit)
}

func (s *FeedbackService) Get(actor *authz.Actor, id uint64) (*model.UserFeedback, error) {
	f, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Admin() && !authz.Owns(actor, f) {
		return nil, apperr.ErrForbidden
	}
	return f, nil
}

type FeedbackUpdate struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
	AdminResponse *string `json:"admin_response"`
}

// Update 管理员可改任何字段；提交者只有在 open 状态下能改标题/描述，
// 其余字段和非 open 状态一律拒绝
func (s *FeedbackService) Update(actor *authz.Actor, id uint64, in *FeedbackUpdate) (*model.UserFeedback, error) {
	f, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if actor.Admin() {
		if in.Title != nil {
			f.Title = *in.Title
		}
		if in.Description != nil {
			f.Description = *in.Description
		}
		if in.Priority != nil {
			f.Priority = *in.Priority
		}
		if in.Status != nil {
			switch *in.Status {
			case model.FeedbackOpen, model.FeedbackInProgress, model.FeedbackResolved, model.FeedbackClosed:
			default:
				return nil, apperr.Validationf("unknown status")
			}
			f.Status = *in.Status
		}
		if in.AdminResponse != nil {
			f.AdminResponse = *in.AdminResponse
			resolver := actor.ID
			now := time.Now()
			f.ResolvedBy = &resolver
			f.ResolvedAt = &now
		}
	} else {
		if !authz.Owns(actor, f) {
			return nil, apperr.ErrForbidden
		}
		if f.Status != model.FeedbackOpen {
			return nil, apperr.ErrForbidden
		}
		if in.Priority != nil || in.Status != nil || in.AdminResponse != nil {
			return nil, apperr.ErrForbidden
		}
		if in.Title != nil {
			f.Title = *in.Title
		}
		if in.Description != nil {
			f.Description = *in.Description
		}
	}

	if err = s.repo.Save(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) Delete(actor *authz.Actor, id uint64) error {
	f, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !actor.Admin() && !authz.Owns(actor, f) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(id)
}

func (s *FeedbackService) Stats(actor *authz.Actor) (*mysql.FeedbackStats, error) {
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}
	return s.repo.Stats()
}
