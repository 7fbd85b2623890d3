package service

import (
	"errors"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService struct {
	repo    *mysql.CommentRepository
	recRepo *mysql.RecitationRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo:    &mysql.CommentRepository{DB: mysql.DB},
		recRepo: &mysql.RecitationRepository{DB: mysql.DB},
	}
}

type CommentCreate struct {
	RecitationID     uint64  `json:"recitation_id" binding:"required"`
	Timestamp        float64 `json:"timestamp"`
	TextComment      string  `json:"text_comment"`
	AudioCommentPath string  `json:"audio_comment_path"`
}

// Create 仅学者/管理员可点评；冗余记录诵读归属者方便读权限判断
func (s *CommentService) Create(actor *authz.Actor, in *CommentCreate) (*model.Comment, error) {
	rec, err := s.recRepo.FindByID(in.RecitationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}

	c := &model.Comment{
		RecitationID:     rec.ID,
		ScholarID:        actor.ID,
		UserID:           rec.UserID,
		Timestamp:        in.Timestamp,
		TextComment:      in.TextComment,
		AudioCommentPath: in.AudioCommentPath,
	}
	if err = s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) ListForRecitation(actor *authz.Actor, recitationID uint64) ([]model.Comment, error) {
	rec, err := s.recRepo.FindByID(recitationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.CanRead(actor, rec) {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListByRecitation(recitationID)
}

// ListMine 自己收到的点评
func (s *CommentService) ListMine(actor *authz.Actor, page, size int) ([]model.Comment, error) {
	offset, limit := pageToRange(page, size)
	return s.repo.ListBySubject(actor.ID, offset, limit)
}

// CommentUpdate 部分更新
type CommentUpdate struct {
	TextComment      *string `json:"text_comment"`
	AudioCommentPath *string `json:"audio_comment_path"`
	IsResolved       *bool   `json:"is_resolved"`
}

// Update 作者或管理员可改（含 resolved 翻转）
func (s *CommentService) Update(actor *authz.Actor, id uint64, in *CommentUpdate) (*model.Comment, error) {
	c, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.CanEdit(actor, c) {
		return nil, apperr.ErrForbidden
	}

	if in.TextComment != nil {
		c.TextComment = *in.TextComment
	}
	if in.AudioCommentPath != nil {
		c.AudioCommentPath = *in.AudioCommentPath
	}
	if in.IsResolved != nil {
		c.IsResolved = *in.IsResolved
	}
	if err = s.repo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(actor *authz.Actor, id uint64) error {
	c, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !authz.CanEdit(actor, c) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(id)
}
