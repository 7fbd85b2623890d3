package service

import (
	"errors"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type MarkerService struct {
	repo     *mysql.MarkerRepository
	loopRepo *mysql.LoopRegionRepository
	recRepo  *mysql.RecitationRepository
}

func NewMarkerService() *MarkerService {
	return &MarkerService{
		repo:     &mysql.MarkerRepository{DB: mysql.DB},
		loopRepo: &mysql.LoopRegionRepository{DB: mysql.DB},
		recRepo:  &mysql.RecitationRepository{DB: mysql.DB},
	}
}

// findRecitation 父诵读的存在性先于一切权限判断
func (s *MarkerService) findRecitation(id uint64) (*model.Recitation, error) {
	rec, err := s.recRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return rec, err
}

type MarkerCreate struct {
	RecitationID uint64  `json:"recitation_id" binding:"required"`
	Timestamp    float64 `json:"timestamp"`
	Label        string  `json:"label" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Color        string  `json:"color"`
}

func (s *MarkerService) Create(actor *authz.Actor, in *MarkerCreate) (*model.Marker, error) {
	if _, err := s.findRecitation(in.RecitationID); err != nil {
		return nil, err
	}
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}

	m := &model.Marker{
		RecitationID: in.RecitationID,
		ScholarID:    actor.ID,
		Timestamp:    in.Timestamp,
		Label:        in.Label,
		Description:  in.Description,
		Category:     in.Category,
		Color:        in.Color,
	}
	if m.Category == "" {
		m.Category = "general"
	}
	if m.Color == "" {
		m.Color = "#f59e0b"
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MarkerService) ListForRecitation(actor *authz.Actor, recitationID uint64) ([]model.Marker, error) {
	rec, err := s.findRecitation(recitationID)
	if err != nil {
		return nil, err
	}
	if !authz.CanRead(actor, rec) {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListByRecitation(recitationID)
}

type MarkerUpdate struct {
	Label       *string `json:"label"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Color       *string `json:"color"`
}

func (s *MarkerService) Update(actor *authz.Actor, id uint64, in *MarkerUpdate) (*model.Marker, error) {
	m, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.CanEdit(actor, m) {
		return nil, apperr.ErrForbidden
	}

	if in.Label != nil {
		m.Label = *in.Label
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Color != nil {
		m.Color = *in.Color
	}
	if err = s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MarkerService) Delete(actor *authz.Actor, id uint64) error {
	m, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !authz.CanEdit(actor, m) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(id)
}

type LoopRegionCreate struct {
	RecitationID uint64  `json:"recitation_id" binding:"required"`
	StartTime    float64 `json:"start_time"`
	EndTime      float64 `json:"end_time"`
	Label        string  `json:"label" binding:"required"`
	Color        string  `json:"color"`
}

func (s *MarkerService) CreateLoop(actor *authz.Actor, in *LoopRegionCreate) (*model.LoopRegion, error) {
	if _, err := s.findRecitation(in.RecitationID); err != nil {
		return nil, err
	}
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}
	if in.StartTime >= in.EndTime {
		return nil, apperr.Validationf("start_time must be before end_time")
	}

	l := &model.LoopRegion{
		RecitationID: in.RecitationID,
		ScholarID:    actor.ID,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Label:        in.Label,
		Color:        in.Color,
	}
	if l.Color == "" {
		l.Color = "#10b981"
	}
	if err := s.loopRepo.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *MarkerService) ListLoopsForRecitation(actor *authz.Actor, recitationID uint64) ([]model.LoopRegion, error) {
	rec, err := s.findRecitation(recitationID)
	if err != nil {
		return nil, err
	}
	if !authz.CanRead(actor, rec) {
		return nil, apperr.ErrForbidden
	}
	return s.loopRepo.ListByRecitation(recitationID)
}

type LoopRegionUpdate struct {
	StartTime *float64 `json:"start_time"`
	EndTime   *float64 `json:"end_time"`
	Label     *string  `json:"label"`
	Color     *string  `json:"color"`
	IsActive  *bool    `json:"is_active"`
}

// UpdateLoop 区间约束按"生效值"判：只改一端时用库里另一端补齐，
// 违反 start<end 则整条更新不落库
func (s *MarkerService) UpdateLoop(actor *authz.Actor, id uint64, in *LoopRegionUpdate) (*model.LoopRegion, error) {
	l, err := s.loopRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.CanEdit(actor, l) {
		return nil, apperr.ErrForbidden
	}

	if in.StartTime != nil || in.EndTime != nil {
		start, end := l.StartTime, l.EndTime
		if in.StartTime != nil {
			start = *in.StartTime
		}
		if in.EndTime != nil {
			end = *in.EndTime
		}
		if start >= end {
			return nil, apperr.Validationf("start_time must be before end_time")
		}
		l.StartTime, l.EndTime = start, end
	}
	if in.Label != nil {
		l.Label = *in.Label
	}
	if in.Color != nil {
		l.Color = *in.Color
	}
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
	if err = s.loopRepo.Save(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *MarkerService) DeleteLoop(actor *authz.Actor, id uint64) error {
	l, err := s.loopRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if !authz.CanEdit(actor, l) {
		return apperr.ErrForbidden
	}
	return s.loopRepo.Delete(id)
}
