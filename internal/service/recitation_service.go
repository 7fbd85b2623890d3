package service

import (
	"errors"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type RecitationService struct {
	repo *mysql.RecitationRepository
}

func NewRecitationService() *RecitationService {
	return &RecitationService{
		repo: &mysql.RecitationRepository{DB: mysql.DB},
	}
}

type RecitationCreate struct {
	SurahName string  `json:"surah_name" binding:"required"`
	AyahStart int     `json:"ayah_start" binding:"required,min=1"`
	AyahEnd   int     `json:"ayah_end" binding:"required,min=1"`
	AudioData string  `json:"audio_data"`
	Duration  float64 `json:"duration"`
}

func (s *RecitationService) Create(actor *authz.Actor, in *RecitationCreate) (*model.Recitation, error) {
	if in.AyahEnd < in.AyahStart {
		return nil, apperr.Validationf("ayah_end must not precede ayah_start")
	}
	rec := &model.Recitation{
		UserID:    actor.ID,
		SurahName: in.SurahName,
		AyahStart: in.AyahStart,
		AyahEnd:   in.AyahEnd,
		AudioData: in.AudioData,
		Duration:  in.Duration,
		Status:    model.RecitationPending,
	}
	if err := s.repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecitationService) ListMine(actor *authz.Actor, page, size int) ([]model.Recitation, error) {
	offset, limit := pageToRange(page, size)
	return s.repo.ListByUser(actor.ID, offset, limit)
}

// ListPending 待审列表，学者工作台
func (s *RecitationService) ListPending(actor *authz.Actor, page, size int) ([]model.Recitation, error) {
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}
	offset, limit := pageToRange(page, size)
	return s.repo.ListByStatus(model.RecitationPending, offset, limit)
}

// Get 先查存在再查权限：归属者或特权角色可读
func (s *RecitationService) Get(actor *authz.Actor, id uint64) (*model.Recitation, error) {
	rec, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !authz.CanRead(actor, rec) {
		return nil, apperr.ErrForbidden
	}
	return rec, nil
}

// RecitationUpdate 部分更新；状态流转只允许特权角色（调用方已整体限定）
type RecitationUpdate struct {
	SurahName *string                 `json:"surah_name"`
	AyahStart *int                    `json:"ayah_start"`
	AyahEnd   *int                    `json:"ayah_end"`
	Duration  *float64                `json:"duration"`
	Status    *model.RecitationStatus `json:"status"`
}

// Update 仅学者/管理员；状态离开 pending 时落一条 review 事件
func (s *RecitationService) Update(actor *authz.Actor, id uint64, in *RecitationUpdate) (*model.Recitation, error) {
	rec, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}

	reviewed := false
	if in.Status != nil {
		switch *in.Status {
		case model.RecitationPending, model.RecitationReviewed, model.RecitationNeedsRevision:
		default:
			return nil, apperr.Validationf("unknown status")
		}
		reviewed = rec.Status == model.RecitationPending && *in.Status != model.RecitationPending
		rec.Status = *in.Status
	}
	if in.SurahName != nil {
		rec.SurahName = *in.SurahName
	}
	if in.AyahStart != nil {
		rec.AyahStart = *in.AyahStart
	}
	if in.AyahEnd != nil {
		rec.AyahEnd = *in.AyahEnd
	}
	if rec.AyahEnd < rec.AyahStart {
		return nil, apperr.Validationf("ayah_end must not precede ayah_start")
	}
	if in.Duration != nil {
		rec.Duration = *in.Duration
	}

	if err = s.repo.Save(rec, reviewed, actor.ID); err != nil {
		return nil, err
	}
	return rec, nil
}
