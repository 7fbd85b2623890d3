package mysql

import (
	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type MarkerRepository struct {
	DB *gorm.DB
}

func (r *MarkerRepository) Create(m *model.Marker) error {
	return r.DB.Create(m).Error
}

func (r *MarkerRepository) FindByID(id uint64) (*model.Marker, error) {
	var m model.Marker
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MarkerRepository) ListByRecitation(recitationID uint64) ([]model.Marker, error) {
	var list []model.Marker
	err := r.DB.Where("recitation_id = ?", recitationID).Order("timestamp").Find(&list).Error
	return list, err
}

func (r *MarkerRepository) Save(m *model.Marker) error {
	return r.DB.Save(m).Error
}

func (r *MarkerRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Marker{}, id).Error
}

type LoopRegionRepository struct {
	DB *gorm.DB
}

func (r *LoopRegionRepository) Create(l *model.LoopRegion) error {
	return r.DB.Create(l).Error
}

func (r *LoopRegionRepository) FindByID(id uint64) (*model.LoopRegion, error) {
	var l model.LoopRegion
	err := r.DB.First(&l, id).Error
	return &l, err
}

func (r *LoopRegionRepository) ListByRecitation(recitationID uint64) ([]model.LoopRegion, error) {
	var list []model.LoopRegion
	err := r.DB.Where("recitation_id = ?", recitationID).Order("start_time").Find(&list).Error
	return list, err
}

func (r *LoopRegionRepository) Save(l *model.LoopRegion) error {
	return r.DB.Save(l).Error
}

func (r *LoopRegionRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.LoopRegion{}, id).Error
}
