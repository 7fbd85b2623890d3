package mysql

import (
	"time"

	"Saut_Review/internal/model"

	"gorm.io/gorm"
)

type DonationRepository struct {
	DB *gorm.DB
}

func (r *DonationRepository) Create(d *model.Donation) error {
	return r.DB.Create(d).Error
}

func (r *DonationRepository) FindByID(id uint64) (*model.Donation, error) {
	var d model.Donation
	err := r.DB.First(&d, id).Error
	return &d, err
}

func (r *DonationRepository) ListByUser(userID uint64, status string, offset, limit int) ([]model.Donation, error) {
	q := r.DB.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.Donation
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// ListPublic 最近完成的非匿名捐赠
func (r *DonationRepository) ListPublic(offset, limit int) ([]model.Donation, error) {
	var list []model.Donation
	err := r.DB.Where("status = ? AND is_anonymous = ?", model.DonationCompleted, false).
		Order("completed_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *DonationRepository) Save(d *model.Donation) error {
	return r.DB.Save(d).Error
}

type DonationStats struct {
	TotalDonations   float64 `json:"total_donations"`
	TotalDonors      int64   `json:"total_donors"`
	MonthlyDonations float64 `json:"monthly_donations"`
	YearlyDonations  float64 `json:"yearly_donations"`
	AverageDonation  float64 `json:"average_donation"`
	TopDonation      float64 `json:"top_donation"`
	RecentDonations  int64   `json:"recent_donations"`
}

// Stats 公开捐赠统计，只统计 completed
func (r *DonationRepository) Stats(now time.Time) (*DonationStats, error) {
	completed := r.DB.Model(&model.Donation{}).Where("status = ?", model.DonationCompleted)

	var s DonationStats
	row := completed.Session(&gorm.Session{}).
		Select("COALESCE(SUM(amount),0), COALESCE(AVG(amount),0), COALESCE(MAX(amount),0)").Row()
	if err := row.Scan(&s.TotalDonations, &s.AverageDonation, &s.TopDonation); err != nil {
		return nil, err
	}

	if err := completed.Session(&gorm.Session{}).
		Distinct("user_id").Count(&s.TotalDonors).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	if err := scanSum(completed.Session(&gorm.Session{}).Where("completed_at >= ?", monthStart), &s.MonthlyDonations); err != nil {
		return nil, err
	}
	if err := scanSum(completed.Session(&gorm.Session{}).Where("completed_at >= ?", yearStart), &s.YearlyDonations); err != nil {
		return nil, err
	}

	if err := completed.Session(&gorm.Session{}).
		Where("completed_at >= ?", now.AddDate(0, 0, -30)).
		Count(&s.RecentDonations).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSum(q *gorm.DB, dst *float64) error {
	return q.Select("COALESCE(SUM(amount),0)").Row().Scan(dst)
}

type CampaignRepository struct {
	DB *gorm.DB
}

func (r *CampaignRepository) Create(c *model.DonationCampaign) error {
	return r.DB.Create(c).Error
}

func (r *CampaignRepository) List(activeOnly bool, offset, limit int) ([]model.DonationCampaign, error) {
	q := r.DB.Model(&model.DonationCampaign{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var list []model.DonationCampaign
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
