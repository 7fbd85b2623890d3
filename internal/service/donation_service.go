package service

import (
	"errors"
	"time"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type DonationService struct {
	repo         *mysql.DonationRepository
	campaignRepo *mysql.CampaignRepository
}

func NewDonationService() *DonationService {
	return &DonationService{
		repo:         &mysql.DonationRepository{DB: mysql.DB},
		campaignRepo: &mysql.CampaignRepository{DB: mysql.DB},
	}
}

type DonationCreate struct {
	Amount            float64 `json:"amount" binding:"required"`
	Currency          string  `json:"currency"`
	DonationType      string  `json:"donation_type"`
	PaymentProvider   string  `json:"payment_provider" binding:"required"`
	DonorName         string  `json:"donor_name"`
	DonorEmail        string  `json:"donor_email"`
	DonorPhone        string  `json:"donor_phone"`
	Message           string  `json:"message"`
	IsAnonymous       bool    `json:"is_anonymous"`
	RecurringInterval string  `json:"recurring_interval"`
}

// Initiate 金额校验先于任何落库；actor 为 nil 表示匿名捐赠
func (s *DonationService) Initiate(actor *authz.Actor, in *DonationCreate) (*pkg.PaymentIntent, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validationf("amount must be positive")
	}
	switch in.PaymentProvider {
	case model.ProviderPaystack, model.ProviderStripe, model.ProviderBankTransfer:
	default:
		return nil, apperr.Validationf("unknown payment provider")
	}

	intent, err := pkg.NewPaymentIntent()
	if err != nil {
		return nil, err
	}

	d := &model.Donation{
		Amount:            in.Amount,
		Currency:          in.Currency,
		DonationType:      in.DonationType,
		Status:            model.DonationPending,
		PaymentProvider:   in.PaymentProvider,
		TransactionID:     intent.TransactionID,
		PaymentReference:  intent.Reference,
		PaymentURL:        intent.PaymentURL,
		DonorName:         in.DonorName,
		DonorEmail:        in.DonorEmail,
		DonorPhone:        in.DonorPhone,
		Message:           in.Message,
		IsAnonymous:       in.IsAnonymous,
		RecurringInterval: in.RecurringInterval,
	}
	if d.Currency == "" {
		d.Currency = "NGN"
	}
	if d.DonationType == "" {
		d.DonationType = model.DonationOneTime
	}
	if actor != nil {
		id := actor.ID
		d.UserID = &id
	}
	if err = s.repo.Create(d); err != nil {
		return nil, err
	}
	return intent, nil
}

func (s *DonationService) ListMine(actor *authz.Actor, status string, page, size int) ([]model.Donation, error) {
	offset, limit := pageToRange(page, size)
	return s.repo.ListByUser(actor.ID, status, offset, limit)
}

func (s *DonationService) ListPublic(page, size int) ([]model.Donation, error) {
	offset, limit := pageToRange(page, size)
	return s.repo.ListPublic(offset, limit)
}

func (s *DonationService) Stats() (*mysql.DonationStats, error) {
	return s.repo.Stats(time.Now())
}

type DonationUpdate struct {
	Status *model.DonationStatus `json:"status"`
}

// Update 仅平台管理员改状态；转 completed 时盖时间戳
func (s *DonationService) Update(actor *authz.Actor, id uint64, in *DonationUpdate) (*model.Donation, error) {
	d, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}

	if in.Status != nil {
		switch *in.Status {
		case model.DonationPending, model.DonationCompleted, model.DonationFailed, model.DonationRefunded:
		default:
			return nil, apperr.Validationf("unknown status")
		}
		if *in.Status == model.DonationCompleted && d.Status != model.DonationCompleted {
			now := time.Now()
			d.CompletedAt = &now
		}
		d.Status = *in.Status
	}
	if err = s.repo.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

type CampaignCreate struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	TargetAmount float64    `json:"target_amount"`
	Currency     string     `json:"currency"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func (s *DonationService) CreateCampaign(actor *authz.Actor, in *CampaignCreate) (*model.DonationCampaign, error) {
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}
	if in.TargetAmount < 0 {
		return nil, apperr.Validationf("target_amount must not be negative")
	}
	c := &model.DonationCampaign{
		Title:        in.Title,
		Description:  in.Description,
		TargetAmount: in.TargetAmount,
		Currency:     in.Currency,
		IsActive:     true,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		CreatedBy:    actor.ID,
	}
	if c.Currency == "" {
		c.Currency = "NGN"
	}
	if err := s.campaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// CampaignView 附带进度百分比
type CampaignView struct {
	model.DonationCampaign
	ProgressPercentage float64 `json:"progress_percentage"`
}

func (s *DonationService) ListCampaigns(activeOnly bool, page, size int) ([]CampaignView, error) {
	offset, limit := pageToRange(page, size)
	list, err := s.campaignRepo.List(activeOnly, offset, limit)
	if err != nil {
		return nil, err
	}
	views := make([]CampaignView, 0, len(list))
	for _, c := range list {
		v := CampaignView{DonationCampaign: c}
		if c.TargetAmount > 0 {
			v.ProgressPercentage = c.CurrentAmount / c.TargetAmount * 100
		}
		views = append(views, v)
	}
	return views, nil
}
