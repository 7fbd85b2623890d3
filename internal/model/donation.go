package model

import "time"

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

const (
	DonationOneTime   = "one_time"
	DonationRecurring = "recurring"
)

const (
	ProviderPaystack     = "paystack"
	ProviderStripe       = "stripe"
	ProviderBankTransfer = "bank_transfer"
)

// Donation 捐赠记录，UserID 可空以支持匿名捐赠
type Donation struct {
	ID               uint64         `gorm:"primaryKey"`
	UserID           *uint64        `gorm:"index"`
	Amount           float64        `gorm:"not null"`
	Currency         string         `gorm:"size:8;not null;default:NGN"`
	DonationType     string         `gorm:"size:16;not null;default:one_time"`
	Status           DonationStatus `gorm:"size:16;not null;default:pending;index"`
	PaymentProvider  string         `gorm:"size:16;not null"`
	TransactionID    string         `gorm:"size:64;uniqueIndex;not null"`
	PaymentReference string         `gorm:"size:64;uniqueIndex"`
	PaymentURL       string         `gorm:"size:255"`
	DonorName        string         `gorm:"size:64"`
	DonorEmail       string         `gorm:"size:64"`
	DonorPhone       string         `gorm:"size:32"`
	Message          string         `gorm:"type:text"`
	IsAnonymous      bool           `gorm:"not null;default:false"`
	RecurringInterval string        `gorm:"size:16"` // monthly / yearly
	NextPaymentDate  *time.Time
	CreatedAt        time.Time
	CompletedAt      *time.Time
	UpdatedAt        time.Time
}

func (d *Donation) OwnedBy() (uint64, bool) {
	if d.UserID == nil {
		return 0, false
	}
	return *d.UserID, true
}

type DonationCampaign struct {
	ID            uint64  `gorm:"primaryKey"`
	Title         string  `gorm:"size:128;not null"`
	Description   string  `gorm:"type:text"`
	TargetAmount  float64 ``
	CurrentAmount float64 `gorm:"not null;default:0"`
	Currency      string  `gorm:"size:8;not null;default:NGN"`
	IsActive      bool    `gorm:"not null;default:true"`
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedBy     uint64 `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
