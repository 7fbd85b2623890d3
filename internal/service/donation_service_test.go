package service

import (
	"testing"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationInitiateValidation(t *testing.T) {
	db := setupTestDB(t)

	svc := NewDonationService()

	// 金额非法时什么都不落库
	_, err := svc.Initiate(nil, &DonationCreate{Amount: -5, PaymentProvider: model.ProviderPaystack})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.Initiate(nil, &DonationCreate{Amount: 0, PaymentProvider: model.ProviderPaystack})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = svc.Initiate(nil, &DonationCreate{Amount: 100, PaymentProvider: "cash_app"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var count int64
	require.NoError(t, db.Model(&model.Donation{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDonationInitiateAnonymousAndOwned(t *testing.T) {
	db := setupTestDB(t)
	donor := seedUser(t, db, "donor", model.RoleUser)

	svc := NewDonationService()

	intent, err := svc.Initiate(nil, &DonationCreate{Amount: 500, PaymentProvider: model.ProviderPaystack})
	require.NoError(t, err)
	assert.NotEmpty(t, intent.TransactionID)
	assert.NotEmpty(t, intent.PaymentURL)

	var anon model.Donation
	require.NoError(t, db.Where("transaction_id = ?", intent.TransactionID).First(&anon).Error)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, "NGN", anon.Currency)
	assert.Equal(t, model.DonationOneTime, anon.DonationType)
	assert.Equal(t, model.DonationPending, anon.Status)

	intent, err = svc.Initiate(actorFor(donor), &DonationCreate{
		Amount: 200, Currency: "USD", PaymentProvider: model.ProviderStripe,
	})
	require.NoError(t, err)

	var owned model.Donation
	require.NoError(t, db.Where("transaction_id = ?", intent.TransactionID).First(&owned).Error)
	require.NotNil(t, owned.UserID)
	assert.Equal(t, donor.ID, *owned.UserID)
	assert.Equal(t, "USD", owned.Currency)
}

func TestDonationUpdateAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	donor := seedUser(t, db, "donor", model.RoleUser)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewDonationService()
	intent, err := svc.Initiate(actorFor(donor), &DonationCreate{Amount: 100, PaymentProvider: model.ProviderPaystack})
	require.NoError(t, err)

	var d model.Donation
	require.NoError(t, db.Where("transaction_id = ?", intent.TransactionID).First(&d).Error)

	completed := model.DonationCompleted

	// 捐赠人自己也不能动状态
	_, err = svc.Update(actorFor(donor), d.ID, &DonationUpdate{Status: &completed})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.Update(actorFor(admin), d.ID, &DonationUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, model.DonationCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	bad := model.DonationStatus("settled")
	_, err = svc.Update(actorFor(admin), d.ID, &DonationUpdate{Status: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDonationCampaigns(t *testing.T) {
	db := setupTestDB(t)
	scholar := seedUser(t, db, "scholar", model.RoleScholar)
	admin := seedUser(t, db, "admin", model.RoleAdmin)

	svc := NewDonationService()

	_, err := svc.CreateCampaign(actorFor(scholar), &CampaignCreate{Title: "New roof"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	c, err := svc.CreateCampaign(actorFor(admin), &CampaignCreate{Title: "New roof", TargetAmount: 1000})
	require.NoError(t, err)
	assert.Equal(t, "NGN", c.Currency)

	require.NoError(t, db.Model(&model.DonationCampaign{}).
		Where("id = ?", c.ID).Update("current_amount", 250).Error)

	views, err := svc.ListCampaigns(true, 1, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 25.0, views[0].ProgressPercentage)
}
