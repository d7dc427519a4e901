package campaign

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyNewDonation(ctx context.Context, ngoID, donorName, campaignTitle, campaignID string, amount float64) error {
	args := m.Called(ctx, ngoID, donorName, campaignTitle, campaignID, amount)
	return args.Error(0)
}

type mockBadgeChecker struct {
	mock.Mock
}

func (m *mockBadgeChecker) CheckDonor(ctx context.Context, donorID string) error {
	args := m.Called(ctx, donorID)
	return args.Error(0)
}

func setupTestService(t *testing.T) (*Service, *mockNotifier, *mockBadgeChecker) {
	t.Helper()

	dsn := fmt.Sprintf("file:campaign_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Campaign{}, &domain.Donation{}, &domain.ImpactReport{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	notifier := new(mockNotifier)
	badges := new(mockBadgeChecker)
	svc := NewService(
		db,
		repository.NewCampaignRepository(db),
		repository.NewDonationRepository(db),
		repository.NewImpactReportRepository(db),
		notifier,
		badges,
	)
	return svc, notifier, badges
}

func createCampaign(t *testing.T, svc *Service, goal float64) *domain.Campaign {
	t.Helper()
	c, err := svc.Create(context.Background(), "ngo-1", "Green Steppe", &CreateCampaignRequest{
		Title: "Clean Water",
		Goal:  goal,
	})
	if err != nil {
		t.Fatalf("failed to create campaign: %v", err)
	}
	return c
}

func TestDonateUpdatesRaisedAndOpensReport(t *testing.T) {
	svc, notifier, badges := setupTestService(t)
	c := createCampaign(t, svc, 1000)

	notifier.On("NotifyNewDonation", mock.Anything, "ngo-1", "Dana", "Clean Water", c.ID, 250.0).Return(nil).Once()
	badges.On("CheckDonor", mock.Anything, "donor-1").Return(nil).Once()

	d, err := svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 250})

	assert.NoError(t, err)
	assert.Equal(t, domain.DonationCompleted, d.Status)
	notifier.AssertExpectations(t)
	badges.AssertExpectations(t)

	loaded, err := svc.Get(context.Background(), c.ID)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, loaded.Raised)
	assert.Equal(t, domain.CampaignActive, loaded.Status)
	assert.Len(t, loaded.Donors, 1)

	reports, err := svc.ListImpactReports(context.Background(), "donor-1")
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, domain.ImpactPending, reports[0].Status)
}

func TestDonateCompletesCampaignAtGoal(t *testing.T) {
	svc, notifier, badges := setupTestService(t)
	c := createCampaign(t, svc, 500)

	notifier.On("NotifyNewDonation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	badges.On("CheckDonor", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 500})
	assert.NoError(t, err)

	loaded, err := svc.Get(context.Background(), c.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, loaded.Status)

	// A completed campaign still accepts donations.
	_, err = svc.Donate(context.Background(), c.ID, "donor-2", "Erik", &DonateRequest{Amount: 100})
	assert.NoError(t, err)
}

func TestDonateToClosedCampaign(t *testing.T) {
	svc, _, _ := setupTestService(t)
	c := createCampaign(t, svc, 500)

	closed := string(domain.CampaignClosed)
	_, err := svc.Update(context.Background(), c.ID, "ngo-1", &UpdateCampaignRequest{Status: &closed})
	assert.NoError(t, err)

	_, err = svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 50})
	assert.ErrorIs(t, err, ErrCampaignClosed)
}

func TestDonateToMissingCampaign(t *testing.T) {
	svc, _, _ := setupTestService(t)

	_, err := svc.Donate(context.Background(), "ghost", "donor-1", "Dana", &DonateRequest{Amount: 50})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDonateRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := setupTestService(t)
	c := createCampaign(t, svc, 500)

	_, err := svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestPublishImpactReport(t *testing.T) {
	svc, notifier, badges := setupTestService(t)
	c := createCampaign(t, svc, 500)

	notifier.On("NotifyNewDonation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	badges.On("CheckDonor", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 100})
	assert.NoError(t, err)

	reports, err := svc.ListImpactReports(context.Background(), "donor-1")
	assert.NoError(t, err)

	rep, err := svc.PublishImpactReport(context.Background(), reports[0].ID, "ngo-1", "Bought 40 water filters")
	assert.NoError(t, err)
	assert.Equal(t, domain.ImpactPublished, rep.Status)
	assert.Equal(t, "Bought 40 water filters", rep.Impact)

	_, err = svc.PublishImpactReport(context.Background(), reports[0].ID, "ngo-1", "again")
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}

func TestPublishImpactReportOwnerOnly(t *testing.T) {
	svc, notifier, badges := setupTestService(t)
	c := createCampaign(t, svc, 500)

	notifier.On("NotifyNewDonation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	badges.On("CheckDonor", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Donate(context.Background(), c.ID, "donor-1", "Dana", &DonateRequest{Amount: 100})
	assert.NoError(t, err)

	reports, _ := svc.ListImpactReports(context.Background(), "donor-1")

	_, err = svc.PublishImpactReport(context.Background(), reports[0].ID, "ngo-2", "not mine")
	assert.ErrorIs(t, err, ErrNotOwner)
}
