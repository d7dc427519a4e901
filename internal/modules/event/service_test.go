package event

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

func (m *mockNotifier) NotifyNewEvent(ctx context.Context, ngoName, title, eventID string) error {
	args := m.Called(ctx, ngoName, title, eventID)
	return args.Error(0)
}

func setupTestService(t *testing.T) (*Service, *mockNotifier) {
	t.Helper()

	dsn := fmt.Sprintf("file:event_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Event{}, &domain.EventRegistration{}, &domain.VolunteerEvent{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	notifier := new(mockNotifier)
	svc := NewService(
		repository.NewEventRepository(db),
		repository.NewEventRegistrationRepository(db),
		repository.NewVolunteerEventRepository(db),
		notifier,
	)
	return svc, notifier
}

func createEvent(t *testing.T, svc *Service, notifier *mockNotifier, maxParticipants int) *domain.Event {
	t.Helper()
	notifier.On("NotifyNewEvent", mock.Anything, "Green Steppe", "Beach Cleanup", mock.Anything).Return(nil).Once()
	e, err := svc.Create(context.Background(), "ngo-1", "Green Steppe", &CreateEventRequest{
		Title:           "Beach Cleanup",
		Date:            "2026-09-12",
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	return e
}

func TestCreateEventNotifiesEveryone(t *testing.T) {
	svc, notifier := setupTestService(t)

	e := createEvent(t, svc, notifier, 0)

	assert.Equal(t, domain.EventUpcoming, e.Status)
	notifier.AssertExpectations(t)
}

func TestRegisterVolunteerMirrorsPersonalList(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	reg, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleVolunteer, reg.UserRole)

	mine, err := svc.ListVolunteerEvents(context.Background(), "vol-1")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "Beach Cleanup", mine[0].EventTitle)

	loaded, err := svc.Get(context.Background(), e.ID)
	assert.NoError(t, err)
	assert.Len(t, loaded.Registered, 1)
}

func TestRegisterDonorSkipsPersonalList(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	_, err := svc.Register(context.Background(), e.ID, "donor-1", domain.RoleDonor, RegisterOptions{})
	assert.NoError(t, err)

	mine, err := svc.ListVolunteerEvents(context.Background(), "donor-1")
	assert.NoError(t, err)
	assert.Empty(t, mine)
}

func TestRegisterTwiceKeepsBothRows(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	first, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.NoError(t, err)

	second, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	loaded, err := svc.Get(context.Background(), e.ID)
	assert.NoError(t, err)
	assert.Len(t, loaded.Registered, 2)
}

func TestRegisterIdempotentReturnsExisting(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	first, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.NoError(t, err)

	second, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{Idempotent: true})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestRegisterRespectsCapacity(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 1)

	_, err := svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), e.ID, "vol-2", domain.RoleVolunteer, RegisterOptions{})
	assert.ErrorIs(t, err, ErrEventFull)
}

func TestRegisterCancelledEvent(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	cancelled := string(domain.EventCancelled)
	_, err := svc.Update(context.Background(), e.ID, "ngo-1", &UpdateEventRequest{Status: &cancelled})
	assert.NoError(t, err)

	_, err = svc.Register(context.Background(), e.ID, "vol-1", domain.RoleVolunteer, RegisterOptions{})
	assert.ErrorIs(t, err, ErrEventNotUpcoming)
}

func TestUpdateEventOwnerOnly(t *testing.T) {
	svc, notifier := setupTestService(t)
	e := createEvent(t, svc, notifier, 0)

	title := "Renamed"
	_, err := svc.Update(context.Background(), e.ID, "ngo-2", &UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotOwner)
}
