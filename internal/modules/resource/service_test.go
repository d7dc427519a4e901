package resource

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

func (m *mockNotifier) NotifyResourceShared(ctx context.Context, ngoName, resourceName string) error {
	args := m.Called(ctx, ngoName, resourceName)
	return args.Error(0)
}

func setupTestService(t *testing.T) (*Service, *mockNotifier) {
	t.Helper()

	dsn := fmt.Sprintf("file:resource_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Resource{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	notifier := new(mockNotifier)
	return NewService(repository.NewResourceRepository(db), notifier), notifier
}

func TestShareResourceNotifiesNgos(t *testing.T) {
	svc, notifier := setupTestService(t)

	notifier.On("NotifyResourceShared", mock.Anything, "Green Steppe", "Projector").Return(nil).Once()

	res, err := svc.Share(context.Background(), "ngo-1", "Green Steppe", &ShareRequest{Name: "Projector", Type: "equipment"})

	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceAvailable, res.Availability)
	notifier.AssertExpectations(t)
}

func TestRequestResourceLifecycle(t *testing.T) {
	svc, notifier := setupTestService(t)
	notifier.On("NotifyResourceShared", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Share(context.Background(), "ngo-1", "Green Steppe", &ShareRequest{Name: "Projector"})
	assert.NoError(t, err)

	res, err = svc.Request(context.Background(), res.ID, "ngo-2")
	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceRequested, res.Availability)
	assert.Equal(t, "ngo-2", res.RequestedBy)
	assert.NotNil(t, res.RequestedAt)

	_, err = svc.Request(context.Background(), res.ID, "ngo-3")
	assert.ErrorIs(t, err, ErrAlreadyRequested)

	res, err = svc.Release(context.Background(), res.ID, "ngo-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.ResourceAvailable, res.Availability)
	assert.Empty(t, res.RequestedBy)
	assert.Nil(t, res.RequestedAt)
}

func TestRequestOwnResource(t *testing.T) {
	svc, notifier := setupTestService(t)
	notifier.On("NotifyResourceShared", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Share(context.Background(), "ngo-1", "Green Steppe", &ShareRequest{Name: "Projector"})
	assert.NoError(t, err)

	_, err = svc.Request(context.Background(), res.ID, "ngo-1")
	assert.ErrorIs(t, err, ErrOwnResource)
}

func TestReleaseOwnerOnly(t *testing.T) {
	svc, notifier := setupTestService(t)
	notifier.On("NotifyResourceShared", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Share(context.Background(), "ngo-1", "Green Steppe", &ShareRequest{Name: "Projector"})
	assert.NoError(t, err)

	_, err = svc.Release(context.Background(), res.ID, "ngo-2")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestRequestMissingResource(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Request(context.Background(), "ghost", "ngo-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
