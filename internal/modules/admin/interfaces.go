package admin

import (
	"context"

	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type RegistrationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.NgoRegistration, error)
	Update(ctx context.Context, reg *domain.NgoRegistration) error
	ListByStatus(ctx context.Context, status domain.VerificationStatus, limit, offset int) ([]domain.NgoRegistration, int64, error)
	DB() *gorm.DB
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	DB() *gorm.DB
}

type NotificationSender interface {
	NotifyVerificationApproved(ctx context.Context, ngoUserID, organizationName string) error
	NotifyVerificationRejected(ctx context.Context, ngoUserID, organizationName, reason string) error
}
