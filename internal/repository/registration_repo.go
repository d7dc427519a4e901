package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) DB() *gorm.DB { return r.db }

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.NgoRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.NgoRegistration, error) {
	var reg domain.NgoRegistration
	if err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) GetByEmail(ctx context.Context, email string) (*domain.NgoRegistration, error) {
	var reg domain.NgoRegistration
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) ListByStatus(ctx context.Context, status domain.VerificationStatus, limit, offset int) ([]domain.NgoRegistration, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.NgoRegistration{}).Where("status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var regs []domain.NgoRegistration
	if err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&regs).Error; err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, reg *domain.NgoRegistration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}
