package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) DB() *gorm.DB { return r.db }

func (r *ResourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	var res domain.Resource
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *domain.Resource) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ResourceRepository) ListAll(ctx context.Context) ([]domain.Resource, error) {
	var out []domain.Resource
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *ResourceRepository) ListByNgo(ctx context.Context, ngoID string) ([]domain.Resource, error) {
	var out []domain.Resource
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
