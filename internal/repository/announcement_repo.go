package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnnouncementRepository) ListByNgo(ctx context.Context, ngoID string) ([]domain.Announcement, error) {
	var out []domain.Announcement
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
