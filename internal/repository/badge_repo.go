package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

func (r *BadgeRepository) DB() *gorm.DB { return r.db }

func (r *BadgeRepository) Create(ctx context.Context, b *domain.Badge) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BadgeRepository) Exists(ctx context.Context, userID string, badgeType domain.BadgeType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Badge{}).
		Where("user_id = ? AND badge_type = ?", userID, badgeType).
		Count(&count).Error
	return count > 0, err
}

func (r *BadgeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Badge, error) {
	var out []domain.Badge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
