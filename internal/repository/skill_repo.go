package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.VolunteerSkill) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SkillRepository) ListByVolunteer(ctx context.Context, volunteerID string) ([]domain.VolunteerSkill, error) {
	var out []domain.VolunteerSkill
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
