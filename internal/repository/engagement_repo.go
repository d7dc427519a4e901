package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

func (r *EngagementRepository) DB() *gorm.DB { return r.db }

func (r *EngagementRepository) Create(ctx context.Context, e *domain.Engagement) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EngagementRepository) GetByID(ctx context.Context, id string) (*domain.Engagement, error) {
	var e domain.Engagement
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EngagementRepository) Update(ctx context.Context, e *domain.Engagement) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EngagementRepository) ListByVolunteer(ctx context.Context, volunteerID string) ([]domain.Engagement, error) {
	var out []domain.Engagement
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *EngagementRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Engagement, error) {
	var out []domain.Engagement
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *EngagementRepository) ExistsByVolunteerAndProject(ctx context.Context, volunteerID, projectID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Engagement{}).
		Where("volunteer_id = ? AND project_id = ?", volunteerID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *EngagementRepository) SumHoursByVolunteer(ctx context.Context, volunteerID string) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Engagement{}).
		Where("volunteer_id = ?", volunteerID).
		Select("SUM(hours)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *EngagementRepository) CountByVolunteerAndStatus(ctx context.Context, volunteerID string, status domain.EngagementStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Engagement{}).
		Where("volunteer_id = ? AND status = ?", volunteerID, status).
		Count(&count).Error
	return count, err
}
