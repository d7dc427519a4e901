package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type ImpactReportRepository struct {
	db *gorm.DB
}

func NewImpactReportRepository(db *gorm.DB) *ImpactReportRepository {
	return &ImpactReportRepository{db: db}
}

func (r *ImpactReportRepository) DB() *gorm.DB { return r.db }

func (r *ImpactReportRepository) Create(ctx context.Context, rep *domain.ImpactReport) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *ImpactReportRepository) GetByID(ctx context.Context, id string) (*domain.ImpactReport, error) {
	var rep domain.ImpactReport
	if err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ImpactReportRepository) Update(ctx context.Context, rep *domain.ImpactReport) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *ImpactReportRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.ImpactReport, error) {
	var out []domain.ImpactReport
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *ImpactReportRepository) CountByDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ImpactReport{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error
	return count, err
}
