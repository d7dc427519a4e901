package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) DB() *gorm.DB { return r.db }

func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	var out []domain.Donation
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	var out []domain.Donation
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *DonationRepository) SumByDonor(ctx context.Context, donorID string) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Donation{}).
		Where("donor_id = ?", donorID).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *DonationRepository) CountDistinctNgosByDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Donation{}).
		Where("donor_id = ?", donorID).
		Distinct("ngo_id").
		Count(&count).Error
	return count, err
}

func (r *DonationRepository) CountDistinctCampaignsByDonor(ctx context.Context, donorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Donation{}).
		Where("donor_id = ?", donorID).
		Distinct("campaign_id").
		Count(&count).Error
	return count, err
}
