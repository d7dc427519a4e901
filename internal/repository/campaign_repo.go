package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) DB() *gorm.DB { return r.db }

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Patch(ctx context.Context, id string, fields map[string]any) (*domain.Campaign, error) {
	res := r.db.WithContext(ctx).Model(&domain.Campaign{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CampaignRepository) ListByNgo(ctx context.Context, ngoID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *CampaignRepository) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.CampaignActive).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *CampaignRepository) Search(ctx context.Context, query, category string) ([]domain.Campaign, error) {
	q := r.db.WithContext(ctx).Model(&domain.Campaign{}).Where("status = ?", domain.CampaignActive)

	if s := strings.TrimSpace(query); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ngo_name) LIKE ?", sv, sv, sv)
	}
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Campaign
	err := q.Order("created_at ASC").Find(&out).Error
	return out, err
}
