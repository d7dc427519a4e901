package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) DB() *gorm.DB { return r.db }

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Patch(ctx context.Context, id string, fields map[string]any) (*domain.Event, error) {
	res := r.db.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepository) ListByNgo(ctx context.Context, ngoID string) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("ngo_id = ?", ngoID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *EventRepository) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.EventUpcoming).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *EventRepository) Search(ctx context.Context, query, category string) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})

	if s := strings.TrimSpace(query); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ngo_name) LIKE ? OR LOWER(location) LIKE ?", sv, sv, sv, sv)
	}
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Event
	err := q.Order("created_at ASC").Find(&out).Error
	return out, err
}
