package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type EventRegistrationRepository struct {
	db *gorm.DB
}

func NewEventRegistrationRepository(db *gorm.DB) *EventRegistrationRepository {
	return &EventRegistrationRepository{db: db}
}

func (r *EventRegistrationRepository) DB() *gorm.DB { return r.db }

func (r *EventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *EventRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.EventRegistration, error) {
	var out []domain.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *EventRegistrationRepository) ExistsByEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.EventRegistration{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRegistrationRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

type VolunteerEventRepository struct {
	db *gorm.DB
}

func NewVolunteerEventRepository(db *gorm.DB) *VolunteerEventRepository {
	return &VolunteerEventRepository{db: db}
}

func (r *VolunteerEventRepository) Create(ctx context.Context, ve *domain.VolunteerEvent) error {
	if ve.ID == "" {
		ve.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(ve).Error
}

func (r *VolunteerEventRepository) ListByVolunteer(ctx context.Context, volunteerID string) ([]domain.VolunteerEvent, error) {
	var out []domain.VolunteerEvent
	err := r.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
