package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB { return r.db }

func (r *Repository) Create(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

// ListFor returns the OR-union of notifications addressed to the user
// directly, to an NGO account the user owns, to the user's role, or to
// everyone.
func (r *Repository) ListFor(ctx context.Context, userID, role string, limit int) ([]Notification, error) {
	q := r.db.WithContext(ctx).
		Where("target_user_id = ? OR target_ngo_id = ? OR target_role = ? OR target_role = ?",
			userID, userID, role, RoleAll).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []Notification
	err := q.Find(&out).Error
	return out, err
}

func (r *Repository) CountUnreadFor(ctx context.Context, userID, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("read = ?", false).
		Where("target_user_id = ? OR target_ngo_id = ? OR target_role = ? OR target_role = ?",
			userID, userID, role, RoleAll).
		Count(&count).Error
	return count, err
}

func (r *Repository) MarkAsRead(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) MarkAllAsReadFor(ctx context.Context, userID, role string) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("read = ?", false).
		Where("target_user_id = ? OR target_ngo_id = ? OR target_role = ? OR target_role = ?",
			userID, userID, role, RoleAll).
		Update("read", true).Error
}

// DeleteReadBefore removes read notifications older than the cutoff and
// reports how many rows were swept.
func (r *Repository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("read = ? AND created_at < ?", true, cutoff).
		Delete(&Notification{})
	return res.RowsAffected, res.Error
}
