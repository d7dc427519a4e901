package domain

import "time"

type BadgeType string

const (
	BadgeTenHours        BadgeType = "first_10_hours"
	BadgeProjectChampion BadgeType = "project_champion"
	BadgeImpactDonor     BadgeType = "impact_donor"
	BadgeNgoSupporter    BadgeType = "supporter"
)

// Badge is awarded at most once per (UserID, Type); the unique index is
// the backstop behind the service-level existence check.
type Badge struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex:idx_badges_user_type"`
	Type        BadgeType `json:"badge_type" gorm:"column:badge_type;uniqueIndex:idx_badges_user_type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"awarded_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (Badge) TableName() string { return "donor_achievements" }
