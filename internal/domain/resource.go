package domain

import "time"

type ResourceAvailability string

const (
	ResourceAvailable ResourceAvailability = "Available"
	ResourceRequested ResourceAvailability = "Requested"
)

type Resource struct {
	ID           string               `json:"id" gorm:"primaryKey"`
	NgoID        string               `json:"ngo_id" gorm:"index"`
	NgoName      string               `json:"ngo_name"`
	Name         string               `json:"name"`
	Type         string               `json:"type,omitempty"`
	Availability ResourceAvailability `json:"availability"`
	RequestedBy  string               `json:"requested_by,omitempty"`
	RequestedAt  *time.Time           `json:"requested_at,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func (Resource) TableName() string { return "ngo_resources" }
