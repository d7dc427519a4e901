package domain

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type Event struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	NgoID           string      `json:"ngo_id" gorm:"index"`
	NgoName         string      `json:"ngo_name"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Date            string      `json:"date"`
	Time            string      `json:"time,omitempty"`
	Location        string      `json:"location,omitempty"`
	Category        string      `json:"category,omitempty"`
	MaxParticipants int         `json:"max_participants"`
	Status          EventStatus `json:"status" gorm:"index"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Derived from event_registrations, never stored.
	Registered []EventAttendee `json:"registered,omitempty" gorm:"-"`
}

func (Event) TableName() string { return "ngo_events" }

// EventAttendee is the read projection of one registration row.
type EventAttendee struct {
	UserID       string    `json:"user_id"`
	UserRole     string    `json:"user_role"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventRegistration is the event <-> user join record. Duplicates are
// allowed by default; callers opt into idempotent registration.
type EventRegistration struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	EventID   string    `json:"event_id" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"index"`
	UserRole  UserRole  `json:"user_role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EventRegistration) TableName() string { return "event_registrations" }

type VolunteerEvent struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VolunteerID string    `json:"volunteer_id" gorm:"index"`
	EventID     string    `json:"event_id" gorm:"index"`
	EventTitle  string    `json:"event_title"`
	NgoName     string    `json:"ngo_name"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VolunteerEvent) TableName() string { return "volunteer_events" }
