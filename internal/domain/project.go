package domain

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Project struct {
	ID               string        `json:"id" gorm:"primaryKey"`
	NgoID            string        `json:"ngo_id" gorm:"index"`
	NgoName          string        `json:"ngo_name"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Category         string        `json:"category"`
	SkillsNeeded     []string      `json:"skills_needed,omitempty" gorm:"serializer:json"`
	VolunteersNeeded int           `json:"volunteers_needed"`
	FundRaised       float64       `json:"fund_raised"`
	FundGoal         float64       `json:"fund_goal"`
	Status           ProjectStatus `json:"status" gorm:"index"`
	Urgency          Urgency       `json:"urgency,omitempty"`
	Location         string        `json:"location,omitempty"`
	StartDate        string        `json:"start_date,omitempty"`
	EndDate          string        `json:"end_date,omitempty"`
	ImageURL         string        `json:"image_url,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	// Derived from engagements, never stored.
	VolunteersJoined []ProjectVolunteer `json:"volunteers_joined,omitempty" gorm:"-"`
}

func (Project) TableName() string { return "ngo_projects" }

// ProjectVolunteer is the read projection of one engagement row.
type ProjectVolunteer struct {
	VolunteerID string    `json:"volunteer_id"`
	Name        string    `json:"name"`
	JoinedAt    time.Time `json:"joined_at"`
	Status      string    `json:"status"`
}

type EngagementStatus string

const (
	EngagementActive    EngagementStatus = "active"
	EngagementCompleted EngagementStatus = "completed"
)

// Engagement is the volunteer <-> project join record and the source of
// truth for project membership.
type Engagement struct {
	ID            string           `json:"id" gorm:"primaryKey"`
	VolunteerID   string           `json:"volunteer_id" gorm:"index"`
	VolunteerName string           `json:"volunteer_name"`
	ProjectID     string           `json:"project_id" gorm:"index"`
	ProjectTitle  string           `json:"project_title"`
	NgoName       string           `json:"ngo_name"`
	Hours         float64          `json:"hours"`
	Status        EngagementStatus `json:"status"`
	Progress      int              `json:"progress"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func (Engagement) TableName() string { return "volunteer_engagements" }

type VolunteerSkill struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	VolunteerID string    `json:"volunteer_id" gorm:"index"`
	Name        string    `json:"name"`
	Level       string    `json:"level,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VolunteerSkill) TableName() string { return "volunteer_skills" }
