package project

import "impactnet/internal/domain"

type CreateProjectRequest struct {
	Title            string   `json:"title" binding:"required,min=3"`
	Description      string   `json:"description" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	SkillsNeeded     []string `json:"skills_needed"`
	VolunteersNeeded int      `json:"volunteers_needed" binding:"gte=0"`
	FundGoal         float64  `json:"fund_goal" binding:"gte=0"`
	Urgency          string   `json:"urgency"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	ImageURL         string   `json:"image_url"`
}

// UpdateProjectRequest carries only the fields the caller wants to
// change; nil means leave as is.
type UpdateProjectRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Category         *string   `json:"category"`
	SkillsNeeded     *[]string `json:"skills_needed"`
	VolunteersNeeded *int      `json:"volunteers_needed"`
	FundGoal         *float64  `json:"fund_goal"`
	Status           *string   `json:"status"`
	Urgency          *string   `json:"urgency"`
	Location         *string   `json:"location"`
	StartDate        *string   `json:"start_date"`
	EndDate          *string   `json:"end_date"`
	ImageURL         *string   `json:"image_url"`
}

type JoinOptions struct {
	// Idempotent makes a repeated join return the existing engagement
	// instead of failing.
	Idempotent bool
}

type LogHoursRequest struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}

type UpdateEngagementRequest struct {
	Progress *int    `json:"progress"`
	Status   *string `json:"status"`
}

type AddSkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level"`
}

type SearchFilters struct {
	Query    string
	Category string
	Location string
	Urgency  domain.Urgency
}
