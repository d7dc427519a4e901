package notification

import "time"

// Type represents notification type
type Type string

const (
	TypeNewNgoRegistration   Type = "new_ngo_registration"
	TypeVerificationApproved Type = "verification_approved"
	TypeVerificationRejected Type = "verification_rejected"

	TypeNewProject      Type = "new_project"
	TypeVolunteerJoined Type = "volunteer_joined"
	TypeNewDonation     Type = "new_donation"
	TypeNewEvent        Type = "new_event"
	TypeResourceShared  Type = "resource_shared"

	TypeNewMessage   Type = "new_message"
	TypeAnnouncement Type = "announcement"
	TypeAchievement  Type = "achievement"
)

// RoleAll targets every signed-in role.
const RoleAll = "all"

// Notification carries exactly one targeting mode: a specific user, a
// role (or "all"), or the NGO owning some entity.
type Notification struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Type         Type   `json:"type"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	TargetUserID string `json:"target_id,omitempty" gorm:"index"`
	TargetRole   string `json:"target_role,omitempty" gorm:"index"`
	TargetNgoID  string `json:"target_ngo_id,omitempty" gorm:"index"`
	ProjectID    string `json:"project_id,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"`
	EventID      string `json:"event_id,omitempty"`
	Read         bool   `json:"read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
