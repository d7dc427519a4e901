package domain

import "time"

type UserRole string

const (
	RoleVolunteer UserRole = "volunteer"
	RoleDonor     UserRole = "donor"
	RoleNgo       UserRole = "ngo"
	RoleAdmin     UserRole = "admin"
)

func ValidSignupRole(r string) bool {
	switch UserRole(r) {
	case RoleVolunteer, RoleDonor, RoleNgo:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NgoRegistration is the verification record gating NGO logins.
// Status moves pending -> verified | rejected exactly once.
type NgoRegistration struct {
	ID                 string             `json:"id" gorm:"primaryKey"`
	UserID             string             `json:"user_id" gorm:"index"`
	OrganizationName   string             `json:"organization_name"`
	Email              string             `json:"email" gorm:"uniqueIndex"`
	RegistrationNumber string             `json:"registration_number" gorm:"uniqueIndex"`
	OrganizationType   string             `json:"organization_type,omitempty"`
	FoundedYear        int                `json:"founded_year,omitempty"`
	City               string             `json:"city,omitempty"`
	Country            string             `json:"country,omitempty"`
	ContactPerson      string             `json:"contact_person,omitempty"`
	ContactPhone       string             `json:"contact_phone,omitempty"`
	MissionStatement   string             `json:"mission_statement,omitempty"`
	FocusAreas         []string           `json:"focus_areas,omitempty" gorm:"serializer:json"`
	Status             VerificationStatus `json:"status" gorm:"index"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	VerifiedBy         string             `json:"verified_by,omitempty"`
	RejectedAt         *time.Time         `json:"rejected_at,omitempty"`
	RejectedBy         string             `json:"rejected_by,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (NgoRegistration) TableName() string { return "ngo_registrations" }
