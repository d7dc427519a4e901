package auth

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	// NGO signup fields, ignored for volunteers and donors.
	OrganizationName   string   `json:"organization_name"`
	RegistrationNumber string   `json:"registration_number"`
	OrganizationType   string   `json:"organization_type"`
	FoundedYear        int      `json:"founded_year"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	ContactPerson      string   `json:"contact_person"`
	ContactPhone       string   `json:"contact_phone"`
	MissionStatement   string   `json:"mission_statement"`
	FocusAreas         []string `json:"focus_areas"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserPublic struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VerificationStatusResponse struct {
	Exists          bool   `json:"exists"`
	Verified        string `json:"verified,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
