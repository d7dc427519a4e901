package admin

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UserListFilter struct {
	Role  string
	Query string
}

type StatisticsResponse struct {
	TotalUsers           int     `json:"total_users"`
	TotalVolunteers      int     `json:"total_volunteers"`
	TotalDonors          int     `json:"total_donors"`
	TotalNgos            int     `json:"total_ngos"`
	PendingRegistrations int     `json:"pending_registrations"`
	TotalProjects        int     `json:"total_projects"`
	TotalCampaigns       int     `json:"total_campaigns"`
	TotalEvents          int     `json:"total_events"`
	TotalDonations       int     `json:"total_donations"`
	TotalDonated         float64 `json:"total_donated"`
	TodaySignups         int     `json:"today_signups"`
}
