package analytics

import (
	"context"

	"gorm.io/gorm"

	"impactnet/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type NgoAnalytics struct {
	TotalProjects     int     `json:"total_projects"`
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalVolunteers   int     `json:"total_volunteers"`
	TotalCampaigns    int     `json:"total_campaigns"`
	TotalRaised       float64 `json:"total_raised"`
	TotalEvents       int     `json:"total_events"`
	TotalDonations    int     `json:"total_donations"`
}

type VolunteerAnalytics struct {
	TotalHours        float64 `json:"total_hours"`
	ProjectsJoined    int     `json:"projects_joined"`
	ProjectsCompleted int     `json:"projects_completed"`
	EventsRegistered  int     `json:"events_registered"`
	BadgesEarned      int     `json:"badges_earned"`
}

type DonorAnalytics struct {
	TotalDonated       float64 `json:"total_donated"`
	DonationCount      int     `json:"donation_count"`
	NgosSupported      int     `json:"ngos_supported"`
	CampaignsSupported int     `json:"campaigns_supported"`
	ImpactReports      int     `json:"impact_reports"`
	BadgesEarned       int     `json:"badges_earned"`
}

func (s *Service) count(ctx context.Context, table string, query string, args ...any) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(table).Where(query, args...).Count(&n).Error
	return n, err
}

func (s *Service) sum(ctx context.Context, table, column, query string, args ...any) (float64, error) {
	var total *float64
	err := s.db.WithContext(ctx).Table(table).
		Select("SUM(" + column + ")").
		Where(query, args...).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (s *Service) ForNgo(ctx context.Context, ngoID string) (*NgoAnalytics, error) {
	out := &NgoAnalytics{}

	total, err := s.count(ctx, "ngo_projects", "ngo_id = ?", ngoID)
	if err != nil {
		return nil, err
	}
	out.TotalProjects = int(total)

	active, err := s.count(ctx, "ngo_projects", "ngo_id = ? AND status = ?", ngoID, domain.ProjectActive)
	if err != nil {
		return nil, err
	}
	out.ActiveProjects = int(active)

	completed, err := s.count(ctx, "ngo_projects", "ngo_id = ? AND status = ?", ngoID, domain.ProjectCompleted)
	if err != nil {
		return nil, err
	}
	out.CompletedProjects = int(completed)

	var volunteers int64
	if err := s.db.WithContext(ctx).Table("volunteer_engagements").
		Joins("JOIN ngo_projects p ON p.id = volunteer_engagements.project_id").
		Where("p.ngo_id = ?", ngoID).
		Distinct("volunteer_engagements.volunteer_id").
		Count(&volunteers).Error; err != nil {
		return nil, err
	}
	out.TotalVolunteers = int(volunteers)

	campaigns, err := s.count(ctx, "ngo_fundraisers", "ngo_id = ?", ngoID)
	if err != nil {
		return nil, err
	}
	out.TotalCampaigns = int(campaigns)

	raised, err := s.sum(ctx, "ngo_fundraisers", "raised", "ngo_id = ?", ngoID)
	if err != nil {
		return nil, err
	}
	out.TotalRaised = raised

	events, err := s.count(ctx, "ngo_events", "ngo_id = ?", ngoID)
	if err != nil {
		return nil, err
	}
	out.TotalEvents = int(events)

	donations, err := s.count(ctx, "donor_donations", "ngo_id = ?", ngoID)
	if err != nil {
		return nil, err
	}
	out.TotalDonations = int(donations)

	return out, nil
}

func (s *Service) ForVolunteer(ctx context.Context, volunteerID string) (*VolunteerAnalytics, error) {
	out := &VolunteerAnalytics{}

	hours, err := s.sum(ctx, "volunteer_engagements", "hours", "volunteer_id = ?", volunteerID)
	if err != nil {
		return nil, err
	}
	out.TotalHours = hours

	joined, err := s.count(ctx, "volunteer_engagements", "volunteer_id = ?", volunteerID)
	if err != nil {
		return nil, err
	}
	out.ProjectsJoined = int(joined)

	completed, err := s.count(ctx, "volunteer_engagements", "volunteer_id = ? AND status = ?", volunteerID, domain.EngagementCompleted)
	if err != nil {
		return nil, err
	}
	out.ProjectsCompleted = int(completed)

	events, err := s.count(ctx, "event_registrations", "user_id = ?", volunteerID)
	if err != nil {
		return nil, err
	}
	out.EventsRegistered = int(events)

	badges, err := s.count(ctx, "donor_achievements", "user_id = ?", volunteerID)
	if err != nil {
		return nil, err
	}
	out.BadgesEarned = int(badges)

	return out, nil
}

func (s *Service) ForDonor(ctx context.Context, donorID string) (*DonorAnalytics, error) {
	out := &DonorAnalytics{}

	donated, err := s.sum(ctx, "donor_donations", "amount", "donor_id = ?", donorID)
	if err != nil {
		return nil, err
	}
	out.TotalDonated = donated

	count, err := s.count(ctx, "donor_donations", "donor_id = ?", donorID)
	if err != nil {
		return nil, err
	}
	out.DonationCount = int(count)

	var ngos int64
	if err := s.db.WithContext(ctx).Table("donor_donations").
		Where("donor_id = ?", donorID).
		Distinct("ngo_id").
		Count(&ngos).Error; err != nil {
		return nil, err
	}
	out.NgosSupported = int(ngos)

	var campaigns int64
	if err := s.db.WithContext(ctx).Table("donor_donations").
		Where("donor_id = ?", donorID).
		Distinct("campaign_id").
		Count(&campaigns).Error; err != nil {
		return nil, err
	}
	out.CampaignsSupported = int(campaigns)

	reports, err := s.count(ctx, "donor_impact_reports", "donor_id = ?", donorID)
	if err != nil {
		return nil, err
	}
	out.ImpactReports = int(reports)

	badges, err := s.count(ctx, "donor_achievements", "user_id = ?", donorID)
	if err != nil {
		return nil, err
	}
	out.BadgesEarned = int(badges)

	return out, nil
}

// ExportBundle collects everything the platform stores about one user,
// for data portability.
type ExportBundle struct {
	User          *domain.User         `json:"user"`
	Engagements   []domain.Engagement  `json:"engagements,omitempty"`
	Skills        []domain.VolunteerSkill `json:"skills,omitempty"`
	Donations     []domain.Donation    `json:"donations,omitempty"`
	ImpactReports []domain.ImpactReport `json:"impact_reports,omitempty"`
	Badges        []domain.Badge       `json:"badges,omitempty"`
	Messages      []domain.Message     `json:"messages,omitempty"`
}

func (s *Service) Export(ctx context.Context, userID string) (*ExportBundle, error) {
	bundle := &ExportBundle{}

	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	bundle.User = &user

	if err := s.db.WithContext(ctx).
		Where("volunteer_id = ?", userID).Find(&bundle.Engagements).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("volunteer_id = ?", userID).Find(&bundle.Skills).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("donor_id = ?", userID).Find(&bundle.Donations).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("donor_id = ?", userID).Find(&bundle.ImpactReports).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).Find(&bundle.Badges).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Find(&bundle.Messages).Error; err != nil {
		return nil, err
	}

	return bundle, nil
}
