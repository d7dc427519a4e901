package project

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	NotifyNewProject(ctx context.Context, ngoName, title, projectID string) error
	NotifyVolunteerJoined(ctx context.Context, ngoID, volunteerName, projectTitle, projectID string) error
}

// BadgeChecker re-evaluates a volunteer's badge thresholds after hours
// or completions change.
type BadgeChecker interface {
	CheckVolunteer(ctx context.Context, volunteerID string) error
}

type Service struct {
	projects    *repository.ProjectRepository
	engagements *repository.EngagementRepository
	skills      *repository.SkillRepository
	notifier    Notifier
	badges      BadgeChecker
}

func NewService(
	projects *repository.ProjectRepository,
	engagements *repository.EngagementRepository,
	skills *repository.SkillRepository,
	notifier Notifier,
	badges BadgeChecker,
) *Service {
	return &Service{
		projects:    projects,
		engagements: engagements,
		skills:      skills,
		notifier:    notifier,
		badges:      badges,
	}
}

func (s *Service) Create(ctx context.Context, ngoID, ngoName string, req *CreateProjectRequest) (*domain.Project, error) {
	urgency := domain.Urgency(req.Urgency)
	switch urgency {
	case domain.UrgencyLow, domain.UrgencyMedium, domain.UrgencyHigh:
	default:
		urgency = domain.UrgencyMedium
	}

	p := &domain.Project{
		ID:               uuid.NewString(),
		NgoID:            ngoID,
		NgoName:          ngoName,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Category:         req.Category,
		SkillsNeeded:     req.SkillsNeeded,
		VolunteersNeeded: req.VolunteersNeeded,
		FundGoal:         req.FundGoal,
		Status:           domain.ProjectActive,
		Urgency:          urgency,
		Location:         req.Location,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ImageURL:         req.ImageURL,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewProject(ctx, ngoName, p.Title, p.ID); err != nil {
			log.Printf("project: failed to notify volunteers about %s: %v", p.ID, err)
		}
	}
	return p, nil
}

// Get loads a project together with its joined volunteers, which are
// derived from the engagement rows.
func (s *Service) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.loadVolunteers(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) loadVolunteers(ctx context.Context, p *domain.Project) error {
	engs, err := s.engagements.ListByProject(ctx, p.ID)
	if err != nil {
		return err
	}
	p.VolunteersJoined = make([]domain.ProjectVolunteer, 0, len(engs))
	for _, e := range engs {
		p.VolunteersJoined = append(p.VolunteersJoined, domain.ProjectVolunteer{
			VolunteerID: e.VolunteerID,
			Name:        e.VolunteerName,
			JoinedAt:    e.CreatedAt,
			Status:      string(e.Status),
		})
	}
	return nil
}

func (s *Service) Update(ctx context.Context, id, ngoID string, req *UpdateProjectRequest) (*domain.Project, error) {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.NgoID != ngoID {
		return nil, ErrNotOwner
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.SkillsNeeded != nil {
		fields["skills_needed"] = *req.SkillsNeeded
	}
	if req.VolunteersNeeded != nil {
		fields["volunteers_needed"] = *req.VolunteersNeeded
	}
	if req.FundGoal != nil {
		fields["fund_goal"] = *req.FundGoal
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		switch status {
		case domain.ProjectActive, domain.ProjectCompleted, domain.ProjectPaused:
			fields["status"] = status
		default:
			return nil, ErrInvalidStatus
		}
	}
	if req.Urgency != nil {
		fields["urgency"] = *req.Urgency
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if len(fields) == 0 {
		return existing, nil
	}

	return s.projects.Patch(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id, ngoID string) error {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.NgoID != ngoID {
		return ErrNotOwner
	}
	ok, err := s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Service) ListByNgo(ctx context.Context, ngoID string) ([]domain.Project, error) {
	return s.projects.ListByNgo(ctx, ngoID)
}

func (s *Service) Search(ctx context.Context, f SearchFilters) ([]domain.Project, error) {
	return s.projects.Search(ctx, repository.ProjectFilters{
		Query:    f.Query,
		Category: f.Category,
		Location: f.Location,
		Urgency:  string(f.Urgency),
	})
}

// Join enrolls a volunteer into a project. By default a second join
// fails; with opts.Idempotent the existing engagement is returned.
func (s *Service) Join(ctx context.Context, projectID, volunteerID, volunteerName string, opts JoinOptions) (*domain.Engagement, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ProjectActive {
		return nil, ErrProjectNotActive
	}

	// Joining twice creates two engagements unless the caller opts into
	// the idempotent pre-check.
	if opts.Idempotent {
		exists, err := s.engagements.ExistsByVolunteerAndProject(ctx, volunteerID, projectID)
		if err != nil {
			return nil, err
		}
		if exists {
			list, err := s.engagements.ListByVolunteer(ctx, volunteerID)
			if err != nil {
				return nil, err
			}
			for i := range list {
				if list[i].ProjectID == projectID {
					return &list[i], nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		}
	}

	e := &domain.Engagement{
		ID:            uuid.NewString(),
		VolunteerID:   volunteerID,
		VolunteerName: volunteerName,
		ProjectID:     p.ID,
		ProjectTitle:  p.Title,
		NgoName:       p.NgoName,
		Hours:         0,
		Status:        domain.EngagementActive,
		Progress:      0,
	}
	if err := s.engagements.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyVolunteerJoined(ctx, p.NgoID, volunteerName, p.Title, p.ID); err != nil {
			log.Printf("project: failed to notify ngo %s about join: %v", p.NgoID, err)
		}
	}
	return e, nil
}

// LogHours adds hours to the volunteer's own engagement and re-checks
// badge thresholds afterwards.
func (s *Service) LogHours(ctx context.Context, engagementID, volunteerID string, hours float64) (*domain.Engagement, error) {
	if hours <= 0 {
		return nil, ErrInvalidHours
	}

	e, err := s.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return nil, err
	}
	if e.VolunteerID != volunteerID {
		return nil, ErrNotEngaged
	}

	e.Hours += hours
	if err := s.engagements.Update(ctx, e); err != nil {
		return nil, err
	}

	s.recheckBadges(ctx, volunteerID)
	return e, nil
}

// UpdateEngagement lets the volunteer adjust progress and close out the
// engagement. Completions feed the badge thresholds.
func (s *Service) UpdateEngagement(ctx context.Context, engagementID, volunteerID string, req *UpdateEngagementRequest) (*domain.Engagement, error) {
	e, err := s.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return nil, err
	}
	if e.VolunteerID != volunteerID {
		return nil, ErrNotEngaged
	}

	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, ErrInvalidProgress
		}
		e.Progress = *req.Progress
	}
	completed := false
	if req.Status != nil {
		status := domain.EngagementStatus(*req.Status)
		switch status {
		case domain.EngagementActive, domain.EngagementCompleted:
		default:
			return nil, ErrInvalidStatus
		}
		completed = status == domain.EngagementCompleted && e.Status != domain.EngagementCompleted
		e.Status = status
		if completed {
			e.Progress = 100
		}
	}

	if err := s.engagements.Update(ctx, e); err != nil {
		return nil, err
	}

	if completed {
		s.recheckBadges(ctx, volunteerID)
	}
	return e, nil
}

func (s *Service) recheckBadges(ctx context.Context, volunteerID string) {
	if s.badges == nil {
		return
	}
	if err := s.badges.CheckVolunteer(ctx, volunteerID); err != nil {
		log.Printf("project: badge check failed for %s: %v", volunteerID, err)
	}
}

func (s *Service) ListEngagements(ctx context.Context, volunteerID string) ([]domain.Engagement, error) {
	return s.engagements.ListByVolunteer(ctx, volunteerID)
}

func (s *Service) AddSkill(ctx context.Context, volunteerID string, req *AddSkillRequest) (*domain.VolunteerSkill, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrSkillNameRequired
	}
	sk := &domain.VolunteerSkill{
		ID:          uuid.NewString(),
		VolunteerID: volunteerID,
		Name:        name,
		Level:       req.Level,
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, err
	}
	return sk, nil
}

func (s *Service) ListSkills(ctx context.Context, volunteerID string) ([]domain.VolunteerSkill, error) {
	return s.skills.ListByVolunteer(ctx, volunteerID)
}
