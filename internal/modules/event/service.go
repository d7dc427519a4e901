package event

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
	NotifyNewEvent(ctx context.Context, ngoName, title, eventID string) error
}

type Service struct {
	events          *repository.EventRepository
	registrations   *repository.EventRegistrationRepository
	volunteerEvents *repository.VolunteerEventRepository
	notifier        Notifier
}

func NewService(
	events *repository.EventRepository,
	registrations *repository.EventRegistrationRepository,
	volunteerEvents *repository.VolunteerEventRepository,
	notifier Notifier,
) *Service {
	return &Service{
		events:          events,
		registrations:   registrations,
		volunteerEvents: volunteerEvents,
		notifier:        notifier,
	}
}

func (s *Service) Create(ctx context.Context, ngoID, ngoName string, req *CreateEventRequest) (*domain.Event, error) {
	e := &domain.Event{
		ID:              uuid.NewString(),
		NgoID:           ngoID,
		NgoName:         ngoName,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Category:        req.Category,
		MaxParticipants: req.MaxParticipants,
		Status:          domain.EventUpcoming,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewEvent(ctx, ngoName, e.Title, e.ID); err != nil {
			log.Printf("event: failed to notify about %s: %v", e.ID, err)
		}
	}
	return e, nil
}

// Get loads an event with its attendee list derived from registrations.
func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrations.ListByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Registered = make([]domain.EventAttendee, 0, len(regs))
	for _, r := range regs {
		e.Registered = append(e.Registered, domain.EventAttendee{
			UserID:       r.UserID,
			UserRole:     string(r.UserRole),
			RegisteredAt: r.CreatedAt,
		})
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id, ngoID string, req *UpdateEventRequest) (*domain.Event, error) {
	existing, err := s.events.GetByID(ctx, id)
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
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Time != nil {
		fields["time"] = *req.Time
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.MaxParticipants != nil {
		fields["max_participants"] = *req.MaxParticipants
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		return existing, nil
	}
	return s.events.Patch(ctx, id, fields)
}

func (s *Service) ListByNgo(ctx context.Context, ngoID string) ([]domain.Event, error) {
	return s.events.ListByNgo(ctx, ngoID)
}

func (s *Service) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListUpcoming(ctx)
}

func (s *Service) Search(ctx context.Context, query, category string) ([]domain.Event, error) {
	return s.events.Search(ctx, query, category)
}

// Register signs a user up for an event. Volunteers additionally get a
// row in their personal event list. Registration is capped by
// MaxParticipants when it is set.
func (s *Service) Register(ctx context.Context, eventID, userID string, role domain.UserRole, opts RegisterOptions) (*domain.EventRegistration, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.EventUpcoming {
		return nil, ErrEventNotUpcoming
	}

	// Registering twice keeps both rows unless the caller opts into the
	// idempotent pre-check.
	if opts.Idempotent {
		exists, err := s.registrations.ExistsByEventAndUser(ctx, eventID, userID)
		if err != nil {
			return nil, err
		}
		if exists {
			regs, err := s.registrations.ListByEvent(ctx, eventID)
			if err != nil {
				return nil, err
			}
			for i := range regs {
				if regs[i].UserID == userID {
					return &regs[i], nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		}
	}

	if e.MaxParticipants > 0 {
		count, err := s.registrations.CountByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if count >= int64(e.MaxParticipants) {
			return nil, ErrEventFull
		}
	}

	reg := &domain.EventRegistration{
		ID:       uuid.NewString(),
		EventID:  e.ID,
		UserID:   userID,
		UserRole: role,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	if role == domain.RoleVolunteer {
		ve := &domain.VolunteerEvent{
			ID:          uuid.NewString(),
			VolunteerID: userID,
			EventID:     e.ID,
			EventTitle:  e.Title,
			NgoName:     e.NgoName,
			Date:        e.Date,
			Status:      string(domain.EventUpcoming),
		}
		if err := s.volunteerEvents.Create(ctx, ve); err != nil {
			log.Printf("event: failed to mirror registration for volunteer %s: %v", userID, err)
		}
	}
	return reg, nil
}

func (s *Service) ListVolunteerEvents(ctx context.Context, volunteerID string) ([]domain.VolunteerEvent, error) {
	return s.volunteerEvents.ListByVolunteer(ctx, volunteerID)
}
