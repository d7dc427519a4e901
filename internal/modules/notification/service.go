package notification

import (
	"context"
	"errors"
	"fmt"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

// ErrInvalidTarget is returned when a notification does not carry
// exactly one targeting mode.
var ErrInvalidTarget = errors.New("notification must target exactly one of user, role, ngo")

// Pusher delivers a realtime copy to a connected user, if any.
type Pusher interface {
	SendToUser(userID string, payload any) bool
}

type Service struct {
	repo          *Repository
	announcements *repository.AnnouncementRepository
	pusher        Pusher
}

func NewService(repo *Repository, announcements *repository.AnnouncementRepository) *Service {
	return &Service{repo: repo, announcements: announcements}
}

// SetPusher enables realtime delivery for user-targeted notifications.
func (s *Service) SetPusher(p Pusher) { s.pusher = p }

func (s *Service) Create(ctx context.Context, n *Notification) error {
	modes := 0
	if n.TargetUserID != "" {
		modes++
	}
	if n.TargetRole != "" {
		modes++
	}
	if n.TargetNgoID != "" {
		modes++
	}
	if modes != 1 {
		return ErrInvalidTarget
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.pusher != nil && n.TargetUserID != "" {
		_ = s.pusher.SendToUser(n.TargetUserID, n)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID, role string, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	list, err := s.repo.ListFor(ctx, userID, role, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnreadFor(ctx, userID, role)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id string) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID, role string) error {
	return s.repo.MarkAllAsReadFor(ctx, userID, role)
}

// Announce stores the announcement and fans it out to the targeted
// audiences as role notifications.
func (s *Service) Announce(ctx context.Context, a *domain.Announcement) error {
	if err := s.announcements.Create(ctx, a); err != nil {
		return err
	}

	for _, audience := range a.TargetAudience {
		role := ""
		switch audience {
		case "volunteers":
			role = string(domain.RoleVolunteer)
		case "donors":
			role = string(domain.RoleDonor)
		case "all":
			role = RoleAll
		}
		if role == "" {
			continue
		}
		if err := s.Create(ctx, &Notification{
			Type:       TypeAnnouncement,
			Title:      a.Title,
			Message:    a.Message,
			TargetRole: role,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) NotifyNewNgoRegistration(ctx context.Context, organizationName string) error {
	return s.Create(ctx, &Notification{
		Type:       TypeNewNgoRegistration,
		Title:      "New NGO Registration",
		Message:    fmt.Sprintf("%s has registered and is pending verification", organizationName),
		TargetRole: string(domain.RoleAdmin),
	})
}

func (s *Service) NotifyVerificationApproved(ctx context.Context, ngoUserID, organizationName string) error {
	return s.Create(ctx, &Notification{
		Type:         TypeVerificationApproved,
		Title:        "Verification Approved",
		Message:      fmt.Sprintf("%s has been verified and can now sign in", organizationName),
		TargetUserID: ngoUserID,
	})
}

func (s *Service) NotifyVerificationRejected(ctx context.Context, ngoUserID, organizationName, reason string) error {
	msg := fmt.Sprintf("The registration of %s was rejected", organizationName)
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Create(ctx, &Notification{
		Type:         TypeVerificationRejected,
		Title:        "Verification Rejected",
		Message:      msg,
		TargetUserID: ngoUserID,
	})
}

func (s *Service) NotifyNewProject(ctx context.Context, ngoName, title, projectID string) error {
	return s.Create(ctx, &Notification{
		Type:       TypeNewProject,
		Title:      "New Project Available",
		Message:    fmt.Sprintf("%s has posted a new project: %s", ngoName, title),
		TargetRole: string(domain.RoleVolunteer),
		ProjectID:  projectID,
	})
}

func (s *Service) NotifyVolunteerJoined(ctx context.Context, ngoID, volunteerName, projectTitle, projectID string) error {
	return s.Create(ctx, &Notification{
		Type:        TypeVolunteerJoined,
		Title:       "New Volunteer Joined",
		Message:     fmt.Sprintf("%s has joined your project: %s", volunteerName, projectTitle),
		TargetNgoID: ngoID,
		ProjectID:   projectID,
	})
}

func (s *Service) NotifyNewDonation(ctx context.Context, ngoID, donorName, campaignTitle, campaignID string, amount float64) error {
	return s.Create(ctx, &Notification{
		Type:        TypeNewDonation,
		Title:       "New Donation Received",
		Message:     fmt.Sprintf("%s donated %.0f to %s", donorName, amount, campaignTitle),
		TargetNgoID: ngoID,
		CampaignID:  campaignID,
	})
}

func (s *Service) NotifyNewEvent(ctx context.Context, ngoName, title, eventID string) error {
	return s.Create(ctx, &Notification{
		Type:       TypeNewEvent,
		Title:      "New Event Posted",
		Message:    fmt.Sprintf("%s is organizing: %s", ngoName, title),
		TargetRole: RoleAll,
		EventID:    eventID,
	})
}

func (s *Service) NotifyResourceShared(ctx context.Context, ngoName, resourceName string) error {
	return s.Create(ctx, &Notification{
		Type:       TypeResourceShared,
		Title:      "New Resource Available",
		Message:    fmt.Sprintf("%s is sharing: %s", ngoName, resourceName),
		TargetRole: string(domain.RoleNgo),
	})
}

func (s *Service) NotifyNewMessage(ctx context.Context, recipientID, senderName string) error {
	return s.Create(ctx, &Notification{
		Type:         TypeNewMessage,
		Title:        "New Message",
		Message:      fmt.Sprintf("You have a new message from %s", senderName),
		TargetUserID: recipientID,
	})
}

func (s *Service) NotifyAchievement(ctx context.Context, userID, badgeName string) error {
	return s.Create(ctx, &Notification{
		Type:         TypeAchievement,
		Title:        "New Achievement Unlocked!",
		Message:      fmt.Sprintf("Congratulations! You've earned the %q badge", badgeName),
		TargetUserID: userID,
	})
}
