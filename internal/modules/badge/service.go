package badge

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

// Award thresholds.
const (
	tenHoursThreshold        = 10.0
	projectChampionThreshold = 5
	impactDonorThreshold     = 100000.0
	ngoSupporterThreshold    = 10
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	NotifyAchievement(ctx context.Context, userID, badgeName string) error
}

type Service struct {
	badges      *repository.BadgeRepository
	engagements *repository.EngagementRepository
	donations   *repository.DonationRepository
	notifier    Notifier
}

func NewService(
	badges *repository.BadgeRepository,
	engagements *repository.EngagementRepository,
	donations *repository.DonationRepository,
	notifier Notifier,
) *Service {
	return &Service{
		badges:      badges,
		engagements: engagements,
		donations:   donations,
		notifier:    notifier,
	}
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Badge, error) {
	return s.badges.ListByUser(ctx, userID)
}

// CheckVolunteer re-evaluates the volunteer thresholds and awards any
// badge that is newly earned. Safe to call repeatedly.
func (s *Service) CheckVolunteer(ctx context.Context, volunteerID string) error {
	hours, err := s.engagements.SumHoursByVolunteer(ctx, volunteerID)
	if err != nil {
		return err
	}
	if hours >= tenHoursThreshold {
		if err := s.award(ctx, volunteerID, domain.BadgeTenHours, "10 Hour Hero",
			"Logged 10 volunteer hours", "⏱️"); err != nil {
			return err
		}
	}

	completed, err := s.engagements.CountByVolunteerAndStatus(ctx, volunteerID, domain.EngagementCompleted)
	if err != nil {
		return err
	}
	if completed >= projectChampionThreshold {
		if err := s.award(ctx, volunteerID, domain.BadgeProjectChampion, "Project Champion",
			"Completed 5 projects", "🏆"); err != nil {
			return err
		}
	}
	return nil
}

// CheckDonor re-evaluates the donor thresholds.
func (s *Service) CheckDonor(ctx context.Context, donorID string) error {
	total, err := s.donations.SumByDonor(ctx, donorID)
	if err != nil {
		return err
	}
	if total >= impactDonorThreshold {
		if err := s.award(ctx, donorID, domain.BadgeImpactDonor, "Impact Donor",
			"Donated 100,000 in total", "💰"); err != nil {
			return err
		}
	}

	ngos, err := s.donations.CountDistinctNgosByDonor(ctx, donorID)
	if err != nil {
		return err
	}
	if ngos >= ngoSupporterThreshold {
		if err := s.award(ctx, donorID, domain.BadgeNgoSupporter, "NGO Supporter",
			"Supported 10 different NGOs", "🤝"); err != nil {
			return err
		}
	}
	return nil
}

// award inserts the badge once. The existence check keeps the common
// path cheap; the unique index catches concurrent awards.
func (s *Service) award(ctx context.Context, userID string, badgeType domain.BadgeType, name, description, icon string) error {
	exists, err := s.badges.Exists(ctx, userID, badgeType)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	b := &domain.Badge{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        badgeType,
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	if err := s.badges.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}

	if s.notifier != nil {
		if nerr := s.notifier.NotifyAchievement(ctx, userID, name); nerr != nil {
			log.Printf("badge: failed to notify %s about %s: %v", userID, badgeType, nerr)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
