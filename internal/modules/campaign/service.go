package campaign

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	NotifyNewDonation(ctx context.Context, ngoID, donorName, campaignTitle, campaignID string, amount float64) error
}

// BadgeChecker re-evaluates a donor's badge thresholds after a donation.
type BadgeChecker interface {
	CheckDonor(ctx context.Context, donorID string) error
}

type Service struct {
	db        *gorm.DB
	campaigns *repository.CampaignRepository
	donations *repository.DonationRepository
	reports   *repository.ImpactReportRepository
	notifier  Notifier
	badges    BadgeChecker
}

func NewService(
	db *gorm.DB,
	campaigns *repository.CampaignRepository,
	donations *repository.DonationRepository,
	reports *repository.ImpactReportRepository,
	notifier Notifier,
	badges BadgeChecker,
) *Service {
	return &Service{
		db:        db,
		campaigns: campaigns,
		donations: donations,
		reports:   reports,
		notifier:  notifier,
		badges:    badges,
	}
}

func (s *Service) Create(ctx context.Context, ngoID, ngoName string, req *CreateCampaignRequest) (*domain.Campaign, error) {
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		NgoID:       ngoID,
		NgoName:     ngoName,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Goal:        req.Goal,
		Raised:      0,
		Status:      domain.CampaignActive,
		EndDate:     req.EndDate,
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get loads a campaign with its donor list derived from donations.
func (s *Service) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dons, err := s.donations.ListByCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Donors = make([]domain.CampaignDonor, 0, len(dons))
	for _, d := range dons {
		c.Donors = append(c.Donors, domain.CampaignDonor{
			DonorID:   d.DonorID,
			Name:      d.DonorName,
			Amount:    d.Amount,
			DonatedAt: d.CreatedAt,
		})
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id, ngoID string, req *UpdateCampaignRequest) (*domain.Campaign, error) {
	existing, err := s.campaigns.GetByID(ctx, id)
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
	if req.Goal != nil {
		fields["goal"] = *req.Goal
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if len(fields) == 0 {
		return existing, nil
	}
	return s.campaigns.Patch(ctx, id, fields)
}

func (s *Service) ListByNgo(ctx context.Context, ngoID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByNgo(ctx, ngoID)
}

func (s *Service) Search(ctx context.Context, query, category string) ([]domain.Campaign, error) {
	return s.campaigns.Search(ctx, query, category)
}

// Donate records a donation atomically: the campaign row is locked, the
// raised total incremented, the donation stored and a pending impact
// report opened, all in one transaction. A campaign that reaches its
// goal flips to completed but keeps accepting donations; only a closed
// campaign refuses them.
func (s *Service) Donate(ctx context.Context, campaignID, donorID, donorName string, req *DonateRequest) (*domain.Donation, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var donation *domain.Donation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.Campaign
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&c, "id = ?", campaignID).Error; err != nil {
			return err
		}
		if c.Status == domain.CampaignClosed {
			return ErrCampaignClosed
		}

		c.Raised += req.Amount
		if c.Raised >= c.Goal {
			c.Status = domain.CampaignCompleted
		}
		if err := tx.Model(&domain.Campaign{}).
			Where("id = ?", c.ID).
			Updates(map[string]any{"raised": c.Raised, "status": c.Status}).Error; err != nil {
			return err
		}

		donation = &domain.Donation{
			ID:            uuid.NewString(),
			DonorID:       donorID,
			DonorName:     donorName,
			CampaignID:    c.ID,
			CampaignTitle: c.Title,
			NgoID:         c.NgoID,
			NgoName:       c.NgoName,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			Status:        domain.DonationCompleted,
		}
		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		report := &domain.ImpactReport{
			ID:            uuid.NewString(),
			DonorID:       donorID,
			CampaignID:    c.ID,
			CampaignTitle: c.Title,
			NgoName:       c.NgoName,
			Amount:        req.Amount,
			Status:        domain.ImpactPending,
		}
		return tx.Create(report).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if nerr := s.notifier.NotifyNewDonation(ctx, donation.NgoID, donorName, donation.CampaignTitle, donation.CampaignID, donation.Amount); nerr != nil {
			log.Printf("campaign: failed to notify ngo %s about donation: %v", donation.NgoID, nerr)
		}
	}
	if s.badges != nil {
		if berr := s.badges.CheckDonor(ctx, donorID); berr != nil {
			log.Printf("campaign: badge check failed for %s: %v", donorID, berr)
		}
	}
	return donation, nil
}

func (s *Service) ListDonationsByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID)
}

func (s *Service) ListImpactReports(ctx context.Context, donorID string) ([]domain.ImpactReport, error) {
	return s.reports.ListByDonor(ctx, donorID)
}

// PublishImpactReport fills in the impact text on a pending report. Only
// the NGO that owns the report's campaign may publish it.
func (s *Service) PublishImpactReport(ctx context.Context, reportID, ngoID, impact string) (*domain.ImpactReport, error) {
	impact = strings.TrimSpace(impact)
	if impact == "" {
		return nil, ErrImpactRequired
	}

	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep.Status == domain.ImpactPublished {
		return nil, ErrAlreadyPublished
	}

	c, err := s.campaigns.GetByID(ctx, rep.CampaignID)
	if err != nil {
		return nil, err
	}
	if c.NgoID != ngoID {
		return nil, ErrNotOwner
	}

	rep.Impact = impact
	rep.Status = domain.ImpactPublished
	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}
