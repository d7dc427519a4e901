package resource

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

var (
	ErrAlreadyRequested = errors.New("resource is already requested")
	ErrOwnResource      = errors.New("an NGO cannot request its own resource")
	ErrNotOwner         = errors.New("resource belongs to another NGO")
	ErrNameRequired     = errors.New("resource name is required")
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	NotifyResourceShared(ctx context.Context, ngoName, resourceName string) error
}

type Service struct {
	resources *repository.ResourceRepository
	notifier  Notifier
}

func NewService(resources *repository.ResourceRepository, notifier Notifier) *Service {
	return &Service{resources: resources, notifier: notifier}
}

type ShareRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

// Share publishes a resource for other NGOs to request.
func (s *Service) Share(ctx context.Context, ngoID, ngoName string, req *ShareRequest) (*domain.Resource, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	res := &domain.Resource{
		ID:           uuid.NewString(),
		NgoID:        ngoID,
		NgoName:      ngoName,
		Name:         name,
		Type:         req.Type,
		Availability: domain.ResourceAvailable,
	}
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyResourceShared(ctx, ngoName, name); err != nil {
			log.Printf("resource: failed to notify about %s: %v", res.ID, err)
		}
	}
	return res, nil
}

func (s *Service) List(ctx context.Context, ngoID string) ([]domain.Resource, error) {
	if ngoID != "" {
		return s.resources.ListByNgo(ctx, ngoID)
	}
	return s.resources.ListAll(ctx)
}

// Request claims an available resource for the calling NGO. Only one
// outstanding request is allowed at a time.
func (s *Service) Request(ctx context.Context, resourceID, requesterID string) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.NgoID == requesterID {
		return nil, ErrOwnResource
	}
	if res.Availability != domain.ResourceAvailable {
		return nil, ErrAlreadyRequested
	}

	now := time.Now()
	res.Availability = domain.ResourceRequested
	res.RequestedBy = requesterID
	res.RequestedAt = &now
	if err := s.resources.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Release makes a requested resource available again. Only the owning
// NGO can release it.
func (s *Service) Release(ctx context.Context, resourceID, ngoID string) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.NgoID != ngoID {
		return nil, ErrNotOwner
	}

	res.Availability = domain.ResourceAvailable
	res.RequestedBy = ""
	res.RequestedAt = nil
	if err := s.resources.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}
