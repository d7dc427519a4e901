package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"impactnet/internal/domain"
	"impactnet/internal/repository"
)

var (
	ErrBodyRequired      = errors.New("message body is required")
	ErrRecipientRequired = errors.New("recipient is required")
	ErrSelfMessage       = errors.New("cannot send a message to yourself")
)

// Notifier is the slice of the notification service this module needs.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, recipientID, senderName string) error
}

// Pusher delivers a realtime copy to the recipient, if connected.
type Pusher interface {
	SendToUser(userID string, payload any) bool
}

type Service struct {
	messages *repository.MessageRepository
	users    *repository.UserRepository
	notifier Notifier
	pusher   Pusher
}

func NewService(messages *repository.MessageRepository, users *repository.UserRepository, notifier Notifier, pusher Pusher) *Service {
	return &Service{
		messages: messages,
		users:    users,
		notifier: notifier,
		pusher:   pusher,
	}
}

type SendRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Subject     string `json:"subject"`
	Body        string `json:"body" binding:"required"`
}

// Send stores the message, pushes it over the recipient's websocket if
// one is open, and leaves a notification either way.
func (s *Service) Send(ctx context.Context, senderID, senderName string, req *SendRequest) (*domain.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrBodyRequired
	}
	if req.RecipientID == "" {
		return nil, ErrRecipientRequired
	}
	if req.RecipientID == senderID {
		return nil, ErrSelfMessage
	}

	// The recipient must exist; a dangling ID would create dead letters.
	if _, err := s.users.GetByID(ctx, req.RecipientID); err != nil {
		return nil, err
	}

	m := &domain.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		SenderName:  senderName,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        body,
		Read:        false,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.pusher != nil {
		_ = s.pusher.SendToUser(m.RecipientID, m)
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyNewMessage(ctx, m.RecipientID, senderName); err != nil {
			log.Printf("message: failed to notify %s: %v", m.RecipientID, err)
		}
	}
	return m, nil
}

// List returns the user's inbox and outbox interleaved, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.messages.ListForUser(ctx, userID)
}

// MarkAsRead flips the read flag; only the recipient may do it.
func (s *Service) MarkAsRead(ctx context.Context, id, recipientID string) error {
	return s.messages.MarkAsRead(ctx, id, recipientID)
}

func (s *Service) CountUnread(ctx context.Context, userID string) (int64, error) {
	return s.messages.CountUnread(ctx, userID)
}
