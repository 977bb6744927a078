package application

import (
	"context"

	"github.com/lemono/storefront-api/internal/domains/contact/domain"
	"github.com/lemono/storefront-api/internal/domains/contact/ports"
)

// SubscribeOutcome tells the caller what a newsletter signup did.
type SubscribeOutcome int

const (
	Subscribed SubscribeOutcome = iota
	AlreadySubscribed
	Resubscribed
)

// Service handles contact messages and newsletter signups.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// SubmitMessage validates and stores a contact-form entry.
func (s *Service) SubmitMessage(ctx context.Context, name, email, body string) (*domain.Message, error) {
	message, err := domain.NewMessage(name, email, body)
	if err != nil {
		return nil, err
	}
	return s.repo.SaveMessage(ctx, message)
}

const defaultMessageLimit = 20

// ListMessages returns the stored contact messages, newest first.
func (s *Service) ListMessages(ctx context.Context, filter ports.MessageFilter, page ports.Page) ([]*domain.Message, int64, error) {
	if page.Limit <= 0 {
		page.Limit = defaultMessageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return s.repo.ListMessages(ctx, filter, page)
}

// MarkMessageRead flags a message as seen and returns the updated entry.
func (s *Service) MarkMessageRead(ctx context.Context, id string) (*domain.Message, error) {
	return s.repo.MarkMessageRead(ctx, id)
}

// Subscribe signs an email up for the newsletter. Existing inactive
// subscriptions are reactivated; active ones are left alone.
func (s *Service) Subscribe(ctx context.Context, email string) (SubscribeOutcome, error) {
	subscription, err := domain.NewSubscription(email)
	if err != nil {
		return Subscribed, err
	}
	existing, err := s.repo.GetSubscription(ctx, subscription.Email)
	if err != nil {
		return Subscribed, err
	}
	if existing != nil {
		if existing.Active {
			return AlreadySubscribed, nil
		}
		existing.Active = true
		if err := s.repo.SaveSubscription(ctx, existing); err != nil {
			return Subscribed, err
		}
		return Resubscribed, nil
	}
	if err := s.repo.SaveSubscription(ctx, subscription); err != nil {
		return Subscribed, err
	}
	return Subscribed, nil
}
