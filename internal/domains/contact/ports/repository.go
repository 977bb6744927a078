package ports

import (
	"context"
	"errors"

	"github.com/lemono/storefront-api/internal/domains/contact/domain"
)

var ErrMessageNotFound = errors.New("contact message not found")

// MessageFilter narrows message listings. A nil Read means "any".
type MessageFilter struct {
	Read *bool
}

// Page bounds a message listing.
type Page struct {
	Limit  int
	Offset int
}

// Repository persists contact messages and newsletter subscriptions.
type Repository interface {
	SaveMessage(ctx context.Context, message *domain.Message) (*domain.Message, error)
	// ListMessages returns messages newest first plus the total count.
	ListMessages(ctx context.Context, filter MessageFilter, page Page) ([]*domain.Message, int64, error)
	MarkMessageRead(ctx context.Context, id string) (*domain.Message, error)
	// GetSubscription returns nil when the email never subscribed.
	GetSubscription(ctx context.Context, email string) (*domain.Subscription, error)
	SaveSubscription(ctx context.Context, subscription *domain.Subscription) error
}
