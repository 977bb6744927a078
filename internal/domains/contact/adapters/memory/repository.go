package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lemono/storefront-api/internal/domains/contact/domain"
	"github.com/lemono/storefront-api/internal/domains/contact/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps contact messages and subscriptions in process memory.
type Repository struct {
	mu            sync.RWMutex
	messages      []*domain.Message
	subscriptions map[string]*domain.Subscription
}

func NewRepository() *Repository {
	return &Repository{subscriptions: map[string]*domain.Subscription{}}
}

func (r *Repository) SaveMessage(_ context.Context, message *domain.Message) (*domain.Message, error) {
	clone := *message
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	r.mu.Lock()
	r.messages = append(r.messages, &clone)
	r.mu.Unlock()
	saved := clone
	return &saved, nil
}

func (r *Repository) ListMessages(_ context.Context, filter ports.MessageFilter, page ports.Page) ([]*domain.Message, int64, error) {
	r.mu.RLock()
	var matched []*domain.Message
	for _, message := range r.messages {
		if filter.Read != nil && message.Read != *filter.Read {
			continue
		}
		clone := *message
		matched = append(matched, &clone)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if page.Offset >= len(matched) {
		return []*domain.Message{}, total, nil
	}
	matched = matched[page.Offset:]
	if page.Limit > 0 && page.Limit < len(matched) {
		matched = matched[:page.Limit]
	}
	return matched, total, nil
}

func (r *Repository) MarkMessageRead(_ context.Context, id string) (*domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.ID == id {
			message.Read = true
			clone := *message
			return &clone, nil
		}
	}
	return nil, ports.ErrMessageNotFound
}

func (r *Repository) GetSubscription(_ context.Context, email string) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subscription, ok := r.subscriptions[email]
	if !ok {
		return nil, nil
	}
	clone := *subscription
	return &clone, nil
}

func (r *Repository) SaveSubscription(_ context.Context, subscription *domain.Subscription) error {
	clone := *subscription
	r.mu.Lock()
	r.subscriptions[clone.Email] = &clone
	r.mu.Unlock()
	return nil
}
