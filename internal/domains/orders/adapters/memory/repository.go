package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
	"github.com/lemono/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store for development and tests.
// It enforces order-number uniqueness like the relational schema does.
type Repository struct {
	mu        sync.RWMutex
	orders    map[string]*domain.Order
	byNumber  map[string]string
	createdAt func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		orders:    map[string]*domain.Order{},
		byNumber:  map[string]string{},
		createdAt: time.Now,
	}
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	if now != nil {
		r.createdAt = now
	}
	return r
}

func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNumber[clone.OrderNumber]; exists {
		return nil, ports.ErrDuplicateOrderNumber
	}
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = r.createdAt()
	}
	r.orders[clone.ID] = clone
	r.byNumber[clone.OrderNumber] = clone.ID
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) GetByNumber(_ context.Context, orderNumber string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byNumber[orderNumber]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(r.orders[id]), nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	order.Status = status
	return cloneOrder(order), nil
}

func (r *Repository) List(_ context.Context, filter ports.ListFilter, page ports.Page) ([]*domain.Order, int64, error) {
	r.mu.RLock()
	var matched []*domain.Order
	for _, order := range r.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && order.UserID != filter.UserID {
			continue
		}
		matched = append(matched, cloneOrder(order))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if page.Offset >= len(matched) {
		return []*domain.Order{}, total, nil
	}
	matched = matched[page.Offset:]
	if page.Limit > 0 && page.Limit < len(matched) {
		matched = matched[:page.Limit]
	}
	return matched, total, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.LineItem(nil), order.Items...)
	return &clone
}
