package memory

import (
	"context"
	"sync"

	"github.com/lemono/storefront-api/internal/domains/users/ports"
)

var _ ports.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore keeps the favorites relation in process memory.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string][]string
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{favorites: map[string][]string{}}
}

func (s *FavoriteStore) Add(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.favorites[userID] {
		if id == productID {
			return ports.ErrAlreadyFavorite
		}
	}
	s.favorites[userID] = append(s.favorites[userID], productID)
	return nil
}

func (s *FavoriteStore) Remove(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.favorites[userID]
	for i, id := range ids {
		if id == productID {
			s.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *FavoriteStore) ListProductIDs(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.favorites[userID]...), nil
}
