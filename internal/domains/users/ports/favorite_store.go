package ports

import (
	"context"
	"errors"
)

// ErrAlreadyFavorite signals the (user, product) pair already exists.
var ErrAlreadyFavorite = errors.New("already in favorites")

// FavoriteStore persists the user->product favorites relation.
type FavoriteStore interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	ListProductIDs(ctx context.Context, userID string) ([]string, error)
}
