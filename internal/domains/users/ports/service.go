package ports

import (
	"context"

	"github.com/lemono/storefront-api/internal/domains/users/domain"
)

// LoginResult is a successful authentication: the account plus an
// opaque session token.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Service exposes the account use cases to adapters.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GoogleLogin(ctx context.Context, name, email string) (*LoginResult, error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
	ListFavorites(ctx context.Context, userID string) ([]string, error)
}
