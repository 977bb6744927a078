package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lemono/storefront-api/internal/domains/users/domain"
	"github.com/lemono/storefront-api/internal/domains/users/ports"
)

// sessionTokenBytes is the entropy of an issued session token before
// hex encoding.
const sessionTokenBytes = 32

// Service exposes the users bounded context use cases: registration,
// password and Google login, session tokens, and favorites.
type Service struct {
	repo      ports.Repository
	sessions  ports.SessionStore
	favorites ports.FavoriteStore
}

func NewService(repo ports.Repository, sessions ports.SessionStore, favorites ports.FavoriteStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions, favorites: favorites}
}

// Register creates a new email/password account. The raw password never
// reaches storage; only its bcrypt hash does.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := domain.ValidatePassword(password); err != nil {
		return nil, mapError(err)
	}
	user, err := domain.NewUser(name, email, domain.ProviderEmail)
	if err != nil {
		return nil, mapError(err)
	}
	if existing, err := s.repo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, ports.ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	return s.repo.Save(ctx, user)
}

// Login authenticates an email/password account and issues a session
// token. Accounts created through Google sign-in have no local password
// and are rejected with ErrPasswordlessAccount.
func (s *Service) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ports.ErrInvalidCredentials
	}
	if !user.HasPassword() {
		return nil, ErrPasswordlessAccount
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ports.ErrInvalidCredentials
	}
	return s.issueSession(ctx, user)
}

// GoogleLogin finds or creates an account for a Google-verified identity.
func (s *Service) GoogleLogin(ctx context.Context, name, email string) (*ports.LoginResult, error) {
	candidate, err := domain.NewUser(name, email, domain.ProviderGoogle)
	if err != nil {
		return nil, mapError(err)
	}
	user, err := s.repo.GetByEmail(ctx, candidate.Email)
	if err != nil {
		user, err = s.repo.Save(ctx, candidate)
		if err != nil {
			return nil, err
		}
	}
	return s.issueSession(ctx, user)
}

func (s *Service) Logout(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, userID)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) AddFavorite(ctx context.Context, userID, productID string) error {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.favorites.Add(ctx, userID, productID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return s.favorites.Remove(ctx, userID, productID)
}

func (s *Service) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.ListProductIDs(ctx, userID)
}

func (s *Service) issueSession(ctx context.Context, user *domain.User) (*ports.LoginResult, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := s.sessions.Save(ctx, user.ID, token); err != nil {
		return nil, err
	}
	return &ports.LoginResult{User: user, Token: token}, nil
}

// newSessionToken draws 32 bytes from crypto/rand and hex-encodes them.
// Tokens are bearer credentials, so they must be unguessable.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.Service = (*Service)(nil)
