package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidEmail = errors.New("email must contain '@'")
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

// Auth providers.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User represents a storefront account. PasswordHash is empty for
// accounts created through Google sign-in.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Provider     string
	CreatedAt    time.Time
}

// NewUser builds a user ensuring required invariants. The password hash
// is applied separately by the application layer.
func NewUser(name, email, provider string) (*User, error) {
	user := &User{Provider: provider}
	if err := user.SetName(name); err != nil {
		return nil, err
	}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if user.Provider == "" {
		user.Provider = ProviderEmail
	}
	return user, nil
}

// SetName trims and validates the display name.
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	return nil
}

// SetEmail trims, lowercases, and validates the email address.
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// HasPassword reports whether password login is possible for this
// account; Google accounts have no local credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// ValidatePassword applies the minimal strength rule to a raw password.
func ValidatePassword(password string) error {
	if len(strings.TrimSpace(password)) < 6 {
		return ErrWeakPassword
	}
	return nil
}
