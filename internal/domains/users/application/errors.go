package application

import (
	"errors"
	"fmt"

	"github.com/lemono/storefront-api/internal/domains/users/domain"
)

var (
	// ErrInvalidInput signals the request violated an account invariant.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrPasswordlessAccount signals a password login attempt against an
	// account that only has Google sign-in.
	ErrPasswordlessAccount = errors.New("account has no password, use Google sign-in")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrWeakPassword) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
