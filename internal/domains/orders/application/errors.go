package application

import (
	"errors"
	"fmt"

	"github.com/lemono/storefront-api/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrSignatureMismatch signals a payment callback failed verification.
	// The order stays unconfirmed and nothing is mutated.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	// ErrOrderNumberExhausted signals repeated order-number collisions.
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyItems) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidSize) ||
		errors.Is(err, domain.ErrIncompleteAddress) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
