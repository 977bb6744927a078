package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrMessageTooShort = errors.New("message must be at least 10 characters")
)

// Message is a submitted contact-form entry. Read tracks whether an
// administrator has seen it.
type Message struct {
	ID        string
	Name      string
	Email     string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// NewMessage validates and constructs a contact message.
func NewMessage(name, email, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	body = strings.TrimSpace(body)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(body) < 10 {
		return nil, ErrMessageTooShort
	}
	return &Message{Name: name, Email: email, Body: body}, nil
}

// Subscription is a newsletter signup. Inactive rows are kept so a
// re-subscribe reactivates instead of duplicating.
type Subscription struct {
	Email  string
	Active bool
}

// NewSubscription validates the signup email.
func NewSubscription(email string) (*Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return &Subscription{Email: email, Active: true}, nil
}
