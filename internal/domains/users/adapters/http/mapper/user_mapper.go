package mapper

import (
	"time"

	usersdomain "github.com/lemono/storefront-api/internal/domains/users/domain"
)

// User is the outbound account shape. The password hash never leaves
// the domain layer.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser converts a domain user to the transport representation.
func FromDomainUser(user *usersdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}
