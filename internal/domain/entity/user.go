package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the marketplace, either a buyer or a seller.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`       // Display name.
	Email        string    `json:"email"`      // Login identifier, unique across accounts.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password; never serialized.
	Phone        string    `json:"phone"`      // Contact phone number.
	Address      string    `json:"address"`    // Free-text contact address.
	Role         Role      `json:"role"`       // Either RoleBuyer or RoleSeller.
	Active       bool      `json:"active"`     // False once the account has been deactivated.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Roles returns the roles granted to the user, in the form embedded into access tokens.
func (u *User) Roles() Roles {
	if u == nil || !u.Role.IsValid() {
		return Roles{}
	}

	return Roles{u.Role}
}

// IsSeller reports whether the user lists products.
func (u *User) IsSeller() bool {
	return u != nil && u.Role == RoleSeller
}
