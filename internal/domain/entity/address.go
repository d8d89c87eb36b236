package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery address saved by a user.
type Address struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Label       string    `json:"label"`        // e.g. "Home", "Office"
	FullAddress string    `json:"full_address"` // Street and number.
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Phone       string    `json:"phone"`
	IsPrimary   bool      `json:"is_primary"` // At most one primary address per user.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Formatted renders the address as the free-text delivery address stored on orders.
func (a *Address) Formatted() string {
	if a == nil {
		return ""
	}

	out := a.FullAddress
	if a.City != "" {
		out += ", " + a.City
	}
	if a.PostalCode != "" {
		out += " " + a.PostalCode
	}

	return out
}
