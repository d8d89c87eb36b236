package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product a user wants to keep an eye on.
type Favorite struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductID   uuid.UUID `json:"product_id"`
	NotifyStock bool      `json:"notify_stock"` // Notify the user when the product is restocked.
	CreatedAt   time.Time `json:"created_at"`
}

// ProductPopularity counts how many users favorited a product.
type ProductPopularity struct {
	ProductID uuid.UUID `json:"product_id"`
	Favorites int       `json:"favorites"`
}
