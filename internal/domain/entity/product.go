package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductNameMaxLength is the longest product name accepted.
const ProductNameMaxLength = 150

// Product is an item listed by a seller.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"` // Sellable units, never negative.
	ImageKey    string          `json:"image_key,omitempty"`
	Active      bool            `json:"active"`
	PreOrder    bool            `json:"pre_order"` // Accepts pre-orders while out of stock.
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasStock reports whether quantity units can be taken from the current stock.
func (p *Product) HasStock(quantity int) bool {
	return p != nil && quantity > 0 && p.Stock >= quantity
}

// IsOwnedBy reports whether the product is listed by the given seller.
func (p *Product) IsOwnedBy(sellerID uuid.UUID) bool {
	return p != nil && p.SellerID == sellerID
}
