package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart.
// UnitPrice is frozen when the product is first added and is what checkout charges.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Subtotal returns UnitPrice x Quantity.
func (i *CartItem) Subtotal() decimal.Decimal {
	if i == nil {
		return decimal.Zero
	}

	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the set of items a user intends to buy.
type Cart struct {
	UserID uuid.UUID   `json:"user_id"`
	Items  []*CartItem `json:"items"`
}

// Total sums the subtotals of all items; an empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount returns the number of distinct products in the cart.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}

	return len(c.Items)
}

// UnitCount returns the sum of quantities across all items.
func (c *Cart) UnitCount() int {
	units := 0
	if c == nil {
		return units
	}
	for _, item := range c.Items {
		units += item.Quantity
	}

	return units
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c.ItemCount() == 0
}
