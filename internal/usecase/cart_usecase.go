package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the cart of a user with its derived totals.
type CartView struct {
	Items     []*entity.CartItem
	ItemCount int
	UnitCount int
	Total     decimal.Decimal
}

// CartUsecase manages shopping carts.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem adds quantity units of a product, merging with an existing line.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error)

	// UpdateQuantity sets the quantity of a line. A quantity of zero or less
	// removes the line and returns a nil item.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart empties the cart. Clearing an empty cart succeeds.
	ClearCart(ctx context.Context, userID uuid.UUID) error
	CartTotal(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}
