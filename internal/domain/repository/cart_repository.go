package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository stores cart items.
type CartRepository interface {
	// FindByUser returns the user's items ordered by creation time.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// AddQuantity inserts the item or, when the user already has a line for the
	// product, adds item.Quantity to it in the same statement. The item is filled
	// with the stored row, so a merged line keeps the unit price of its first add.
	AddQuantity(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every item of the user and reports how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
