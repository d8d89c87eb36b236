package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository stores delivery addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	FindPrimary(ctx context.Context, userID uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearPrimary unsets the primary flag on every address of the user.
	ClearPrimary(ctx context.Context, userID uuid.UUID) error
}
