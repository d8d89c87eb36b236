package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput holds the fields of a delivery address.
type AddressInput struct {
	Label       string
	FullAddress string
	City        string
	PostalCode  string
	Phone       string
	IsPrimary   bool
}

// AddressUsecase manages the delivery addresses of a user.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error
	// SetPrimary makes the address the user's only primary address.
	SetPrimary(ctx context.Context, userID, addressID uuid.UUID) error
}
