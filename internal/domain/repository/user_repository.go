// Package repository declares the storage ports of the marketplace. The
// sentinel errors here are what use cases branch on.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores buyer and seller accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches the normalized address. Create fails with
	// domainerrors.ErrUserAlreadyExists when the address is taken.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error

	// FindActiveIDs returns the ids of active users, restricted to role when it is not empty.
	FindActiveIDs(ctx context.Context, role entity.Role) ([]uuid.UUID, error)

	// FilterExistingIDs returns the subset of ids that belong to active users.
	FilterExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
