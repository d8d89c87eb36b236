package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Device persistence errors.
var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of users.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser lists the active devices of one user, most recently seen first.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves the active devices of several users at once.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// RefreshDevice writes the token, platform, app version and last seen time
	// of an existing device and marks it active.
	RefreshDevice(ctx context.Context, device *entity.UserDevice) error

	// DeleteDevice deactivates a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens deactivates every device holding one of the tokens
	// and returns how many rows changed.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
