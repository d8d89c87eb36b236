package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client reports when it registers for pushes.
type DeviceInfo struct {
	FCMToken   string
	DeviceID   string
	Platform   string
	AppVersion string
}

// DeviceUsecase manages the push targets of the calling user.
type DeviceUsecase interface {
	// RegisterDevice creates the device or refreshes the one with the same
	// client device id. Past MaxDevicesPerUser the least recently seen
	// device is dropped.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error

	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
