package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if err := validateDeviceInfo(info); err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != info.DeviceID {
			continue
		}

		device.FCMToken = info.FCMToken
		device.Platform = info.Platform
		device.AppVersion = info.AppVersion
		device.LastSeenAt = s.now()
		if err := s.deviceRepo.RefreshDevice(ctx, device); err != nil {
			return nil, translateRepoError(err, "failed to refresh device")
		}
		s.log(ctx).Debug("Refreshed device", slog.Any("user_id", userID), slog.Any("device_id", device.ID))

		return device, nil
	}

	if len(devices) >= entity.MaxDevicesPerUser {
		evicted := entity.LeastRecentlySeen(devices)
		if err := s.deviceRepo.DeleteDevice(ctx, evicted.ID); err != nil {
			return nil, translateRepoError(err, "failed to evict device")
		}
		s.log(ctx).Info("Evicted stale device",
			slog.Any("user_id", userID),
			slog.Any("device_id", evicted.ID),
			slog.Time("last_seen_at", evicted.LastSeenAt),
		)
	}

	device := &entity.UserDevice{
		UserID:     userID,
		FCMToken:   info.FCMToken,
		DeviceID:   info.DeviceID,
		Platform:   info.Platform,
		AppVersion: info.AppVersion,
		IsActive:   true,
		LastSeenAt: s.now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, translateRepoError(err, "failed to create device")
	}
	s.log(ctx).Info("Registered device", slog.Any("user_id", userID), slog.Any("device_id", device.ID), slog.String("platform", device.Platform))

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return validationError("fcm_token is required")
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	device.FCMToken = fcmToken
	device.LastSeenAt = s.now()
	if err := s.deviceRepo.RefreshDevice(ctx, device); err != nil {
		return translateRepoError(err, "failed to update FCM token")
	}

	return nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// DeactivateDevice removes a device so it no longer receives pushes
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return translateRepoError(err, "failed to delete device")
	}
	s.log(ctx).Info("Deactivated device", slog.Any("user_id", userID), slog.Any("device_id", deviceID))

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("device belongs to another user")
	}

	return device, nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	if info == nil || strings.TrimSpace(info.FCMToken) == "" || strings.TrimSpace(info.DeviceID) == "" {
		return validationError("fcm_token and device_id are required")
	}
	if !entity.ValidPlatform(info.Platform) {
		return validationError("platform must be one of ios, android, web")
	}

	return nil
}
