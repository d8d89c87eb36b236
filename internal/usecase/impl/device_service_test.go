package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	now        time.Time
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	now := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	service := NewDeviceService(deviceRepo, newDiscardLogger())
	service.(*deviceService).now = fixedClock(now)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		now:        now,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	info := &usecase.DeviceInfo{
		FCMToken:   "test-fcm-token",
		DeviceID:   "device-123",
		Platform:   entity.PlatformIOS,
		AppVersion: "2.4.1",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, info)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, info.FCMToken, device.FCMToken)
	assert.Equal(t, info.DeviceID, device.DeviceID)
	assert.Equal(t, "2.4.1", device.AppVersion)
	assert.Equal(t, fx.now, device.LastSeenAt)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshesSameDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   "old-token",
		DeviceID:   "device-123",
		Platform:   entity.PlatformAndroid,
		AppVersion: "2.3.0",
		IsActive:   true,
		LastSeenAt: fx.now.Add(-72 * time.Hour),
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		RefreshDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.ID == existing.ID && d.FCMToken == "new-fcm-token" && d.AppVersion == "2.4.1" && d.LastSeenAt.Equal(fx.now)
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken:   "new-fcm-token",
		DeviceID:   "device-123",
		Platform:   entity.PlatformAndroid,
		AppVersion: "2.4.1",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_EvictsLeastRecentlySeen(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := make([]*entity.UserDevice, 0, entity.MaxDevicesPerUser)
	for i := range entity.MaxDevicesPerUser {
		devices = append(devices, &entity.UserDevice{
			ID:         uuid.New(),
			UserID:     userID,
			DeviceID:   uuid.NewString(),
			LastSeenAt: fx.now.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	stalest := devices[len(devices)-1]

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, stalest.ID).Return(nil)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fresh-token",
		DeviceID: "new-tablet",
		Platform: entity.PlatformWeb,
	})
	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	cases := map[string]*usecase.DeviceInfo{
		"nil info":         nil,
		"missing token":    {DeviceID: "device-123", Platform: entity.PlatformIOS},
		"missing id":       {FCMToken: "token", Platform: entity.PlatformIOS},
		"unknown platform": {FCMToken: "token", DeviceID: "device-123", Platform: "symbian"},
	}
	for name, info := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), info)
			assert.Nil(t, device)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: entity.PlatformIOS,
	})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, FCMToken: "old-token"}, nil)
		fx.deviceRepo.EXPECT().
			RefreshDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool { return d.FCMToken == "new-fcm-token" })).
			Return(nil)

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token"))
	})

	t.Run("blank token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "  "), domainerrors.ErrValidationFailed)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token"), domainerrors.ErrDeviceNotFound)
	})

	t.Run("another user", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token"), domainerrors.ErrForbidden)
	})

	t.Run("token taken", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().RefreshDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		assert.ErrorIs(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token"), domainerrors.ErrConflict)
	})
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("another user", func(t *testing.T) {
		fx := createTestDeviceService(t)

		fx.deviceRepo.EXPECT().
			FindDeviceByID(ctx, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New(), IsActive: true}, nil)

		assert.ErrorIs(t, fx.service.DeactivateDevice(ctx, userID, deviceID), domainerrors.ErrForbidden)
	})
}
