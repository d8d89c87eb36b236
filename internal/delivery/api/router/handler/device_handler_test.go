package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("registers and hides the token", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{
				FCMToken:   "fcm-abc",
				DeviceID:   "pixel-8",
				Platform:   entity.PlatformAndroid,
				AppVersion: "2.4.1",
			}).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "fcm-abc", DeviceID: "pixel-8"}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/me/devices",
			body:   `{"fcm_token":"fcm-abc","device_id":"pixel-8","platform":"android","app_version":"2.4.1"}`,
			userID: userID,
		})

		require.NoError(t, h.RegisterDevice(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Contains(t, string(env.Data), `"device_id":"pixel-8"`)
		assert.NotContains(t, string(env.Data), "fcm-abc")
	})

	t.Run("unknown platform", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/me/devices",
			body:   `{"fcm_token":"fcm-abc","device_id":"pixel-8","platform":"symbian"}`,
			userID: userID,
		})

		require.NoError(t, h.RegisterDevice(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/me/devices", body: `{}`})

		require.NoError(t, h.RegisterDevice(c))
		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "fcm-new").Return(nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPut,
			target: "/me/devices/" + deviceID.String() + "/token",
			body:   `{"fcm_token":"fcm-new"}`,
			userID: userID,
			params: map[string]string{"id": deviceID.String()},
		})

		require.NoError(t, h.UpdateFCMToken(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodPut,
			target: "/me/devices/" + deviceID.String() + "/token",
			body:   `{}`,
			userID: userID,
			params: map[string]string{"id": deviceID.String()},
		})

		require.NoError(t, h.UpdateFCMToken(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestDeviceHandler_DeactivateDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestDeviceHandler(t)
		c, rec := newTestContext(t, testRequest{
			method: http.MethodDelete,
			target: "/me/devices/nope",
			userID: userID,
			params: map[string]string{"id": "nope"},
		})

		require.NoError(t, h.DeactivateDevice(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("someone else's device", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)
		deviceID := uuid.New()
		deviceUC.EXPECT().
			DeactivateDevice(mock.Anything, userID, deviceID).
			Return(errors.WithStack(domainerrors.ErrDeviceNotFound))

		c, rec := newTestContext(t, testRequest{
			method: http.MethodDelete,
			target: "/me/devices/" + deviceID.String(),
			userID: userID,
			params: map[string]string{"id": deviceID.String()},
		})

		require.NoError(t, h.DeactivateDevice(c))
		requireErrorCode(t, rec, http.StatusNotFound, "DEVICE_NOT_FOUND")
	})
}
