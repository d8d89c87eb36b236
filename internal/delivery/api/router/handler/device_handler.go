package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler manages the push targets of the signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC}
}

// RegisterDeviceRequest is sent by the app on every start. Registering a
// known device_id refreshes it instead of adding a new one.
type RegisterDeviceRequest struct {
	FCMToken   string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID   string `json:"device_id" validate:"required,max=255"`
	Platform   string `json:"platform" validate:"required,oneof=ios android web"`
	AppVersion string `json:"app_version" validate:"omitempty,max=32"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
}

func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken:   req.FCMToken,
		DeviceID:   req.DeviceID,
		Platform:   req.Platform,
		AppVersion: req.AppVersion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists active devices, most recently seen first.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	var req UpdateFCMTokenRequest

	return h.onDevice(c, &req, func(userID, deviceID uuid.UUID) error {
		if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
			return err
		}

		return acknowledge(c, "FCM token updated successfully")
	})
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	return h.onDevice(c, nil, func(userID, deviceID uuid.UUID) error {
		if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
			return err
		}

		return acknowledge(c, "Device deactivated successfully")
	})
}

// onDevice resolves the caller and the :id device, binds body when given,
// then runs fn. Errors from fn are rendered as domain errors.
func (h *DeviceHandler) onDevice(c echo.Context, body any, fn func(userID, deviceID uuid.UUID) error) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if body != nil {
		if err := bindAndValidate(c, body); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	if err := fn(userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return nil
}
