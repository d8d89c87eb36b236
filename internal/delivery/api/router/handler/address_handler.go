package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler serves the caller's delivery addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

// AddressRequest represents the request body for creating or replacing an address.
type AddressRequest struct {
	Label       string `json:"label" validate:"max=50"`
	FullAddress string `json:"full_address" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"max=20"`
	Phone       string `json:"phone" validate:"max=30"`
	IsPrimary   bool   `json:"is_primary"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Label:       r.Label,
		FullAddress: r.FullAddress,
		City:        r.City,
		PostalCode:  r.PostalCode,
		Phone:       r.Phone,
		IsPrimary:   r.IsPrimary,
	}
}

// CreateAddress adds an address to the caller's address book.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// ListAddresses lists the caller's addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// GetAddress returns one of the caller's addresses.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// UpdateAddress replaces the fields of one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress removes one of the caller's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Address deleted")
}

// SetPrimaryAddress makes the address the caller's primary one.
func (h *AddressHandler) SetPrimaryAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	addressID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.SetPrimary(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Primary address updated")
}
