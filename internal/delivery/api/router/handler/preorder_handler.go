package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreOrderHandlerParams holds dependencies for PreOrderHandler, injected by Fx.
type PreOrderHandlerParams struct {
	fx.In

	PreOrderUC usecase.PreOrderUsecase
}

// PreOrderHandler serves pre-orders.
type PreOrderHandler struct {
	preOrderUC usecase.PreOrderUsecase
}

// NewPreOrderHandler is the constructor for PreOrderHandler.
func NewPreOrderHandler(params PreOrderHandlerParams) *PreOrderHandler {
	return &PreOrderHandler{preOrderUC: params.PreOrderUC}
}

// CreatePreOrderRequest represents the request body for pre-ordering a product.
type CreatePreOrderRequest struct {
	ProductID         uuid.UUID  `json:"product_id" validate:"required"`
	Quantity          int        `json:"quantity" validate:"required,gt=0"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	Notes             string     `json:"notes" validate:"max=1000"`
}

// UpdatePreOrderStatusRequest moves a pre-order to its next status.
type UpdatePreOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed in_production ready delivered cancelled"`
}

// CancelPreOrderRequest carries the optional cancellation reason.
type CancelPreOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// CreatePreOrder places a pre-order for the caller.
func (h *PreOrderHandler) CreatePreOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreatePreOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.CreatePreOrder(c.Request().Context(), userID, &usecase.CreatePreOrderInput{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, preOrder)
}

// ListMyPreOrders lists the caller's pre-orders, narrowed by the status query parameter.
func (h *PreOrderHandler) ListMyPreOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	preOrders, err := h.preOrderUC.ListMyPreOrders(c.Request().Context(), userID, entity.PreOrderStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preOrders)
}

// ListSellerPreOrders lists the pre-orders of the calling seller's products.
func (h *PreOrderHandler) ListSellerPreOrders(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	preOrders, err := h.preOrderUC.ListSellerPreOrders(c.Request().Context(), sellerID, entity.PreOrderStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preOrders)
}

// PreOrderSummary counts and totals the caller's open pre-orders.
func (h *PreOrderHandler) PreOrderSummary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	summary, err := h.preOrderUC.PreOrderSummary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetPreOrder returns a pre-order to its buyer or seller.
func (h *PreOrderHandler) GetPreOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	preOrderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.GetPreOrder(c.Request().Context(), userID, preOrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preOrder)
}

// UpdatePreOrderStatus moves one of the calling seller's pre-orders forward.
func (h *PreOrderHandler) UpdatePreOrderStatus(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	preOrderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePreOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.UpdatePreOrderStatus(c.Request().Context(), sellerID, preOrderID, entity.PreOrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preOrder)
}

// CancelPreOrder cancels a pre-order on behalf of its buyer or seller.
func (h *PreOrderHandler) CancelPreOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	preOrderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CancelPreOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	preOrder, err := h.preOrderUC.CancelPreOrder(c.Request().Context(), userID, preOrderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preOrder)
}
