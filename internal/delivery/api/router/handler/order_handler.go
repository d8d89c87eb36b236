package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const pngContentType = "image/png"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves checkout and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// CheckoutRequest represents the request body for turning the cart into an order.
// Either delivery_address or address_id must be set.
type CheckoutRequest struct {
	DeliveryAddress string     `json:"delivery_address" validate:"required_without=AddressID,max=255"`
	AddressID       *uuid.UUID `json:"address_id"`
	CouponID        *uuid.UUID `json:"coupon_id"`
	CouponCode      string     `json:"coupon_code" validate:"max=50"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// CheckoutResponse is the created order with its totals.
type CheckoutResponse struct {
	Order    *entity.Order   `json:"order"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Checkout places an order for the caller's cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.orderUC.Checkout(c.Request().Context(), userID, &usecase.CheckoutInput{
		DeliveryAddress: req.DeliveryAddress,
		AddressID:       req.AddressID,
		CouponID:        req.CouponID,
		CouponCode:      req.CouponCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CheckoutResponse{
		Order:    output.Order,
		Subtotal: output.Subtotal,
		Discount: output.Discount,
		Total:    output.Total,
	})
}

// ListMyOrders lists the caller's orders, narrowed by the status query parameter.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	input, err := listOrdersInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, orders, &response.PageInfo{Limit: input.Limit, Offset: input.Offset})
}

// ListSellerOrders lists the orders containing the calling seller's products.
func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	input, err := listOrdersInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListSellerOrders(c.Request().Context(), sellerID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, orders, &response.PageInfo{Limit: input.Limit, Offset: input.Offset})
}

func listOrdersInput(c echo.Context) (*usecase.ListOrdersInput, error) {
	limit, offset, err := pageParams(c)
	if err != nil {
		return nil, err
	}

	return &usecase.ListOrdersInput{
		Status: entity.OrderStatus(c.QueryParam("status")),
		Limit:  limit,
		Offset: offset,
	}, nil
}

// RecentOrders lists the calling seller's latest orders.
func (h *OrderHandler) RecentOrders(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	limit, _, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.RecentOrders(c.Request().Context(), sellerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns an order to its buyer or to a seller with items in it.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder cancels one of the caller's orders.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus moves one of the calling seller's orders along its lifecycle.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), sellerID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// OrderQRCode renders the pickup QR code of an order as a PNG.
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.OrderPickupQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, pngContentType, png)
}
