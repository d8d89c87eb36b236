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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves the caller's shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddCartItemRequest represents the request body for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartItemRequest sets the quantity of a cart line. Zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart with its derived totals.
type CartResponse struct {
	Items     []*entity.CartItem `json:"items"`
	ItemCount int                `json:"item_count"`
	UnitCount int                `json:"unit_count"`
	Total     decimal.Decimal    `json:"total"`
}

// GetCart returns the caller's cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := cart.Items
	if items == nil {
		items = []*entity.CartItem{}
	}

	return response.Success(c, http.StatusOK, CartResponse{
		Items:     items,
		ItemCount: cart.ItemCount,
		UnitCount: cart.UnitCount,
		Total:     cart.Total,
	})
}

// CartTotal returns only the total of the caller's cart.
func (h *CartHandler) CartTotal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	total, err := h.cartUC.CartTotal(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]decimal.Decimal{"total": total})
}

// AddItem adds a product to the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateItem sets the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if item == nil {
		return acknowledge(c, "Item removed from cart")
	}

	return response.Success(c, http.StatusOK, item)
}

// RemoveItem deletes a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Item removed from cart")
}

// ClearCart empties the caller's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Cart cleared")
}
