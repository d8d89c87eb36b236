package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_GetCart_EmptyCartHasItemList(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	userID := uuid.New()

	cartUC.EXPECT().GetCart(mock.Anything, userID).Return(&usecase.CartView{Total: decimal.Zero}, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/cart", userID: userID})
	require.NoError(t, h.GetCart(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"item_count":0,"unit_count":0,"total":"0"}`, string(decodeEnvelope(t, rec).Data))
}

func TestCartHandler_AddItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("created", func(t *testing.T) {
		cartUC := mockUC.NewMockCartUsecase(t)
		h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

		cartUC.EXPECT().
			AddItem(mock.Anything, userID, productID, 3).
			Return(&entity.CartItem{ID: uuid.New(), ProductID: productID, Quantity: 3}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/cart/items",
			body:   `{"product_id":"` + productID.String() + `","quantity":3}`,
			userID: userID,
		})
		require.NoError(t, h.AddItem(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("zero quantity is rejected before the usecase", func(t *testing.T) {
		h := NewCartHandler(CartHandlerParams{CartUC: mockUC.NewMockCartUsecase(t)})

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/cart/items",
			body:   `{"product_id":"` + productID.String() + `","quantity":0}`,
			userID: userID,
		})
		require.NoError(t, h.AddItem(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "quantity")
	})

	t.Run("insufficient stock", func(t *testing.T) {
		cartUC := mockUC.NewMockCartUsecase(t)
		h := NewCartHandler(CartHandlerParams{CartUC: cartUC})

		cartUC.EXPECT().AddItem(mock.Anything, userID, productID, 9).Return(nil, domainerrors.ErrInsufficientStock)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/cart/items",
			body:   `{"product_id":"` + productID.String() + `","quantity":9}`,
			userID: userID,
		})
		require.NoError(t, h.AddItem(c))
		requireErrorCode(t, rec, domainerrors.ErrInsufficientStock.HTTPCode(), domainerrors.ErrInsufficientStock.ErrorCode())
	})

	t.Run("missing user", func(t *testing.T) {
		h := NewCartHandler(CartHandlerParams{CartUC: mockUC.NewMockCartUsecase(t)})

		c, rec := newTestContext(t, testRequest{method: http.MethodPost, target: "/api/v1/cart/items", body: `{}`})
		require.NoError(t, h.AddItem(c))
		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}

func TestCartHandler_UpdateItem_ZeroQuantityRemoves(t *testing.T) {
	cartUC := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	userID := uuid.New()
	itemID := uuid.New()

	cartUC.EXPECT().UpdateQuantity(mock.Anything, userID, itemID, 0).Return(nil, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPatch,
		target: "/api/v1/cart/items/" + itemID.String(),
		body:   `{"quantity":0}`,
		userID: userID,
		params: map[string]string{"id": itemID.String()},
	})
	require.NoError(t, h.UpdateItem(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item removed from cart"}`, string(decodeEnvelope(t, rec).Data))
}

func TestCartHandler_RemoveItem_InvalidID(t *testing.T) {
	h := NewCartHandler(CartHandlerParams{CartUC: mockUC.NewMockCartUsecase(t)})

	c, rec := newTestContext(t, testRequest{
		method: http.MethodDelete,
		target: "/api/v1/cart/items/abc",
		userID: uuid.New(),
		params: map[string]string{"id": "abc"},
	})
	require.NoError(t, h.RemoveItem(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
