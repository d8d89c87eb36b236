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

func TestOrderHandler_Checkout(t *testing.T) {
	userID := uuid.New()

	t.Run("with coupon code", func(t *testing.T) {
		orderUC := mockUC.NewMockOrderUsecase(t)
		h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
		order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPending}

		orderUC.EXPECT().
			Checkout(mock.Anything, userID, &usecase.CheckoutInput{DeliveryAddress: "1 Main St", CouponCode: "SPRING10"}).
			Return(&usecase.CheckoutOutput{
				Order:    order,
				Subtotal: decimal.RequireFromString("50"),
				Discount: decimal.RequireFromString("5"),
				Total:    decimal.RequireFromString("45"),
			}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/orders/checkout",
			body:   `{"delivery_address":"1 Main St","coupon_code":"SPRING10"}`,
			userID: userID,
		})
		require.NoError(t, h.Checkout(c))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"total":"45"`)
	})

	t.Run("saved address instead of text", func(t *testing.T) {
		orderUC := mockUC.NewMockOrderUsecase(t)
		h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
		addressID := uuid.New()

		orderUC.EXPECT().
			Checkout(mock.Anything, userID, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
				return in.AddressID != nil && *in.AddressID == addressID && in.DeliveryAddress == ""
			})).
			Return(&usecase.CheckoutOutput{Order: &entity.Order{ID: uuid.New()}}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/orders/checkout",
			body:   `{"address_id":"` + addressID.String() + `"}`,
			userID: userID,
		})
		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("no address at all", func(t *testing.T) {
		h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t)})

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/orders/checkout",
			body:   `{}`,
			userID: userID,
		})
		require.NoError(t, h.Checkout(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("empty cart", func(t *testing.T) {
		orderUC := mockUC.NewMockOrderUsecase(t)
		h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

		orderUC.EXPECT().Checkout(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrEmptyCart)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/orders/checkout",
			body:   `{"delivery_address":"1 Main St"}`,
			userID: userID,
		})
		require.NoError(t, h.Checkout(c))
		requireErrorCode(t, rec, domainerrors.ErrEmptyCart.HTTPCode(), domainerrors.ErrEmptyCart.ErrorCode())
	})
}

func TestOrderHandler_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t)})
	orderID := uuid.New()

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPatch,
		target: "/api/v1/seller/orders/" + orderID.String() + "/status",
		body:   `{"status":"teleported"}`,
		userID: uuid.New(),
		params: map[string]string{"id": orderID.String()},
	})
	require.NoError(t, h.UpdateOrderStatus(c))

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "status: must be one of")
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	userID := uuid.New()
	orderID := uuid.New()

	orderUC.EXPECT().GetOrder(mock.Anything, userID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/orders/" + orderID.String(),
		userID: userID,
		params: map[string]string{"id": orderID.String()},
	})
	require.NoError(t, h.GetOrder(c))
	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrOrderNotFound.ErrorCode())
}

func TestOrderHandler_OrderQRCode(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	userID := uuid.New()
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	orderUC.EXPECT().OrderPickupQR(mock.Anything, userID, orderID).Return(png, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/orders/" + orderID.String() + "/qr",
		userID: userID,
		params: map[string]string{"id": orderID.String()},
	})
	require.NoError(t, h.OrderQRCode(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_ListMyOrders_PageMeta(t *testing.T) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})
	userID := uuid.New()

	orderUC.EXPECT().
		ListMyOrders(mock.Anything, userID, &usecase.ListOrdersInput{Status: entity.OrderStatusShipped, Limit: 5, Offset: 10}).
		Return([]*entity.Order{}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/orders?status=shipped&limit=5&offset=10",
		userID: userID,
	})
	require.NoError(t, h.ListMyOrders(c))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Page)
	assert.Equal(t, 5, env.Meta.Page.Limit)
	assert.Equal(t, 10, env.Meta.Page.Offset)
}
