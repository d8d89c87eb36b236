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

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	t.Run("quote", func(t *testing.T) {
		couponUC := mockUC.NewMockCouponUsecase(t)
		h := NewCouponHandler(CouponHandlerParams{CouponUC: couponUC})
		base := decimal.RequireFromString("80")

		couponUC.EXPECT().
			ValidateCoupon(mock.Anything, "SPRING10", mock.MatchedBy(base.Equal)).
			Return(&usecase.CouponQuote{
				Coupon:   &entity.Coupon{ID: uuid.New(), Code: "SPRING10"},
				Base:     base,
				Discount: decimal.RequireFromString("8"),
				Total:    decimal.RequireFromString("72"),
			}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/coupons/validate",
			body:   `{"code":"SPRING10","amount":"80"}`,
			userID: uuid.New(),
		})
		require.NoError(t, h.ValidateCoupon(c))

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decodeEnvelope(t, rec).Data)
		assert.Contains(t, data, `"discount":"8"`)
		assert.Contains(t, data, `"total":"72"`)
	})

	t.Run("invalid coupon", func(t *testing.T) {
		couponUC := mockUC.NewMockCouponUsecase(t)
		h := NewCouponHandler(CouponHandlerParams{CouponUC: couponUC})

		couponUC.EXPECT().
			ValidateCoupon(mock.Anything, "EXPIRED", mock.Anything).
			Return(nil, domainerrors.ErrInvalidCoupon.WithDetails("coupon has expired"))

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/coupons/validate",
			body:   `{"code":"EXPIRED","amount":"80"}`,
			userID: uuid.New(),
		})
		require.NoError(t, h.ValidateCoupon(c))

		env := requireErrorCode(t, rec, domainerrors.ErrInvalidCoupon.HTTPCode(), domainerrors.ErrInvalidCoupon.ErrorCode())
		assert.Equal(t, "coupon has expired", env.Error.Details)
	})
}

func TestCouponHandler_CreateCoupon_UnknownType(t *testing.T) {
	h := NewCouponHandler(CouponHandlerParams{CouponUC: mockUC.NewMockCouponUsecase(t)})

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/seller/coupons",
		body:   `{"code":"X","type":"bogo","value":"1","starts_at":"2025-01-01T00:00:00Z","expires_at":"2025-02-01T00:00:00Z"}`,
		userID: uuid.New(),
	})
	require.NoError(t, h.CreateCoupon(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestCouponHandler_ListCoupons_ScopedToCaller(t *testing.T) {
	couponUC := mockUC.NewMockCouponUsecase(t)
	h := NewCouponHandler(CouponHandlerParams{CouponUC: couponUC})
	sellerID := uuid.New()

	couponUC.EXPECT().
		ListCoupons(mock.Anything, &usecase.ListCouponsInput{CreatorID: &sellerID, Status: entity.CouponStatusExpiring}).
		Return([]*entity.Coupon{}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/seller/coupons?status=expiring",
		userID: sellerID,
	})
	require.NoError(t, h.ListCoupons(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
