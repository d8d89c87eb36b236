package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC usecase.CouponUsecase
}

// CouponHandler serves coupon management and redemption.
type CouponHandler struct {
	couponUC usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler.
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{couponUC: params.CouponUC}
}

// CreateCouponRequest represents the request body for creating a coupon.
type CreateCouponRequest struct {
	Code        string          `json:"code" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=500"`
	Type        string          `json:"type" validate:"required,oneof=percentage fixed_amount"`
	Value       decimal.Decimal `json:"value" validate:"gt=0"`
	StartsAt    time.Time       `json:"starts_at" validate:"required"`
	ExpiresAt   time.Time       `json:"expires_at" validate:"required"`
	MaxUses     int             `json:"max_uses" validate:"gte=0"`
}

// UpdateCouponRequest lists the editable coupon fields. Omitted fields are left unchanged.
type UpdateCouponRequest struct {
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Value       *decimal.Decimal `json:"value" validate:"omitempty,gt=0"`
	StartsAt    *time.Time       `json:"starts_at"`
	ExpiresAt   *time.Time       `json:"expires_at"`
	MaxUses     *int             `json:"max_uses" validate:"omitempty,gte=0"`
	Active      *bool            `json:"active"`
}

// CouponQuoteRequest names a coupon and the amount it applies to.
type CouponQuoteRequest struct {
	Code   string          `json:"code" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}

// CouponQuoteResponse is the effect of a coupon on an amount.
type CouponQuoteResponse struct {
	Coupon   *entity.Coupon  `json:"coupon"`
	Base     decimal.Decimal `json:"base"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

func quoteResponse(quote *usecase.CouponQuote) CouponQuoteResponse {
	return CouponQuoteResponse{
		Coupon:   quote.Coupon,
		Base:     quote.Base,
		Discount: quote.Discount,
		Total:    quote.Total,
	}
}

// ValidateCoupon previews a coupon on an amount without redeeming it.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var req CouponQuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.couponUC.ValidateCoupon(c.Request().Context(), req.Code, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quoteResponse(quote))
}

// ApplyCoupon redeems a coupon once on an amount.
func (h *CouponHandler) ApplyCoupon(c echo.Context) error {
	var req CouponQuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	quote, err := h.couponUC.ApplyCoupon(c.Request().Context(), req.Code, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quoteResponse(quote))
}

// CreateCoupon creates a coupon owned by the calling seller.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateCouponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), sellerID, &usecase.CreateCouponInput{
		Code:        req.Code,
		Description: req.Description,
		Type:        entity.DiscountType(req.Type),
		Value:       req.Value,
		StartsAt:    req.StartsAt,
		ExpiresAt:   req.ExpiresAt,
		MaxUses:     req.MaxUses,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, coupon)
}

// ListCoupons lists the calling seller's coupons, narrowed by the type, q and status query parameters.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	coupons, err := h.couponUC.ListCoupons(c.Request().Context(), &usecase.ListCouponsInput{
		CreatorID: &sellerID,
		Type:      entity.DiscountType(c.QueryParam("type")),
		Query:     c.QueryParam("q"),
		Status:    entity.CouponStatus(c.QueryParam("status")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupons)
}

// ExpiringCoupons lists the calling seller's coupons that end within the days query parameter.
func (h *CouponHandler) ExpiringCoupons(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var days int
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "days must be an integer")
	}

	coupons, err := h.couponUC.ExpiringCoupons(c.Request().Context(), sellerID, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupons)
}

// CouponStats aggregates the calling seller's coupons.
func (h *CouponHandler) CouponStats(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	stats, err := h.couponUC.CouponStats(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// MostUsedCoupons lists the most redeemed coupons.
func (h *CouponHandler) MostUsedCoupons(c echo.Context) error {
	limit, _, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	coupons, err := h.couponUC.MostUsedCoupons(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupons)
}

// GetCoupon returns one coupon.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.couponUC.GetCoupon(c.Request().Context(), couponID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupon)
}

// UpdateCoupon edits one of the calling seller's coupons.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCouponRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.couponUC.UpdateCoupon(c.Request().Context(), sellerID, couponID, &usecase.UpdateCouponInput{
		Description: req.Description,
		Value:       req.Value,
		StartsAt:    req.StartsAt,
		ExpiresAt:   req.ExpiresAt,
		MaxUses:     req.MaxUses,
		Active:      req.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coupon)
}

// DeactivateCoupon switches off one of the calling seller's coupons.
func (h *CouponHandler) DeactivateCoupon(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.couponUC.DeactivateCoupon(c.Request().Context(), sellerID, couponID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Coupon deactivated")
}

// DeleteCoupon removes one of the calling seller's coupons.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	couponID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), sellerID, couponID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Coupon deleted")
}
