package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCouponInput holds the fields of a new coupon.
type CreateCouponInput struct {
	Code        string
	Description string
	Type        entity.DiscountType
	Value       decimal.Decimal
	StartsAt    time.Time
	ExpiresAt   time.Time
	MaxUses     int
}

// UpdateCouponInput lists the editable coupon fields. Nil fields are left unchanged.
type UpdateCouponInput struct {
	Description *string
	Value       *decimal.Decimal
	StartsAt    *time.Time
	ExpiresAt   *time.Time
	MaxUses     *int
	Active      *bool
}

// ListCouponsInput narrows a coupon listing. Zero values do not filter.
type ListCouponsInput struct {
	CreatorID *uuid.UUID
	Type      entity.DiscountType
	Query     string
	Status    entity.CouponStatus
}

// CouponQuote is the effect of a coupon on an amount.
type CouponQuote struct {
	Coupon   *entity.Coupon
	Base     decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal // Base minus Discount.
}

// CouponUsecase manages seller coupons and their redemption.
type CouponUsecase interface {
	CreateCoupon(ctx context.Context, creatorID uuid.UUID, input *CreateCouponInput) (*entity.Coupon, error)
	UpdateCoupon(ctx context.Context, creatorID, couponID uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)
	DeactivateCoupon(ctx context.Context, creatorID, couponID uuid.UUID) error
	DeleteCoupon(ctx context.Context, creatorID, couponID uuid.UUID) error
	GetCoupon(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error)

	// ValidateCoupon previews the discount of code on base without redeeming it.
	ValidateCoupon(ctx context.Context, code string, base decimal.Decimal) (*CouponQuote, error)

	// ApplyCoupon redeems code once against base.
	ApplyCoupon(ctx context.Context, code string, base decimal.Decimal) (*CouponQuote, error)

	// DeactivateExpiredCoupons switches off coupons whose window has closed at now.
	DeactivateExpiredCoupons(ctx context.Context, now time.Time) (int64, error)

	ListCoupons(ctx context.Context, input *ListCouponsInput) ([]*entity.Coupon, error)

	// ExpiringCoupons lists the creator's valid coupons ending within days.
	ExpiringCoupons(ctx context.Context, creatorID uuid.UUID, days int) ([]*entity.Coupon, error)
	MostUsedCoupons(ctx context.Context, limit int) ([]*entity.Coupon, error)
	CouponStats(ctx context.Context, creatorID uuid.UUID) (*entity.CouponStats, error)
}
