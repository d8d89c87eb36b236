package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for coupon persistence.
var (
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrDuplicateCoupon = errors.New("coupon code already exists")
	// ErrCouponUnavailable is returned when a conditional redemption matched no row.
	ErrCouponUnavailable = errors.New("coupon is not redeemable")
)

// CouponFilter narrows coupon listings. Zero values do not filter.
type CouponFilter struct {
	CreatorID *uuid.UUID
	Type      entity.DiscountType
	Query     string // Case-insensitive match on code or description.
}

// CouponRepository stores coupons and owns the usage counter.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindByCode looks a coupon up by its normalized (upper-cased) code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter CouponFilter) ([]*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementUsage atomically redeems the coupon once when it is active,
	// inside (start, end) at now and below its cap. The coupon is deactivated
	// by the same statement when the cap is reached. Returns the updated coupon,
	// or ErrCouponUnavailable when the guard fails.
	IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Coupon, error)

	// DeactivateExpired turns off active coupons whose end is not after now.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)

	// MostUsed returns the coupons with the highest usage counter.
	MostUsed(ctx context.Context, limit int) ([]*entity.Coupon, error)
}
