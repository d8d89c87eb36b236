package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coupon field limits.
const (
	CouponCodeMaxLength        = 50
	CouponDescriptionMaxLength = 500
)

// DiscountType is the way a coupon reduces an amount.
type DiscountType string

const (
	// DiscountPercentage takes Value percent off the base amount.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixedAmount takes Value off the base amount, never more than the base.
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// IsValid checks if the DiscountType is a known value.
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixedAmount
}

// CouponStatus is the derived lifecycle state of a coupon used for filtering.
type CouponStatus string

const (
	CouponStatusActive    CouponStatus = "active"
	CouponStatusInactive  CouponStatus = "inactive"
	CouponStatusExhausted CouponStatus = "exhausted"
	CouponStatusPending   CouponStatus = "pending"
	CouponStatusExpired   CouponStatus = "expired"
	CouponStatusExpiring  CouponStatus = "expiring"
)

// IsValid checks if the CouponStatus is a known value.
func (s CouponStatus) IsValid() bool {
	switch s {
	case CouponStatusActive, CouponStatusInactive, CouponStatusExhausted,
		CouponStatusPending, CouponStatusExpired, CouponStatusExpiring:
		return true
	default:
		return false
	}
}

var hundred = decimal.NewFromInt(100)

// Coupon is a discount code created by a seller.
type Coupon struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"` // Always upper-cased.
	Description string          `json:"description"`
	Type        DiscountType    `json:"type"`
	Value       decimal.Decimal `json:"value"`
	StartsAt    time.Time       `json:"starts_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
	MaxUses     int             `json:"max_uses"`
	UsesSoFar   int             `json:"uses_so_far"`
	Active      bool            `json:"active"`
	CreatorID   uuid.UUID       `json:"creator_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NormalizeCouponCode trims and upper-cases a code so lookups are case-insensitive.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExhausted reports whether the usage cap has been reached.
func (c *Coupon) IsExhausted() bool {
	return c.UsesSoFar >= c.MaxUses
}

// IsExpired reports whether the validity window has closed at now.
// The end instant itself already counts as expired.
func (c *Coupon) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// HasStarted reports whether now lies strictly after the start instant.
func (c *Coupon) HasStarted(now time.Time) bool {
	return now.After(c.StartsAt)
}

// IsValid reports whether the coupon can be redeemed at now:
// active, start < now < end, and usesSoFar < maxUses.
func (c *Coupon) IsValid(now time.Time) bool {
	if c == nil || !c.Active {
		return false
	}

	return c.HasStarted(now) && !c.IsExpired(now) && !c.IsExhausted()
}

// ComputeDiscount returns the amount the coupon takes off base at now.
// Invalid coupons and non-positive bases yield zero. Percentage discounts are
// rounded to cents; fixed discounts never exceed base.
func (c *Coupon) ComputeDiscount(base decimal.Decimal, now time.Time) decimal.Decimal {
	if !c.IsValid(now) || !base.IsPositive() {
		return decimal.Zero
	}

	switch c.Type {
	case DiscountPercentage:
		return base.Mul(c.Value).Div(hundred).Round(2)
	case DiscountFixedAmount:
		return decimal.Min(c.Value, base)
	default:
		return decimal.Zero
	}
}

// ExpiresWithin reports whether an active, started coupon ends within window of now.
func (c *Coupon) ExpiresWithin(now time.Time, window time.Duration) bool {
	if !c.IsValid(now) {
		return false
	}

	return c.ExpiresAt.Before(now.Add(window))
}

// Status derives the coupon's lifecycle state at now. Exhaustion wins over the
// active flag because redemption switches the flag off when the cap is reached.
func (c *Coupon) Status(now time.Time, expiringWindow time.Duration) CouponStatus {
	switch {
	case c.IsExhausted():
		return CouponStatusExhausted
	case !c.Active:
		return CouponStatusInactive
	case !c.HasStarted(now):
		return CouponStatusPending
	case c.IsExpired(now):
		return CouponStatusExpired
	case c.ExpiresWithin(now, expiringWindow):
		return CouponStatusExpiring
	default:
		return CouponStatusActive
	}
}

// CouponStats summarizes the coupons of one creator.
type CouponStats struct {
	Total          int                  `json:"total"`
	Active         int                  `json:"active"`
	TotalUses      int                  `json:"total_uses"`
	ExpiringSoon   int                  `json:"expiring_soon"`
	CountsByType   map[DiscountType]int `json:"counts_by_type"`
	CountsByStatus map[CouponStatus]int `json:"counts_by_status"`
}
