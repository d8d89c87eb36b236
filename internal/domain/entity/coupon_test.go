package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var couponNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newValidCoupon(discountType DiscountType, value string) *Coupon {
	return &Coupon{
		Code:      "SPRING",
		Type:      discountType,
		Value:     decimal.RequireFromString(value),
		StartsAt:  couponNow.Add(-24 * time.Hour),
		ExpiresAt: couponNow.Add(30 * 24 * time.Hour),
		MaxUses:   10,
		Active:    true,
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
}

func TestCoupon_IsValid_StrictBounds(t *testing.T) {
	coupon := newValidCoupon(DiscountPercentage, "10")
	assert.True(t, coupon.IsValid(couponNow))

	assert.False(t, coupon.IsValid(coupon.StartsAt), "start instant is excluded")
	assert.False(t, coupon.IsValid(coupon.ExpiresAt), "end instant is excluded")
	assert.True(t, coupon.IsValid(coupon.StartsAt.Add(time.Nanosecond)))
	assert.True(t, coupon.IsValid(coupon.ExpiresAt.Add(-time.Nanosecond)))
}

func TestCoupon_IsValid_InactiveOrExhausted(t *testing.T) {
	inactive := newValidCoupon(DiscountPercentage, "10")
	inactive.Active = false
	assert.False(t, inactive.IsValid(couponNow))

	exhausted := newValidCoupon(DiscountPercentage, "10")
	exhausted.UsesSoFar = exhausted.MaxUses
	assert.False(t, exhausted.IsValid(couponNow))

	var missing *Coupon
	assert.False(t, missing.IsValid(couponNow))
}

func TestCoupon_ComputeDiscount(t *testing.T) {
	tests := []struct {
		name   string
		coupon *Coupon
		base   string
		want   string
	}{
		{"percentage rounds to cents", newValidCoupon(DiscountPercentage, "15"), "33.33", "5"},
		{"percentage of round amount", newValidCoupon(DiscountPercentage, "10"), "100", "10"},
		{"fixed below base", newValidCoupon(DiscountFixedAmount, "20"), "100", "20"},
		{"fixed capped at base", newValidCoupon(DiscountFixedAmount, "150"), "100", "100"},
		{"zero base", newValidCoupon(DiscountFixedAmount, "20"), "0", "0"},
		{"negative base", newValidCoupon(DiscountPercentage, "20"), "-5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.ComputeDiscount(decimal.RequireFromString(tt.base), couponNow)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestCoupon_ComputeDiscount_InvalidCouponYieldsZero(t *testing.T) {
	coupon := newValidCoupon(DiscountPercentage, "50")
	coupon.ExpiresAt = couponNow

	assert.True(t, coupon.ComputeDiscount(decimal.NewFromInt(100), couponNow).IsZero())
}

func TestCoupon_Status(t *testing.T) {
	window := 7 * 24 * time.Hour

	active := newValidCoupon(DiscountPercentage, "10")
	assert.Equal(t, CouponStatusActive, active.Status(couponNow, window))

	expiring := newValidCoupon(DiscountPercentage, "10")
	expiring.ExpiresAt = couponNow.Add(48 * time.Hour)
	assert.Equal(t, CouponStatusExpiring, expiring.Status(couponNow, window))

	pending := newValidCoupon(DiscountPercentage, "10")
	pending.StartsAt = couponNow.Add(time.Hour)
	assert.Equal(t, CouponStatusPending, pending.Status(couponNow, window))

	expired := newValidCoupon(DiscountPercentage, "10")
	expired.ExpiresAt = couponNow.Add(-time.Hour)
	assert.Equal(t, CouponStatusExpired, expired.Status(couponNow, window))

	inactive := newValidCoupon(DiscountPercentage, "10")
	inactive.Active = false
	assert.Equal(t, CouponStatusInactive, inactive.Status(couponNow, window))

	exhausted := newValidCoupon(DiscountPercentage, "10")
	exhausted.UsesSoFar = exhausted.MaxUses
	exhausted.Active = false
	assert.Equal(t, CouponStatusExhausted, exhausted.Status(couponNow, window))
}
