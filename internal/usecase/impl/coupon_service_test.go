package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	couponRepo *mockRepo.MockCouponRepository
	userRepo   *mockRepo.MockUserRepository
	now        time.Time
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	factory.EXPECT().CouponRepo().Return(couponRepo).Maybe()
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := NewCouponService(CouponServiceParams{
		TxManager:  txManager,
		CouponRepo: couponRepo,
		Config:     newTestConfig(0),
		Logger:     newDiscardLogger(),
	})
	svc.(*couponService).now = fixedClock(now)

	return couponServiceFixtures{
		service:    svc,
		txManager:  txManager,
		factory:    factory,
		couponRepo: couponRepo,
		userRepo:   userRepo,
		now:        now,
	}
}

func newTestCoupon(now time.Time, creatorID uuid.UUID) *entity.Coupon {
	return &entity.Coupon{
		ID:        uuid.New(),
		Code:      "SPRING",
		Type:      entity.DiscountFixedAmount,
		Value:     decimal.NewFromInt(15),
		StartsAt:  now.Add(-24 * time.Hour),
		ExpiresAt: now.Add(30 * 24 * time.Hour),
		MaxUses:   3,
		Active:    true,
		CreatorID: creatorID,
	}
}

func TestCouponService_CreateCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes code", func(t *testing.T) {
		fx := createTestCouponService(t)
		creatorID := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.userRepo.EXPECT().FindByID(ctx, creatorID).Return(&entity.User{ID: creatorID}, nil)
		fx.couponRepo.EXPECT().ExistsByCode(ctx, "WELCOME5").Return(false, nil)
		fx.couponRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Coupon")).Return(nil)

		coupon, err := fx.service.CreateCoupon(ctx, creatorID, &usecase.CreateCouponInput{
			Code:      " welcome5 ",
			Type:      entity.DiscountPercentage,
			Value:     decimal.NewFromInt(5),
			StartsAt:  fx.now,
			ExpiresAt: fx.now.Add(time.Hour),
			MaxUses:   10,
		})
		require.NoError(t, err)
		assert.Equal(t, "WELCOME5", coupon.Code)
		assert.True(t, coupon.Active)
		assert.Equal(t, 0, coupon.UsesSoFar)
	})

	t.Run("duplicate code", func(t *testing.T) {
		fx := createTestCouponService(t)
		creatorID := uuid.New()

		expectTx(fx.txManager, fx.factory)
		fx.userRepo.EXPECT().FindByID(ctx, creatorID).Return(&entity.User{ID: creatorID}, nil)
		fx.couponRepo.EXPECT().ExistsByCode(ctx, "WELCOME5").Return(true, nil)

		_, err := fx.service.CreateCoupon(ctx, creatorID, &usecase.CreateCouponInput{
			Code:      "WELCOME5",
			Type:      entity.DiscountFixedAmount,
			Value:     decimal.NewFromInt(5),
			StartsAt:  fx.now,
			ExpiresAt: fx.now.Add(time.Hour),
			MaxUses:   1,
		})
		assert.ErrorIs(t, err, domainerrors.ErrCouponAlreadyExists)
	})

	invalid := map[string]*usecase.CreateCouponInput{
		"percentage above 100": {Code: "X", Type: entity.DiscountPercentage, Value: decimal.NewFromInt(101), StartsAt: time.Unix(0, 0), ExpiresAt: time.Unix(10, 0), MaxUses: 1},
		"zero max uses":        {Code: "X", Type: entity.DiscountFixedAmount, Value: decimal.NewFromInt(1), StartsAt: time.Unix(0, 0), ExpiresAt: time.Unix(10, 0)},
		"window reversed":      {Code: "X", Type: entity.DiscountFixedAmount, Value: decimal.NewFromInt(1), StartsAt: time.Unix(10, 0), ExpiresAt: time.Unix(0, 0), MaxUses: 1},
		"unknown type":         {Code: "X", Type: "bogus", Value: decimal.NewFromInt(1), StartsAt: time.Unix(0, 0), ExpiresAt: time.Unix(10, 0), MaxUses: 1},
	}
	for name, input := range invalid {
		t.Run(name, func(t *testing.T) {
			fx := createTestCouponService(t)

			_, err := fx.service.CreateCoupon(ctx, uuid.New(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestCouponService_UpdateCoupon_MaxUsesBelowUses(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	creatorID := uuid.New()
	coupon := newTestCoupon(fx.now, creatorID)
	coupon.UsesSoFar = 2

	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)

	maxUses := 1
	_, err := fx.service.UpdateCoupon(ctx, creatorID, coupon.ID, &usecase.UpdateCouponInput{MaxUses: &maxUses})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCouponService_DeleteCoupon_OtherSeller(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	coupon := newTestCoupon(fx.now, uuid.New())

	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)

	err := fx.service.DeleteCoupon(ctx, uuid.New(), coupon.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCouponService_ValidateCoupon_DoesNotRedeem(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	coupon := newTestCoupon(fx.now, uuid.New())

	fx.couponRepo.EXPECT().FindByCode(ctx, "SPRING").Return(coupon, nil)

	quote, err := fx.service.ValidateCoupon(ctx, "spring", decimal.NewFromInt(10))
	require.NoError(t, err)

	// A fixed discount never exceeds the base.
	assert.True(t, decimal.NewFromInt(10).Equal(quote.Discount))
	assert.True(t, quote.Total.IsZero())
	fx.couponRepo.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything, mock.Anything)
}

func TestCouponService_ValidateCoupon_WindowBoundsAreStrict(t *testing.T) {
	ctx := context.Background()

	t.Run("at start instant", func(t *testing.T) {
		fx := createTestCouponService(t)
		coupon := newTestCoupon(fx.now, uuid.New())
		coupon.StartsAt = fx.now

		fx.couponRepo.EXPECT().FindByCode(ctx, "SPRING").Return(coupon, nil)

		_, err := fx.service.ValidateCoupon(ctx, "SPRING", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
	})

	t.Run("at end instant", func(t *testing.T) {
		fx := createTestCouponService(t)
		coupon := newTestCoupon(fx.now, uuid.New())
		coupon.ExpiresAt = fx.now

		fx.couponRepo.EXPECT().FindByCode(ctx, "SPRING").Return(coupon, nil)

		_, err := fx.service.ValidateCoupon(ctx, "SPRING", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
	})
}

func TestCouponService_ApplyCoupon_LastUse(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	coupon := newTestCoupon(fx.now, uuid.New())
	coupon.UsesSoFar = 2

	redeemed := *coupon
	redeemed.UsesSoFar = 3
	redeemed.Active = false

	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().FindByCode(ctx, "SPRING").Return(coupon, nil)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, fx.now).Return(&redeemed, nil)

	quote, err := fx.service.ApplyCoupon(ctx, "SPRING", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(quote.Discount))
	assert.True(t, decimal.NewFromInt(25).Equal(quote.Total))
	assert.False(t, quote.Coupon.Active)
	assert.Equal(t, 3, quote.Coupon.UsesSoFar)
}

func TestCouponService_ApplyCoupon_LostRace(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	coupon := newTestCoupon(fx.now, uuid.New())

	expectTx(fx.txManager, fx.factory)
	fx.couponRepo.EXPECT().FindByCode(ctx, "SPRING").Return(coupon, nil)
	fx.couponRepo.EXPECT().IncrementUsage(ctx, coupon.ID, fx.now).Return(nil, repository.ErrCouponUnavailable)

	_, err := fx.service.ApplyCoupon(ctx, "SPRING", decimal.NewFromInt(40))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
}

func TestCouponService_ListCoupons_StatusFilter(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	creatorID := uuid.New()

	active := newTestCoupon(fx.now, creatorID)
	expiring := newTestCoupon(fx.now, creatorID)
	expiring.ExpiresAt = fx.now.Add(48 * time.Hour)
	exhausted := newTestCoupon(fx.now, creatorID)
	exhausted.UsesSoFar = exhausted.MaxUses
	exhausted.Active = false
	pending := newTestCoupon(fx.now, creatorID)
	pending.StartsAt = fx.now.Add(time.Hour)

	fx.couponRepo.EXPECT().
		List(ctx, repository.CouponFilter{CreatorID: &creatorID}).
		Return([]*entity.Coupon{active, expiring, exhausted, pending}, nil)

	coupons, err := fx.service.ListCoupons(ctx, &usecase.ListCouponsInput{CreatorID: &creatorID, Status: entity.CouponStatusActive})
	require.NoError(t, err)
	assert.ElementsMatch(t, []*entity.Coupon{active, expiring}, coupons)
}

func TestCouponService_ExpiringCoupons_SoonestFirst(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	creatorID := uuid.New()

	later := newTestCoupon(fx.now, creatorID)
	later.ExpiresAt = fx.now.Add(5 * 24 * time.Hour)
	sooner := newTestCoupon(fx.now, creatorID)
	sooner.ExpiresAt = fx.now.Add(24 * time.Hour)
	outside := newTestCoupon(fx.now, creatorID)

	fx.couponRepo.EXPECT().
		List(ctx, repository.CouponFilter{CreatorID: &creatorID}).
		Return([]*entity.Coupon{later, outside, sooner}, nil)

	coupons, err := fx.service.ExpiringCoupons(ctx, creatorID, 7)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Coupon{sooner, later}, coupons)
}

func TestCouponService_CouponStats(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()
	creatorID := uuid.New()

	active := newTestCoupon(fx.now, creatorID)
	active.UsesSoFar = 1
	expiring := newTestCoupon(fx.now, creatorID)
	expiring.Type = entity.DiscountPercentage
	expiring.ExpiresAt = fx.now.Add(time.Hour)
	inactive := newTestCoupon(fx.now, creatorID)
	inactive.Active = false

	fx.couponRepo.EXPECT().
		List(ctx, repository.CouponFilter{CreatorID: &creatorID}).
		Return([]*entity.Coupon{active, expiring, inactive}, nil)

	stats, err := fx.service.CouponStats(ctx, creatorID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.TotalUses)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.Equal(t, 2, stats.CountsByType[entity.DiscountFixedAmount])
	assert.Equal(t, 1, stats.CountsByType[entity.DiscountPercentage])
	assert.Equal(t, 1, stats.CountsByStatus[entity.CouponStatusInactive])
}

func TestCouponService_DeactivateExpiredCoupons(t *testing.T) {
	fx := createTestCouponService(t)
	ctx := context.Background()

	fx.couponRepo.EXPECT().DeactivateExpired(ctx, fx.now).Return(int64(3), nil)

	count, err := fx.service.DeactivateExpiredCoupons(ctx, fx.now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
