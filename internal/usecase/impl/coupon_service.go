package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultMostUsedLimit = 10

// couponService implements the CouponUsecase interface.
type couponService struct {
	txManager      repository.TransactionManager
	couponRepo     repository.CouponRepository
	expiringWindow time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	CouponRepo repository.CouponRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCouponService creates the coupon usecase.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	window := 7 * 24 * time.Hour
	if params.Config != nil && params.Config.Coupon != nil && params.Config.Coupon.ExpiringWindow > 0 {
		window = params.Config.Coupon.ExpiringWindow
	}

	return &couponService{
		txManager:      params.TxManager,
		couponRepo:     params.CouponRepo,
		expiringWindow: window,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCoupon validates input and stores a new active coupon owned by creatorID.
func (srv *couponService) CreateCoupon(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	coupon := &entity.Coupon{
		Code:        entity.NormalizeCouponCode(input.Code),
		Description: strings.TrimSpace(input.Description),
		Type:        input.Type,
		Value:       input.Value,
		StartsAt:    input.StartsAt,
		ExpiresAt:   input.ExpiresAt,
		MaxUses:     input.MaxUses,
		Active:      true,
		CreatorID:   creatorID,
	}
	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, creatorID); err != nil {
			return translateRepoError(err, "failed to find coupon creator")
		}

		couponRepo := repoFactory.CouponRepo()

		exists, err := couponRepo.ExistsByCode(ctx, coupon.Code)
		if err != nil {
			return errors.Wrap(err, "failed to check coupon code")
		}
		if exists {
			return domainerrors.ErrCouponAlreadyExists.WrapMessage(coupon.Code)
		}

		if err := couponRepo.Create(ctx, coupon); err != nil {
			return translateRepoError(err, "failed to create coupon")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create coupon", slog.String("code", coupon.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create coupon")
	}
	srv.log(ctx).Info("Coupon created", slog.Any("coupon_id", coupon.ID), slog.String("code", coupon.Code))

	return coupon, nil
}

// UpdateCoupon changes the editable fields of a coupon owned by creatorID.
func (srv *couponService) UpdateCoupon(ctx context.Context, creatorID, couponID uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	var updated *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		coupon, err := ownedCoupon(ctx, couponRepo, creatorID, couponID)
		if err != nil {
			return err
		}

		if input.Description != nil {
			coupon.Description = strings.TrimSpace(*input.Description)
		}
		if input.Value != nil {
			coupon.Value = *input.Value
		}
		if input.StartsAt != nil {
			coupon.StartsAt = *input.StartsAt
		}
		if input.ExpiresAt != nil {
			coupon.ExpiresAt = *input.ExpiresAt
		}
		if input.MaxUses != nil {
			coupon.MaxUses = *input.MaxUses
		}
		if input.Active != nil {
			coupon.Active = *input.Active
		}

		if err := validateCoupon(coupon); err != nil {
			return err
		}
		if coupon.MaxUses < coupon.UsesSoFar {
			return validationError("max_uses cannot be lower than uses so far")
		}

		if err := couponRepo.Update(ctx, coupon); err != nil {
			return translateRepoError(err, "failed to update coupon")
		}
		updated = coupon

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update coupon")
	}

	return updated, nil
}

func (srv *couponService) DeactivateCoupon(ctx context.Context, creatorID, couponID uuid.UUID) error {
	inactive := false
	if _, err := srv.UpdateCoupon(ctx, creatorID, couponID, &usecase.UpdateCouponInput{Active: &inactive}); err != nil {
		return err
	}
	srv.log(ctx).Info("Coupon deactivated", slog.Any("coupon_id", couponID))

	return nil
}

func (srv *couponService) DeleteCoupon(ctx context.Context, creatorID, couponID uuid.UUID) error {
	if _, err := ownedCoupon(ctx, srv.couponRepo, creatorID, couponID); err != nil {
		return err
	}

	if err := srv.couponRepo.Delete(ctx, couponID); err != nil {
		return translateRepoError(err, "failed to delete coupon")
	}
	srv.log(ctx).Info("Coupon deleted", slog.Any("coupon_id", couponID))

	return nil
}

func (srv *couponService) GetCoupon(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get coupon")
	}

	return coupon, nil
}

// ValidateCoupon quotes the discount of code on base without redeeming it.
func (srv *couponService) ValidateCoupon(ctx context.Context, code string, base decimal.Decimal) (*usecase.CouponQuote, error) {
	now := srv.now()

	coupon, err := srv.couponRepo.FindByCode(ctx, entity.NormalizeCouponCode(code))
	if err != nil {
		return nil, translateRepoError(err, "failed to find coupon")
	}
	if !coupon.IsValid(now) {
		return nil, domainerrors.ErrInvalidCoupon.WrapMessage(coupon.Code)
	}

	return newCouponQuote(coupon, base, coupon.ComputeDiscount(base, now)), nil
}

// ApplyCoupon redeems code once against base.
func (srv *couponService) ApplyCoupon(ctx context.Context, code string, base decimal.Decimal) (*usecase.CouponQuote, error) {
	var quote *usecase.CouponQuote

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		coupon, err := couponRepo.FindByCode(ctx, entity.NormalizeCouponCode(code))
		if err != nil {
			return translateRepoError(err, "failed to find coupon")
		}

		redeemed, discount, err := redeemCoupon(ctx, couponRepo, coupon, base, srv.now())
		if err != nil {
			return err
		}
		quote = newCouponQuote(redeemed, base, discount)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply coupon")
	}
	srv.log(ctx).Info("Coupon redeemed", slog.String("code", quote.Coupon.Code), slog.Int("uses", quote.Coupon.UsesSoFar))

	return quote, nil
}

// DeactivateExpiredCoupons switches off every active coupon whose window closed before now.
func (srv *couponService) DeactivateExpiredCoupons(ctx context.Context, now time.Time) (int64, error) {
	count, err := srv.couponRepo.DeactivateExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate expired coupons")
	}
	srv.log(ctx).Info("Expired coupons deactivated", slog.Int64("count", count))

	return count, nil
}

// ListCoupons filters coupons by creator, type, text and derived status.
// The active status also matches coupons that are about to expire.
func (srv *couponService) ListCoupons(ctx context.Context, input *usecase.ListCouponsInput) ([]*entity.Coupon, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, validationError("unknown coupon status " + string(input.Status))
	}
	if input.Type != "" && !input.Type.IsValid() {
		return nil, validationError("unknown coupon type " + string(input.Type))
	}

	coupons, err := srv.couponRepo.List(ctx, repository.CouponFilter{
		CreatorID: input.CreatorID,
		Type:      input.Type,
		Query:     input.Query,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}
	if input.Status == "" {
		return coupons, nil
	}

	now := srv.now()
	filtered := make([]*entity.Coupon, 0, len(coupons))
	for _, coupon := range coupons {
		status := coupon.Status(now, srv.expiringWindow)
		if status == input.Status || (input.Status == entity.CouponStatusActive && status == entity.CouponStatusExpiring) {
			filtered = append(filtered, coupon)
		}
	}

	return filtered, nil
}

// ExpiringCoupons lists the creator's valid coupons ending within days, soonest first.
func (srv *couponService) ExpiringCoupons(ctx context.Context, creatorID uuid.UUID, days int) ([]*entity.Coupon, error) {
	window := srv.expiringWindow
	if days > 0 {
		window = time.Duration(days) * 24 * time.Hour
	}

	coupons, err := srv.couponRepo.List(ctx, repository.CouponFilter{CreatorID: &creatorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	now := srv.now()
	expiring := make([]*entity.Coupon, 0)
	for _, coupon := range coupons {
		if coupon.ExpiresWithin(now, window) {
			expiring = append(expiring, coupon)
		}
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiresAt.Before(expiring[j].ExpiresAt)
	})

	return expiring, nil
}

func (srv *couponService) MostUsedCoupons(ctx context.Context, limit int) ([]*entity.Coupon, error) {
	if limit <= 0 {
		limit = defaultMostUsedLimit
	}

	coupons, err := srv.couponRepo.MostUsed(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list most used coupons")
	}

	return coupons, nil
}

// CouponStats summarizes the creator's coupons at the current time.
func (srv *couponService) CouponStats(ctx context.Context, creatorID uuid.UUID) (*entity.CouponStats, error) {
	coupons, err := srv.couponRepo.List(ctx, repository.CouponFilter{CreatorID: &creatorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	now := srv.now()
	stats := &entity.CouponStats{
		CountsByType:   make(map[entity.DiscountType]int),
		CountsByStatus: make(map[entity.CouponStatus]int),
	}
	for _, coupon := range coupons {
		stats.Total++
		stats.TotalUses += coupon.UsesSoFar
		stats.CountsByType[coupon.Type]++

		status := coupon.Status(now, srv.expiringWindow)
		stats.CountsByStatus[status]++
		if coupon.IsValid(now) {
			stats.Active++
		}
		if status == entity.CouponStatusExpiring {
			stats.ExpiringSoon++
		}
	}

	return stats, nil
}

// redeemCoupon consumes one use of coupon and returns the redeemed row with the
// discount it grants on base. The discount is computed from the pre-redemption
// state because the last use switches the coupon off.
func redeemCoupon(ctx context.Context, couponRepo repository.CouponRepository, coupon *entity.Coupon, base decimal.Decimal, now time.Time) (*entity.Coupon, decimal.Decimal, error) {
	if !coupon.IsValid(now) {
		return nil, decimal.Zero, domainerrors.ErrInvalidCoupon.WrapMessage(coupon.Code)
	}
	discount := coupon.ComputeDiscount(base, now)

	redeemed, err := couponRepo.IncrementUsage(ctx, coupon.ID, now)
	if err != nil {
		return nil, decimal.Zero, translateRepoError(err, "failed to redeem coupon "+coupon.Code)
	}

	return redeemed, discount, nil
}

func newCouponQuote(coupon *entity.Coupon, base, discount decimal.Decimal) *usecase.CouponQuote {
	return &usecase.CouponQuote{
		Coupon:   coupon,
		Base:     base,
		Discount: discount,
		Total:    base.Sub(discount),
	}
}

func ownedCoupon(ctx context.Context, couponRepo repository.CouponRepository, creatorID, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := couponRepo.FindByID(ctx, couponID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find coupon")
	}
	if coupon.CreatorID != creatorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("coupon belongs to another seller")
	}

	return coupon, nil
}

func validateCoupon(coupon *entity.Coupon) error {
	switch {
	case coupon.Code == "":
		return validationError("code is required")
	case utf8.RuneCountInString(coupon.Code) > entity.CouponCodeMaxLength:
		return validationError("code exceeds 50 characters")
	case utf8.RuneCountInString(coupon.Description) > entity.CouponDescriptionMaxLength:
		return validationError("description exceeds 500 characters")
	case !coupon.Type.IsValid():
		return validationError("type must be percentage or fixed_amount")
	case !coupon.Value.IsPositive():
		return validationError("value must be greater than zero")
	case coupon.Type == entity.DiscountPercentage && coupon.Value.GreaterThan(decimal.NewFromInt(100)):
		return validationError("percentage cannot exceed 100")
	case coupon.MaxUses <= 0:
		return validationError("max_uses must be greater than zero")
	case !coupon.StartsAt.Before(coupon.ExpiresAt):
		return validationError("starts_at must be before expires_at")
	}

	return nil
}
