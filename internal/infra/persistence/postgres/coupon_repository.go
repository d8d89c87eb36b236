package postgres

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// Create persists a new coupon with its code normalized.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCoupon
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("uses so far exceed the usage cap")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.Code = couponM.Code
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// FindByID retrieves a coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// FindByCode retrieves a coupon by its code, case-insensitively.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", entity.NormalizeCouponCode(code)).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// ExistsByCode reports whether a coupon already uses the code.
func (repo *couponRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("code = ?", entity.NormalizeCouponCode(code)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check coupon code")
	}

	return count > 0, nil
}

// List returns coupons matching filter, newest first.
func (repo *couponRepository) List(ctx context.Context, filter repository.CouponFilter) ([]*entity.Coupon, error) {
	query := repo.db.WithContext(ctx).Model(&model.CouponModel{})
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + escapeLike(q) + "%"
		query = query.Where("(code ILIKE ? OR description ILIKE ?)", like, like)
	}

	var couponModels []*model.CouponModel
	if err := query.Order("created_at DESC").Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return toCouponDomains(couponModels), nil
}

// Update modifies the editable fields of a coupon. The usage counter is
// owned by IncrementUsage and is not written here.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", coupon.ID).
		Updates(map[string]any{
			"code":        entity.NormalizeCouponCode(coupon.Code),
			"description": coupon.Description,
			"type":        string(coupon.Type),
			"value":       coupon.Value,
			"starts_at":   coupon.StartsAt,
			"expires_at":  coupon.ExpiresAt,
			"max_uses":    coupon.MaxUses,
			"active":      coupon.Active,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCoupon
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("usage cap is below uses so far")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// Delete removes a coupon. Orders keep the dangling coupon id for history.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CouponModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// IncrementUsage redeems the coupon once with a single guarded UPDATE.
func (repo *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID, now time.Time) (*entity.Coupon, error) {
	var couponM model.CouponModel

	result := repo.db.WithContext(ctx).
		Model(&couponM).
		Clauses(clause.Returning{}).
		Where("id = ? AND active = ? AND uses_so_far < max_uses AND starts_at < ? AND expires_at > ?",
			id, true, now, now).
		Updates(map[string]any{
			"uses_so_far": gorm.Expr("uses_so_far + 1"),
			"active":      gorm.Expr("uses_so_far + 1 < max_uses"),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem coupon")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCouponUnavailable
	}

	return toCouponDomain(&couponM), nil
}

// DeactivateExpired switches off every active coupon whose end has passed.
func (repo *couponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Update("active", false)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate expired coupons")
	}

	return result.RowsAffected, nil
}

// MostUsed returns the coupons with the highest usage counter.
func (repo *couponRepository) MostUsed(ctx context.Context, limit int) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := paginate(repo.db.WithContext(ctx), limit, 0).
		Where("uses_so_far > 0").
		Order("uses_so_far DESC, code ASC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list most used coupons")
	}

	return toCouponDomains(couponModels), nil
}

// --- Mapper Functions ---

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:          data.ID,
		Code:        data.Code,
		Description: data.Description,
		Type:        entity.DiscountType(data.Type),
		Value:       data.Value,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
		MaxUses:     data.MaxUses,
		UsesSoFar:   data.UsesSoFar,
		Active:      data.Active,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCouponDomains(models []*model.CouponModel) []*entity.Coupon {
	coupons := make([]*entity.Coupon, 0, len(models))
	for _, couponM := range models {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:          data.ID,
		Code:        entity.NormalizeCouponCode(data.Code),
		Description: data.Description,
		Type:        string(data.Type),
		Value:       data.Value,
		StartsAt:    data.StartsAt,
		ExpiresAt:   data.ExpiresAt,
		MaxUses:     data.MaxUses,
		UsesSoFar:   data.UsesSoFar,
		Active:      data.Active,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
