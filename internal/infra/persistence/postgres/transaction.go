// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// UserRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// RefreshTokenRepo creates a refresh token repository bound to the transaction.
func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// AddressRepo creates an address repository bound to the transaction.
func (f *gormRepositoryFactory) AddressRepo() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

// DeviceRepo creates a device repository bound to the transaction.
func (f *gormRepositoryFactory) DeviceRepo() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

// CategoryRepo creates a category repository bound to the transaction.
func (f *gormRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

// ProductRepo creates a product repository bound to the transaction.
func (f *gormRepositoryFactory) ProductRepo() repository.ProductRepository {
	return NewProductRepository(f.tx)
}

// CartRepo creates a cart repository bound to the transaction.
func (f *gormRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.tx)
}

// CouponRepo creates a coupon repository bound to the transaction.
func (f *gormRepositoryFactory) CouponRepo() repository.CouponRepository {
	return NewCouponRepository(f.tx)
}

// OrderRepo creates an order repository bound to the transaction.
func (f *gormRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

// PreOrderRepo creates a pre-order repository bound to the transaction.
func (f *gormRepositoryFactory) PreOrderRepo() repository.PreOrderRepository {
	return NewPreOrderRepository(f.tx)
}

// ReviewRepo creates a review repository bound to the transaction.
func (f *gormRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// FavoriteRepo creates a favorite repository bound to the transaction.
func (f *gormRepositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NotificationRepo creates a notification repository bound to the transaction.
func (f *gormRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// BlogRepo creates a blog repository bound to the transaction.
func (f *gormRepositoryFactory) BlogRepo() repository.BlogRepository {
	return NewBlogRepository(f.tx)
}

// EventRepo creates an event repository bound to the transaction.
func (f *gormRepositoryFactory) EventRepo() repository.EventRepository {
	return NewEventRepository(f.tx)
}

// SellerMetricRepo creates a seller metric repository bound to the transaction.
func (f *gormRepositoryFactory) SellerMetricRepo() repository.SellerMetricRepository {
	return NewSellerMetricRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one database transaction. Serialization failures and
// deadlocks come back as ErrTransactionFailed so callers can retry the request.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return conflictOr(err)
	}

	if err := tx.Commit().Error; err != nil {
		return conflictOr(errors.Wrap(err, "failed to commit transaction"))
	}

	return nil
}

func conflictOr(err error) error {
	if isTransactionConflict(err) {
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return err
}
