package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// NewCartService creates the shopping cart usecase.
func NewCartService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		cartRepo:  cartRepo,
		logger:    logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's items with their aggregate counts and total.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := &entity.Cart{UserID: userID, Items: items}

	return &usecase.CartView{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		UnitCount: cart.UnitCount(),
		Total:     cart.Total(),
	}, nil
}

// AddItem puts quantity units of a product in the cart. Adding a product that is
// already there combines the quantities; the unit price stays the one frozen on first add.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, validationError("quantity must be greater than zero")
	}

	var result *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return translateRepoError(err, "failed to find user")
		}

		product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return translateRepoError(err, "failed to find product")
		}
		if !product.Active {
			return domainerrors.ErrProductInactive.WrapMessage("product is not for sale")
		}

		if !product.HasStock(quantity) {
			return insufficientStock(product, quantity)
		}

		item := &entity.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}
		if err := repoFactory.CartRepo().AddQuantity(ctx, item); err != nil {
			return errors.Wrap(err, "failed to add cart item")
		}
		// The stored quantity includes earlier adds; a failed check rolls the upsert back.
		if !product.HasStock(item.Quantity) {
			return insufficientStock(product, item.Quantity)
		}
		item.ProductName = product.Name
		result = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.Any("user_id", userID), slog.Any("product_id", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	return result, nil
}

// UpdateQuantity sets the quantity of a cart item. A quantity of zero or less removes
// the item and returns nil.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	var result *entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		item, err := ownedCartItem(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		if quantity <= 0 {
			if err := cartRepo.Delete(ctx, itemID); err != nil {
				return translateRepoError(err, "failed to remove cart item")
			}

			return nil
		}

		product, err := repoFactory.ProductRepo().FindByID(ctx, item.ProductID)
		if err != nil {
			return translateRepoError(err, "failed to find product")
		}
		if !product.HasStock(quantity) {
			return insufficientStock(product, quantity)
		}

		if err := cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
			return translateRepoError(err, "failed to update cart item")
		}
		item.Quantity = quantity
		result = item

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return result, nil
}

// RemoveItem deletes one item from the user's cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := ownedCartItem(ctx, srv.cartRepo, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.Delete(ctx, itemID); err != nil {
		return translateRepoError(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart empties the cart. Clearing an empty cart succeeds.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	removed, err := srv.cartRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	srv.log(ctx).Debug("Cart cleared", slog.Any("user_id", userID), slog.Int64("removed", removed))

	return nil
}

// CartTotal sums the item subtotals; an empty cart totals zero.
func (srv *cartService) CartTotal(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to load cart")
	}

	return (&entity.Cart{UserID: userID, Items: items}).Total(), nil
}

func ownedCartItem(ctx context.Context, cartRepo repository.CartRepository, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find cart item")
	}
	if item.UserID != userID {
		return nil, domainerrors.ErrCartItemNotFound.WrapMessage("cart item belongs to another user")
	}

	return item, nil
}

func insufficientStock(product *entity.Product, requested int) error {
	return errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(
		fmt.Sprintf("product %q has %d in stock, %d requested", product.Name, product.Stock, requested),
	))
}
