package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultRecentOrders = 10

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	QRService service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates the order usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		qrService: params.QRService,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns the user's cart into a pending order. Loading the cart, checking
// stock, redeeming the coupon, writing the order, taking stock and emptying the
// cart all happen in one transaction: any failure leaves nothing behind.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("user_id", userID))

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deliveryAddress, err := resolveDeliveryAddress(ctx, repoFactory.AddressRepo(), userID, input)
		if err != nil {
			return err
		}

		// 1. Load the cart.
		cartRepo := repoFactory.CartRepo()
		cartItems, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(cartItems) == 0 {
			return domainerrors.ErrEmptyCart.WrapMessage("nothing to check out")
		}

		// 2. Re-check every item against current stock.
		productRepo := repoFactory.ProductRepo()
		products, err := loadCartProducts(ctx, productRepo, cartItems)
		if err != nil {
			return err
		}

		// 3. Subtotal from the frozen cart prices.
		cart := &entity.Cart{UserID: userID, Items: cartItems}
		subtotal := cart.Total()

		// 4. Redeem the coupon when one is given.
		discount := decimal.Zero
		var couponID *uuid.UUID
		if coupon, err := findCheckoutCoupon(ctx, repoFactory.CouponRepo(), input); err != nil {
			return err
		} else if coupon != nil {
			_, discount, err = redeemCoupon(ctx, repoFactory.CouponRepo(), coupon, subtotal, srv.now())
			if err != nil {
				return err
			}
			couponID = &coupon.ID
		}

		// 5-6. Order and its items from the cart snapshot.
		order := &entity.Order{
			UserID:          userID,
			Status:          entity.OrderStatusPending,
			Subtotal:        subtotal,
			Discount:        discount,
			Total:           subtotal.Sub(discount),
			CouponID:        couponID,
			DeliveryAddress: deliveryAddress,
			Items:           make([]*entity.OrderItem, 0, len(cartItems)),
		}
		for _, item := range cartItems {
			product := products[item.ProductID]
			order.Items = append(order.Items, &entity.OrderItem{
				ProductID:   item.ProductID,
				SellerID:    product.SellerID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 7. Take stock. Rows are locked in a stable order across checkouts.
		sorted := append([]*entity.CartItem(nil), cartItems...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].ProductID.String() < sorted[j].ProductID.String()
		})
		for _, item := range sorted {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.WithStack(domainerrors.ErrInsufficientStock.WithDetails(
						fmt.Sprintf("product %q sold out during checkout", products[item.ProductID].Name),
					))
				}

				return translateRepoError(err, "failed to decrement stock")
			}
		}

		// 8. Empty the cart.
		if _, err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check out")
	}
	srv.log(ctx).Info("Order placed", slog.Any("order_id", placed.ID), slog.String("total", placed.Total.StringFixed(2)))

	event := newDomainEvent(ctx, service.EventOrderPlaced, srv.now())
	event.OrderPlaced = &service.OrderPlacedPayload{
		OrderID:   placed.ID.String(),
		BuyerID:   userID.String(),
		SellerIDs: uuidStrings(placed.SellerIDs()),
		Total:     placed.Total.StringFixed(2),
	}
	publishAfterCommit(ctx, srv.log(ctx), srv.publisher, event)

	return &usecase.CheckoutOutput{
		Order:    placed,
		Subtotal: placed.Subtotal,
		Discount: placed.Discount,
		Total:    placed.Total,
	}, nil
}

// GetOrder returns an order to its buyer or to a seller with items in it.
func (srv *orderService) GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get order")
	}
	if order.UserID != requesterID && !order.HasSeller(requesterID) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order not visible to requester")
	}

	return order, nil
}

func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	return srv.listOrders(ctx, repository.OrderFilter{UserID: &userID}, input)
}

// ListSellerOrders lists orders holding at least one item of the seller, optionally by status.
func (srv *orderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	return srv.listOrders(ctx, repository.OrderFilter{SellerID: &sellerID}, input)
}

func (srv *orderService) RecentOrders(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultRecentOrders
	}

	return srv.listOrders(ctx, repository.OrderFilter{SellerID: &sellerID}, &usecase.ListOrdersInput{Limit: limit})
}

func (srv *orderService) listOrders(ctx context.Context, filter repository.OrderFilter, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	if input == nil {
		input = &usecase.ListOrdersInput{}
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, validationError("unknown order status " + string(input.Status))
	}

	filter.Status = input.Status
	filter.Limit, filter.Offset = normalizePage(input.Limit, input.Offset)

	orders, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus moves an order along the state machine on behalf of a seller in it.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, validationError("unknown order status " + string(status))
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return translateRepoError(err, "failed to find order")
		}
		if !order.HasSeller(sellerID) {
			return domainerrors.ErrForbidden.WrapMessage("order holds no items of this seller")
		}

		if err := transitionOrder(ctx, repoFactory, order, status); err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	srv.log(ctx).Info("Order status changed", slog.Any("order_id", orderID), slog.String("status", string(status)))

	return updated, nil
}

// CancelOrder cancels the buyer's own order and puts its units back in stock.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var cancelled *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return translateRepoError(err, "failed to find order")
		}
		if order.UserID != userID {
			return domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
		}

		if err := transitionOrder(ctx, repoFactory, order, entity.OrderStatusCancelled); err != nil {
			return err
		}
		cancelled = order

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}
	srv.log(ctx).Info("Order cancelled", slog.Any("order_id", orderID))

	return cancelled, nil
}

// OrderPickupQR renders a PNG QR code encoding the order for pickup.
func (srv *orderService) OrderPickupQR(ctx context.Context, requesterID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, requesterID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOrderPickupQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// transitionOrder applies a checked status change; cancelling restores stock.
func transitionOrder(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus) error {
	if !order.Status.CanTransitionTo(next) {
		return errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("order cannot move from %s to %s", order.Status, next),
		))
	}

	if err := repoFactory.OrderRepo().UpdateStatus(ctx, order.ID, order.Status, next); err != nil {
		return translateRepoError(err, "failed to update order status")
	}
	order.Status = next

	if next != entity.OrderStatusCancelled {
		return nil
	}

	productRepo := repoFactory.ProductRepo()
	for _, item := range order.Items {
		if _, err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			// A product removed since the order was placed has no stock to restore.
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return errors.Wrap(err, "failed to restore stock")
		}
	}

	return nil
}

func resolveDeliveryAddress(ctx context.Context, addressRepo repository.AddressRepository, userID uuid.UUID, input *usecase.CheckoutInput) (string, error) {
	if input.AddressID != nil {
		address, err := ownedAddress(ctx, addressRepo, userID, *input.AddressID)
		if err != nil {
			return "", err
		}

		return address.Formatted(), nil
	}

	deliveryAddress := strings.TrimSpace(input.DeliveryAddress)
	if deliveryAddress == "" {
		return "", validationError("delivery address is required")
	}

	return deliveryAddress, nil
}

func loadCartProducts(ctx context.Context, productRepo repository.ProductRepository, items []*entity.CartItem) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	found, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	products := make(map[uuid.UUID]*entity.Product, len(found))
	for _, product := range found {
		products[product.ID] = product
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WrapMessage(item.ProductName)
		}
		if !product.Active {
			return nil, domainerrors.ErrProductInactive.WrapMessage(product.Name)
		}
		if !product.HasStock(item.Quantity) {
			return nil, insufficientStock(product, item.Quantity)
		}
	}

	return products, nil
}

func findCheckoutCoupon(ctx context.Context, couponRepo repository.CouponRepository, input *usecase.CheckoutInput) (*entity.Coupon, error) {
	switch {
	case input.CouponID != nil:
		coupon, err := couponRepo.FindByID(ctx, *input.CouponID)
		if err != nil {
			return nil, translateRepoError(err, "failed to find coupon")
		}

		return coupon, nil
	case strings.TrimSpace(input.CouponCode) != "":
		coupon, err := couponRepo.FindByCode(ctx, entity.NormalizeCouponCode(input.CouponCode))
		if err != nil {
			return nil, translateRepoError(err, "failed to find coupon")
		}

		return coupon, nil
	default:
		return nil, nil
	}
}
