package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type preOrderService struct {
	preOrderRepo repository.PreOrderRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewPreOrderService creates the pre-order usecase.
func NewPreOrderService(
	preOrderRepo repository.PreOrderRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.PreOrderUsecase {
	return &preOrderService{
		preOrderRepo: preOrderRepo,
		productRepo:  productRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (srv *preOrderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePreOrder reserves units of an active product at its current price.
func (srv *preOrderService) CreatePreOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreatePreOrderInput) (*entity.PreOrder, error) {
	if input == nil || input.Quantity <= 0 {
		return nil, validationError("quantity must be greater than zero")
	}
	if input.EstimatedDelivery != nil && input.EstimatedDelivery.Before(srv.now()) {
		return nil, validationError("estimated delivery must not be in the past")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}
	if !product.Active {
		return nil, domainerrors.ErrProductInactive.WrapMessage("product is not for sale")
	}

	preOrder := &entity.PreOrder{
		UserID:            userID,
		ProductID:         product.ID,
		SellerID:          product.SellerID,
		Quantity:          input.Quantity,
		UnitPrice:         product.Price,
		Total:             product.Price.Mul(decimal.NewFromInt(int64(input.Quantity))),
		EstimatedDelivery: input.EstimatedDelivery,
		Status:            entity.PreOrderStatusPending,
		Notes:             strings.TrimSpace(input.Notes),
	}
	if err := srv.preOrderRepo.Create(ctx, preOrder); err != nil {
		srv.log(ctx).Error("Failed to create pre-order", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create pre-order")
	}
	srv.log(ctx).Info("Pre-order created", slog.Any("pre_order_id", preOrder.ID), slog.Any("product_id", product.ID))

	return preOrder, nil
}

// GetPreOrder returns a pre-order to its buyer or its seller.
func (srv *preOrderService) GetPreOrder(ctx context.Context, requesterID, preOrderID uuid.UUID) (*entity.PreOrder, error) {
	preOrder, err := srv.preOrderRepo.FindByID(ctx, preOrderID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get pre-order")
	}
	if preOrder.UserID != requesterID && preOrder.SellerID != requesterID {
		return nil, domainerrors.ErrPreOrderNotFound.WrapMessage("pre-order not visible to requester")
	}

	return preOrder, nil
}

func (srv *preOrderService) ListMyPreOrders(ctx context.Context, userID uuid.UUID, status entity.PreOrderStatus) ([]*entity.PreOrder, error) {
	return srv.list(ctx, repository.PreOrderFilter{UserID: &userID, Status: status})
}

func (srv *preOrderService) ListSellerPreOrders(ctx context.Context, sellerID uuid.UUID, status entity.PreOrderStatus) ([]*entity.PreOrder, error) {
	return srv.list(ctx, repository.PreOrderFilter{SellerID: &sellerID, Status: status})
}

func (srv *preOrderService) list(ctx context.Context, filter repository.PreOrderFilter) ([]*entity.PreOrder, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, validationError("unknown pre-order status " + string(filter.Status))
	}

	preOrders, err := srv.preOrderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	return preOrders, nil
}

// UpdatePreOrderStatus lets the seller move a pre-order one step forward or cancel it.
func (srv *preOrderService) UpdatePreOrderStatus(ctx context.Context, sellerID, preOrderID uuid.UUID, status entity.PreOrderStatus) (*entity.PreOrder, error) {
	if !status.IsValid() {
		return nil, validationError("unknown pre-order status " + string(status))
	}

	preOrder, err := srv.preOrderRepo.FindByID(ctx, preOrderID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find pre-order")
	}
	if preOrder.SellerID != sellerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("pre-order belongs to another seller")
	}

	if err := srv.transition(ctx, preOrder, status, preOrder.Notes); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Pre-order status changed", slog.Any("pre_order_id", preOrderID), slog.String("status", string(status)))

	return preOrder, nil
}

// CancelPreOrder cancels a pre-order for its buyer or seller. A non-empty reason
// is appended to the notes.
func (srv *preOrderService) CancelPreOrder(ctx context.Context, requesterID, preOrderID uuid.UUID, reason string) (*entity.PreOrder, error) {
	preOrder, err := srv.GetPreOrder(ctx, requesterID, preOrderID)
	if err != nil {
		return nil, err
	}

	notes := preOrder.Notes
	if reason = strings.TrimSpace(reason); reason != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += "Cancelled: " + reason
	}

	if err := srv.transition(ctx, preOrder, entity.PreOrderStatusCancelled, notes); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Pre-order cancelled", slog.Any("pre_order_id", preOrderID), slog.Any("requester_id", requesterID))

	return preOrder, nil
}

// PreOrderSummary counts and totals the user's pre-orders that are not cancelled.
func (srv *preOrderService) PreOrderSummary(ctx context.Context, userID uuid.UUID) (*entity.PreOrderSummary, error) {
	preOrders, err := srv.preOrderRepo.List(ctx, repository.PreOrderFilter{UserID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	summary := &entity.PreOrderSummary{Total: decimal.Zero}
	for _, preOrder := range preOrders {
		if preOrder.Status == entity.PreOrderStatusCancelled {
			continue
		}
		summary.Count++
		summary.Total = summary.Total.Add(preOrder.Total)
	}

	return summary, nil
}

func (srv *preOrderService) transition(ctx context.Context, preOrder *entity.PreOrder, next entity.PreOrderStatus, notes string) error {
	if !preOrder.Status.CanTransitionTo(next) {
		return errors.WithStack(domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("pre-order cannot move from %s to %s", preOrder.Status, next),
		))
	}

	if err := srv.preOrderRepo.UpdateStatus(ctx, preOrder.ID, preOrder.Status, next, notes); err != nil {
		return translateRepoError(err, "failed to update pre-order status")
	}
	preOrder.Status = next
	preOrder.Notes = notes

	return nil
}
