package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePreOrderInput describes a pre-order request.
type CreatePreOrderInput struct {
	ProductID         uuid.UUID
	Quantity          int
	EstimatedDelivery *time.Time
	Notes             string
}

// PreOrderUsecase manages pre-orders of products that are not yet available.
type PreOrderUsecase interface {
	CreatePreOrder(ctx context.Context, userID uuid.UUID, input *CreatePreOrderInput) (*entity.PreOrder, error)
	GetPreOrder(ctx context.Context, requesterID, preOrderID uuid.UUID) (*entity.PreOrder, error)
	ListMyPreOrders(ctx context.Context, userID uuid.UUID, status entity.PreOrderStatus) ([]*entity.PreOrder, error)
	ListSellerPreOrders(ctx context.Context, sellerID uuid.UUID, status entity.PreOrderStatus) ([]*entity.PreOrder, error)

	// UpdatePreOrderStatus moves a pre-order of the seller one step forward.
	UpdatePreOrderStatus(ctx context.Context, sellerID, preOrderID uuid.UUID, status entity.PreOrderStatus) (*entity.PreOrder, error)

	// CancelPreOrder cancels a pre-order on behalf of its buyer or seller and records the reason.
	CancelPreOrder(ctx context.Context, requesterID, preOrderID uuid.UUID, reason string) (*entity.PreOrder, error)

	// PreOrderSummary counts and totals the user's non-cancelled pre-orders.
	PreOrderSummary(ctx context.Context, userID uuid.UUID) (*entity.PreOrderSummary, error)
}
