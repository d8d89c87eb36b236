package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPreOrderNotFound = errors.New("pre-order not found")
	// ErrStatusConflict is returned when a status update lost a race against another update.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// OrderFilter narrows order listings. Zero values do not filter.
type OrderFilter struct {
	UserID   *uuid.UUID
	SellerID *uuid.UUID // Orders holding at least one item of the seller.
	Status   entity.OrderStatus
	Limit    int
	Offset   int
}

// OrderRepository stores orders with their items.
type OrderRepository interface {
	// Create inserts the order and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns orders with their items, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus moves an order from one status to another, failing with
	// ErrStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}

// PreOrderFilter narrows pre-order listings. Zero values do not filter.
type PreOrderFilter struct {
	UserID   *uuid.UUID
	SellerID *uuid.UUID
	Status   entity.PreOrderStatus
}

// PreOrderRepository stores pre-orders.
type PreOrderRepository interface {
	Create(ctx context.Context, preOrder *entity.PreOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error)
	List(ctx context.Context, filter PreOrderFilter) ([]*entity.PreOrder, error)

	// UpdateStatus changes status and notes, guarded by the expected current status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PreOrderStatus, notes string) error
}
