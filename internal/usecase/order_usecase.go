package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput describes a checkout request. The delivery address is either
// given as text or taken from a saved address; a coupon may be named by id or code.
type CheckoutInput struct {
	DeliveryAddress string
	AddressID       *uuid.UUID
	CouponID        *uuid.UUID
	CouponCode      string
}

// CheckoutOutput is the order created by a checkout with its totals.
type CheckoutOutput struct {
	Order    *entity.Order
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ListOrdersInput narrows an order listing.
type ListOrdersInput struct {
	Status entity.OrderStatus
	Limit  int
	Offset int
}

// OrderUsecase manages checkout and the order lifecycle.
type OrderUsecase interface {
	// Checkout turns the user's cart into an order in a single transaction.
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error)

	// GetOrder returns the order to its buyer or to a seller owning one of its items.
	GetOrder(ctx context.Context, requesterID, orderID uuid.UUID) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, input *ListOrdersInput) ([]*entity.Order, error)
	ListSellerOrders(ctx context.Context, sellerID uuid.UUID, input *ListOrdersInput) ([]*entity.Order, error)
	RecentOrders(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order of the seller along the order state machine.
	UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// CancelOrder cancels the buyer's order and gives the stock back.
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// OrderPickupQR renders a PNG QR code for the order.
	OrderPickupQR(ctx context.Context, requesterID, orderID uuid.UUID) ([]byte, error)
}
