package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PreOrderStatus is the lifecycle state of a pre-order.
type PreOrderStatus string

const (
	PreOrderStatusPending      PreOrderStatus = "pending"
	PreOrderStatusConfirmed    PreOrderStatus = "confirmed"
	PreOrderStatusInProduction PreOrderStatus = "in_production"
	PreOrderStatusReady        PreOrderStatus = "ready"
	PreOrderStatusDelivered    PreOrderStatus = "delivered"
	PreOrderStatusCancelled    PreOrderStatus = "cancelled"
)

var preOrderForward = map[PreOrderStatus]PreOrderStatus{
	PreOrderStatusPending:      PreOrderStatusConfirmed,
	PreOrderStatusConfirmed:    PreOrderStatusInProduction,
	PreOrderStatusInProduction: PreOrderStatusReady,
	PreOrderStatusReady:        PreOrderStatusDelivered,
}

// IsValid checks if the PreOrderStatus is a known value.
func (s PreOrderStatus) IsValid() bool {
	switch s {
	case PreOrderStatusPending, PreOrderStatusConfirmed, PreOrderStatusInProduction,
		PreOrderStatusReady, PreOrderStatusDelivered, PreOrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s PreOrderStatus) IsTerminal() bool {
	return s == PreOrderStatusDelivered || s == PreOrderStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s PreOrderStatus) CanTransitionTo(next PreOrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == PreOrderStatusCancelled {
		return true
	}

	return preOrderForward[s] == next
}

// PreOrder reserves units of a product that is not yet available.
type PreOrder struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	ProductID         uuid.UUID       `json:"product_id"`
	SellerID          uuid.UUID       `json:"seller_id"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Total             decimal.Decimal `json:"total"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	Status            PreOrderStatus  `json:"status"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PreOrderSummary aggregates the live pre-orders of a user.
type PreOrderSummary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}
