package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusShipped, OrderStatusConfirmed, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPreOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PreOrderStatusPending.CanTransitionTo(PreOrderStatusConfirmed))
	assert.True(t, PreOrderStatusConfirmed.CanTransitionTo(PreOrderStatusInProduction))
	assert.True(t, PreOrderStatusInProduction.CanTransitionTo(PreOrderStatusReady))
	assert.True(t, PreOrderStatusReady.CanTransitionTo(PreOrderStatusDelivered))
	assert.True(t, PreOrderStatusReady.CanTransitionTo(PreOrderStatusCancelled))
	assert.False(t, PreOrderStatusPending.CanTransitionTo(PreOrderStatusReady))
	assert.False(t, PreOrderStatusDelivered.CanTransitionTo(PreOrderStatusCancelled))
	assert.False(t, PreOrderStatusCancelled.CanTransitionTo(PreOrderStatusPending))
}

func TestOrder_SellerIDs(t *testing.T) {
	sellerA, sellerB := uuid.New(), uuid.New()
	order := &Order{Items: []*OrderItem{
		{SellerID: sellerA},
		{SellerID: sellerB},
		{SellerID: sellerA},
	}}

	assert.Equal(t, []uuid.UUID{sellerA, sellerB}, order.SellerIDs())
	assert.True(t, order.HasSeller(sellerB))
	assert.False(t, order.HasSeller(uuid.New()))
}

func TestCart_Totals(t *testing.T) {
	cart := &Cart{Items: []*CartItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("4.25")},
	}}

	assert.True(t, cart.Total().Equal(decimal.RequireFromString("25.25")))
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 3, cart.UnitCount())
	assert.False(t, cart.IsEmpty())

	empty := &Cart{}
	assert.True(t, empty.Total().IsZero())
	assert.True(t, empty.IsEmpty())
}
