package service

import (
	"context"
	"time"
)

// EventType names a domain event carried over Pub/Sub.
type EventType string

const (
	// EventNotificationPush asks the worker to push stored notifications to devices.
	EventNotificationPush EventType = "notification.push"
	// EventProductRestocked tells the worker a product got stock back.
	EventProductRestocked EventType = "product.restocked"
	// EventOrderPlaced tells the worker a checkout committed.
	EventOrderPlaced EventType = "order.placed"
)

// DomainEvent is the envelope published after a transaction commits.
// Exactly one payload matches Type.
type DomainEvent struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	ActorID    string    `json:"actor_id,omitempty"`   // User whose request produced the event
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	NotificationPush *NotificationPushPayload `json:"notification_push,omitempty"`
	ProductRestocked *ProductRestockedPayload `json:"product_restocked,omitempty"`
	OrderPlaced      *OrderPlacedPayload      `json:"order_placed,omitempty"`
}

// NotificationPushPayload lists the recipients of an already stored notification.
type NotificationPushPayload struct {
	UserIDs  []string          `json:"user_ids"`
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Priority string            `json:"priority,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

// ProductRestockedPayload describes a stock increase.
type ProductRestockedPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

// OrderPlacedPayload describes a committed checkout.
type OrderPlacedPayload struct {
	OrderID   string   `json:"order_id"`
	BuyerID   string   `json:"buyer_id"`
	SellerIDs []string `json:"seller_ids"`
	Total     string   `json:"total"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
