package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of notification categories.
type NotificationType string

const (
	NotificationCart       NotificationType = "cart"
	NotificationDiscount   NotificationType = "discount"
	NotificationEvent      NotificationType = "event"
	NotificationInfo       NotificationType = "info"
	NotificationNewProduct NotificationType = "new_product"
	NotificationOrder      NotificationType = "order"
	NotificationProduct    NotificationType = "product"
	NotificationPromotion  NotificationType = "promotion"
	NotificationSystem     NotificationType = "system"
	NotificationStock      NotificationType = "stock"
	NotificationUrgent     NotificationType = "urgent"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationCart, NotificationDiscount, NotificationEvent, NotificationInfo,
		NotificationNewProduct, NotificationOrder, NotificationProduct, NotificationPromotion,
		NotificationSystem, NotificationStock, NotificationUrgent:
		return true
	default:
		return false
	}
}

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// IsValid checks if the NotificationPriority is a known value.
func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// WakesDevice reports whether pushes of this priority are delivered as urgent.
func (p NotificationPriority) WakesDevice() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

// RecipientKind tells whether a notification was addressed to one user or fanned out.
type RecipientKind string

const (
	RecipientIndividual RecipientKind = "individual"
	RecipientGroup      RecipientKind = "group"
)

// Audience selects the recipients of a broadcast.
type Audience string

const (
	AudienceAll    Audience = "all"
	AudienceBuyers Audience = "buyers"
	AudienceUsers  Audience = "users" // An explicit list of user ids.
)

// IsValid checks if the Audience is a known value.
func (a Audience) IsValid() bool {
	return a == AudienceAll || a == AudienceBuyers || a == AudienceUsers
}

// Notification is a message addressed to one user.
type Notification struct {
	ID            uuid.UUID            `json:"id"`
	UserID        uuid.UUID            `json:"user_id"`
	SenderID      *uuid.UUID           `json:"sender_id,omitempty"`
	Type          NotificationType     `json:"type"`
	Priority      NotificationPriority `json:"priority"`
	RecipientKind RecipientKind        `json:"recipient_kind"`
	Title         string               `json:"title"`
	Message       string               `json:"message"`
	Read          bool                 `json:"read"`
	ReadAt        *time.Time           `json:"read_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// MarkRead flags the notification as read at the given instant.
func (n *Notification) MarkRead(at time.Time) {
	n.Read = true
	n.ReadAt = &at
}
