package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// SendNotificationInput describes a notification to one user.
type SendNotificationInput struct {
	UserID   uuid.UUID
	SenderID *uuid.UUID
	Type     entity.NotificationType
	Priority entity.NotificationPriority
	Title    string
	Message  string
}

// BroadcastInput describes a notification fanned out to an audience.
type BroadcastInput struct {
	Audience entity.Audience
	UserIDs  []uuid.UUID // Used when Audience is AudienceUsers.
	SenderID *uuid.UUID
	Type     entity.NotificationType
	Priority entity.NotificationPriority
	Title    string
	Message  string
}

// BroadcastOutput reports the outcome of a broadcast.
type BroadcastOutput struct {
	Recipients int
}

// ListNotificationsInput narrows an inbox listing.
type ListNotificationsInput struct {
	UnreadOnly bool
	Type       entity.NotificationType
	Limit      int
	Offset     int
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// Send stores one notification and queues it for push delivery.
	Send(ctx context.Context, input *SendNotificationInput) (*entity.Notification, error)

	// Broadcast stores one notification per resolved recipient and queues a single push.
	Broadcast(ctx context.Context, input *BroadcastInput) (*BroadcastOutput, error)

	ListMine(ctx context.Context, userID uuid.UUID, input *ListNotificationsInput) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// SentHistory lists the notifications sent by a user with pagination.
	SentHistory(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}

// DispatchResult summarizes the push delivery of one event.
type DispatchResult struct {
	Notified      int // Notification rows created while handling the event.
	Sent          int
	Failed        int
	InvalidTokens int
}

// DispatchUsecase handles the domain events delivered to the worker.
type DispatchUsecase interface {
	HandleEvent(ctx context.Context, event *service.DomainEvent) (*DispatchResult, error)
}
