package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows a user's inbox. Zero values do not filter.
type NotificationFilter struct {
	UnreadOnly bool
	Type       entity.NotificationType
	Limit      int
	Offset     int
}

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// CreateBatch inserts one row per notification in a single statement batch.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByUser returns the user's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter NotificationFilter) ([]*entity.Notification, error)

	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags one notification of the user as read. Unknown ids, or
	// ids of another user, return ErrNotificationNotFound.
	MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error

	// MarkAllRead flags every unread notification of the user and reports how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	// FindBySender returns the notifications a user has sent, newest first.
	FindBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}
