package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxNotificationTitleLength = 200

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates the in-app notification usecase.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send stores a notification for one user and queues its push delivery.
func (srv *notificationService) Send(ctx context.Context, input *usecase.SendNotificationInput) (*entity.Notification, error) {
	if input == nil {
		return nil, validationError("notification is required")
	}

	notification := &entity.Notification{
		UserID:        input.UserID,
		SenderID:      input.SenderID,
		Type:          input.Type,
		Priority:      input.Priority,
		RecipientKind: entity.RecipientIndividual,
		Title:         strings.TrimSpace(input.Title),
		Message:       strings.TrimSpace(input.Message),
	}
	if err := validateNotification(notification); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.UserID); err != nil {
			return translateRepoError(err, "failed to find recipient")
		}

		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to store notification")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send notification")
	}

	srv.queuePush(ctx, []uuid.UUID{notification.UserID}, notification)

	return notification, nil
}

// Broadcast stores one group notification per recipient of the audience and
// queues a single push event for all of them.
func (srv *notificationService) Broadcast(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastOutput, error) {
	if input == nil || !input.Audience.IsValid() {
		return nil, validationError("audience must be one of all, buyers, users")
	}
	if input.Audience == entity.AudienceUsers && len(input.UserIDs) == 0 {
		return nil, validationError("user_ids is required for the users audience")
	}

	template := &entity.Notification{
		SenderID:      input.SenderID,
		Type:          input.Type,
		Priority:      input.Priority,
		RecipientKind: entity.RecipientGroup,
		Title:         strings.TrimSpace(input.Title),
		Message:       strings.TrimSpace(input.Message),
	}
	if err := validateNotification(template); err != nil {
		return nil, err
	}

	var recipients []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		recipients, err = resolveAudience(ctx, repoFactory.UserRepo(), input)
		if err != nil {
			return err
		}
		if len(recipients) == 0 {
			return nil
		}

		notifications := make([]*entity.Notification, 0, len(recipients))
		for _, userID := range recipients {
			notification := *template
			notification.UserID = userID
			notifications = append(notifications, &notification)
		}

		if err := repoFactory.NotificationRepo().CreateBatch(ctx, notifications); err != nil {
			return errors.Wrap(err, "failed to store notifications")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to broadcast notification")
	}
	srv.log(ctx).Info("Notification broadcast",
		slog.String("audience", string(input.Audience)),
		slog.Int("recipients", len(recipients)),
	)

	if len(recipients) > 0 {
		srv.queuePush(ctx, recipients, template)
	}

	return &usecase.BroadcastOutput{Recipients: len(recipients)}, nil
}

func (srv *notificationService) ListMine(ctx context.Context, userID uuid.UUID, input *usecase.ListNotificationsInput) ([]*entity.Notification, error) {
	if input == nil {
		input = &usecase.ListNotificationsInput{}
	}
	if input.Type != "" && !input.Type.IsValid() {
		return nil, validationError("unknown notification type " + string(input.Type))
	}

	limit, offset := normalizePage(input.Limit, input.Offset)

	notifications, err := srv.notificationRepo.FindByUser(ctx, userID, repository.NotificationFilter{
		UnreadOnly: input.UnreadOnly,
		Type:       input.Type,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, notificationID, userID, srv.now().UTC()); err != nil {
		return translateRepoError(err, "failed to mark notification read")
	}

	return nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := srv.notificationRepo.MarkAllRead(ctx, userID, srv.now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return updated, nil
}

func (srv *notificationService) SentHistory(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = normalizePage(limit, offset)

	notifications, err := srv.notificationRepo.FindBySender(ctx, senderID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sent notifications")
	}

	return notifications, nil
}

func (srv *notificationService) queuePush(ctx context.Context, userIDs []uuid.UUID, notification *entity.Notification) {
	event := newDomainEvent(ctx, service.EventNotificationPush, srv.now())
	event.NotificationPush = &service.NotificationPushPayload{
		UserIDs:  uuidStrings(userIDs),
		Type:     string(notification.Type),
		Title:    notification.Title,
		Message:  notification.Message,
		Priority: string(notification.Priority),
	}
	publishAfterCommit(ctx, srv.log(ctx), srv.publisher, event)
}

func resolveAudience(ctx context.Context, userRepo repository.UserRepository, input *usecase.BroadcastInput) ([]uuid.UUID, error) {
	var (
		ids []uuid.UUID
		err error
	)

	switch input.Audience {
	case entity.AudienceAll:
		ids, err = userRepo.FindActiveIDs(ctx, "")
	case entity.AudienceBuyers:
		ids, err = userRepo.FindActiveIDs(ctx, entity.RoleBuyer)
	case entity.AudienceUsers:
		ids, err = userRepo.FilterExistingIDs(ctx, input.UserIDs)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve audience")
	}

	return ids, nil
}

// validateNotification fills the default priority and checks the closed sets.
func validateNotification(notification *entity.Notification) error {
	if notification.Priority == "" {
		notification.Priority = entity.PriorityNormal
	}

	switch {
	case !notification.Type.IsValid():
		return validationError("unknown notification type " + string(notification.Type))
	case !notification.Priority.IsValid():
		return validationError("unknown notification priority " + string(notification.Priority))
	case notification.Title == "":
		return validationError("title is required")
	case len(notification.Title) > maxNotificationTitleLength:
		return validationError("title is too long")
	case notification.Message == "":
		return validationError("message is required")
	}

	return nil
}
