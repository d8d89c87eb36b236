package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dispatchService struct {
	notificationRepo repository.NotificationRepository
	favoriteRepo     repository.FavoriteRepository
	deviceRepo       repository.DeviceRepository
	notificationSvc  service.NotificationService
	logger           *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	FavoriteRepo     repository.FavoriteRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService
	Logger           *slog.Logger
}

// NewDispatchService creates the worker side of event handling.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		notificationRepo: params.NotificationRepo,
		favoriteRepo:     params.FavoriteRepo,
		deviceRepo:       params.DeviceRepo,
		notificationSvc:  params.NotificationSvc,
		logger:           params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent routes one domain event. Malformed events come back as validation
// errors so the caller can acknowledge them instead of retrying.
func (srv *dispatchService) HandleEvent(ctx context.Context, event *service.DomainEvent) (*usecase.DispatchResult, error) {
	if event == nil {
		return nil, validationError("event is required")
	}

	switch event.Type {
	case service.EventNotificationPush:
		if event.NotificationPush == nil {
			return nil, validationError("notification.push event without payload")
		}

		return srv.handleNotificationPush(ctx, event.NotificationPush)
	case service.EventProductRestocked:
		if event.ProductRestocked == nil {
			return nil, validationError("product.restocked event without payload")
		}

		return srv.handleProductRestocked(ctx, event.ProductRestocked)
	case service.EventOrderPlaced:
		if event.OrderPlaced == nil {
			return nil, validationError("order.placed event without payload")
		}

		return srv.handleOrderPlaced(ctx, event.OrderPlaced)
	default:
		return nil, validationError("unknown event type " + string(event.Type))
	}
}

func (srv *dispatchService) handleNotificationPush(ctx context.Context, payload *service.NotificationPushPayload) (*usecase.DispatchResult, error) {
	userIDs, err := parseUUIDs(payload.UserIDs)
	if err != nil {
		return nil, err
	}

	data := map[string]string{"type": payload.Type}
	maps.Copy(data, payload.Data)

	return srv.push(ctx, userIDs, &service.PushMessage{
		Title:  payload.Title,
		Body:   payload.Message,
		Data:   data,
		Urgent: entity.NotificationPriority(payload.Priority).WakesDevice(),
	})
}

// handleProductRestocked notifies every user watching the product for stock.
func (srv *dispatchService) handleProductRestocked(ctx context.Context, payload *service.ProductRestockedPayload) (*usecase.DispatchResult, error) {
	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return nil, validationError("invalid product id " + payload.ProductID)
	}

	watchers, err := srv.favoriteRepo.FindStockWatchers(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock watchers")
	}
	if len(watchers) == 0 {
		return &usecase.DispatchResult{}, nil
	}

	title := "Back in stock"
	message := fmt.Sprintf("%s is available again (%d in stock)", payload.ProductName, payload.Stock)

	if err := srv.store(ctx, watchers, entity.NotificationStock, entity.PriorityNormal, title, message); err != nil {
		return nil, err
	}

	result, err := srv.push(ctx, watchers, &service.PushMessage{
		Title: title,
		Body:  message,
		Data: map[string]string{
			"type":       string(entity.NotificationStock),
			"product_id": payload.ProductID,
		},
	})
	if err != nil {
		return nil, err
	}
	result.Notified = len(watchers)

	return result, nil
}

// handleOrderPlaced tells each seller with items in the order about it.
func (srv *dispatchService) handleOrderPlaced(ctx context.Context, payload *service.OrderPlacedPayload) (*usecase.DispatchResult, error) {
	sellerIDs, err := parseUUIDs(payload.SellerIDs)
	if err != nil {
		return nil, err
	}
	if len(sellerIDs) == 0 {
		return &usecase.DispatchResult{}, nil
	}

	title := "New order"
	message := fmt.Sprintf("Order %s was placed (total %s)", payload.OrderID, payload.Total)

	if err := srv.store(ctx, sellerIDs, entity.NotificationOrder, entity.PriorityHigh, title, message); err != nil {
		return nil, err
	}

	result, err := srv.push(ctx, sellerIDs, &service.PushMessage{
		Title: title,
		Body:  message,
		Data: map[string]string{
			"type":     string(entity.NotificationOrder),
			"order_id": payload.OrderID,
		},
		Urgent: true,
	})
	if err != nil {
		return nil, err
	}
	result.Notified = len(sellerIDs)

	return result, nil
}

func (srv *dispatchService) store(
	ctx context.Context,
	userIDs []uuid.UUID,
	notificationType entity.NotificationType,
	priority entity.NotificationPriority,
	title, message string,
) error {
	notifications := make([]*entity.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, &entity.Notification{
			UserID:        userID,
			Type:          notificationType,
			Priority:      priority,
			RecipientKind: entity.RecipientIndividual,
			Title:         title,
			Message:       message,
		})
	}

	if err := srv.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return errors.Wrap(err, "failed to store notifications")
	}

	return nil
}

// push sends msg to every active device of the users. A failing batch is
// counted and skipped; tokens FCM reports as invalid are deactivated.
func (srv *dispatchService) push(ctx context.Context, userIDs []uuid.UUID, msg *service.PushMessage) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{}
	if len(userIDs) == 0 {
		return result, nil
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := uniqueTokens(devices)

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, service.MaxPushBatch) {
		report, err := srv.notificationSvc.Push(ctx, batch, msg)
		if err != nil {
			srv.log(ctx).Warn("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			result.Failed += len(batch)

			continue
		}

		result.Sent += report.Sent
		result.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to deactivate devices with invalid tokens", slog.Int("tokens", len(invalidTokens)), slog.Any("error", err))
		}
		result.InvalidTokens = int(deactivated)
	}

	srv.log(ctx).Info("Push delivered",
		slog.Int("devices", len(tokens)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
		slog.Bool("urgent", msg.Urgent),
	)

	return result, nil
}

// uniqueTokens drops repeated tokens, keeping the first occurrence.
func uniqueTokens(devices []*entity.UserDevice) []string {
	seen := make(map[string]struct{}, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if _, ok := seen[device.FCMToken]; ok {
			continue
		}
		seen[device.FCMToken] = struct{}{}
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, validationError("invalid user id " + value)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
