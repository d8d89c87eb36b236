package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	favoriteRepo     *mockRepo.MockFavoriteRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationSvc  *mockSvc.MockNotificationService
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return dispatchServiceFixtures{
		service: NewDispatchService(DispatchServiceParams{
			NotificationRepo: notificationRepo,
			FavoriteRepo:     favoriteRepo,
			DeviceRepo:       deviceRepo,
			NotificationSvc:  notificationSvc,
			Logger:           newDiscardLogger(),
		}),
		notificationRepo: notificationRepo,
		favoriteRepo:     favoriteRepo,
		deviceRepo:       deviceRepo,
		notificationSvc:  notificationSvc,
	}
}

func TestDispatchService_NotificationPush_BatchesOf500(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	devices := make([]*entity.UserDevice, 0, 1200)
	for i := range 1200 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).Return(devices, nil)
	isSale := mock.MatchedBy(func(msg *service.PushMessage) bool {
		return msg.Title == "Sale" && msg.Body == "Now on" && msg.Data["type"] == string(entity.NotificationPromotion) && !msg.Urgent
	})
	fx.notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), isSale).
		Return(&service.PushReport{Sent: 500}, nil).
		Twice()
	fx.notificationSvc.EXPECT().
		Push(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 200 }), isSale).
		Return(&service.PushReport{Sent: 198, Failed: 2, InvalidTokens: []string{"token-1100", "token-1101"}}, nil).
		Once()
	fx.deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"token-1100", "token-1101"}).Return(2, nil)

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type: service.EventNotificationPush,
		NotificationPush: &service.NotificationPushPayload{
			UserIDs: []string{userID.String()},
			Type:    string(entity.NotificationPromotion),
			Title:   "Sale",
			Message: "Now on",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1198, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 2, result.InvalidTokens)
}

func TestDispatchService_NotificationPush_BatchErrorCountsAsFailed(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token-xyz"}}, nil)
	fx.notificationSvc.EXPECT().
		Push(ctx, []string{"token-xyz"}, mock.Anything).
		Return(nil, errors.New("firebase unavailable"))

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type:             service.EventNotificationPush,
		NotificationPush: &service.NotificationPushPayload{UserIDs: []string{userID.String()}, Title: "t", Message: "m"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_ProductRestocked_NotifiesWatchers(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	productID := uuid.New()
	watchers := []uuid.UUID{uuid.New(), uuid.New()}

	fx.favoriteRepo.EXPECT().FindStockWatchers(ctx, productID).Return(watchers, nil)
	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(batch []*entity.Notification) bool {
			return len(batch) == 2 && batch[0].Type == entity.NotificationStock
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, watchers).Return(nil, nil)

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type: service.EventProductRestocked,
		ProductRestocked: &service.ProductRestockedPayload{
			ProductID:   productID.String(),
			ProductName: "Plum Jam",
			Stock:       6,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Notified)
	assert.Equal(t, 0, result.Sent)
}

func TestDispatchService_ProductRestocked_NoWatchers(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.favoriteRepo.EXPECT().FindStockWatchers(ctx, productID).Return(nil, nil)

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type:             service.EventProductRestocked,
		ProductRestocked: &service.ProductRestockedPayload{ProductID: productID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Notified)
	fx.notificationRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestDispatchService_OrderPlaced_NotifiesSellers(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: sellerID, FCMToken: "seller-token"}

	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(batch []*entity.Notification) bool {
			return len(batch) == 1 && batch[0].UserID == sellerID && batch[0].Type == entity.NotificationOrder
		})).
		Return(nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUsers(ctx, []uuid.UUID{sellerID}).Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().
		Push(ctx, []string{"seller-token"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "New order" && msg.Urgent
		})).
		Return(&service.PushReport{Sent: 1}, nil)

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type: service.EventOrderPlaced,
		OrderPlaced: &service.OrderPlacedPayload{
			OrderID:   uuid.NewString(),
			BuyerID:   uuid.NewString(),
			SellerIDs: []string{sellerID.String()},
			Total:     "42.00",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Notified)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_StoreFailureIsRetryable(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.favoriteRepo.EXPECT().FindStockWatchers(ctx, productID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.notificationRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type:             service.EventProductRestocked,
		ProductRestocked: &service.ProductRestockedPayload{ProductID: productID.String()},
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestDispatchService_MalformedEvents(t *testing.T) {
	cases := map[string]*service.DomainEvent{
		"unknown type":    {Type: "order.exploded"},
		"missing payload": {Type: service.EventOrderPlaced},
		"bad user id": {
			Type:             service.EventNotificationPush,
			NotificationPush: &service.NotificationPushPayload{UserIDs: []string{"not-a-uuid"}},
		},
	}
	for name, event := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestDispatchService(t)

			_, err := fx.service.HandleEvent(context.Background(), event)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.False(t, domainerrors.IsRetryable(err))
		})
	}
}

func TestDispatchService_NotificationPush_UrgentAndSharedTokens(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	// Two accounts signed in on the same phone share one token.
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{first, second}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: first, FCMToken: "shared"},
			{ID: uuid.New(), UserID: second, FCMToken: "shared"},
		}, nil)
	fx.notificationSvc.EXPECT().
		Push(ctx, []string{"shared"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Urgent && msg.Data["type"] == string(entity.NotificationSystem) && msg.Data["ticket"] == "42"
		})).
		Return(&service.PushReport{Sent: 1}, nil)

	result, err := fx.service.HandleEvent(ctx, &service.DomainEvent{
		Type: service.EventNotificationPush,
		NotificationPush: &service.NotificationPushPayload{
			UserIDs:  []string{first.String(), second.String()},
			Type:     string(entity.NotificationSystem),
			Title:    "Maintenance",
			Message:  "Checkout is paused",
			Priority: string(entity.PriorityUrgent),
			Data:     map[string]string{"ticket": "42"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}
