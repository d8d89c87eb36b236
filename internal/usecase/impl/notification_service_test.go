package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	now              time.Time
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().NotificationRepo().Return(notificationRepo).Maybe()

	now := time.Date(2025, 5, 4, 8, 30, 0, 0, time.UTC)
	svc := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})
	svc.(*notificationService).now = fixedClock(now)

	return notificationServiceFixtures{
		service:          svc,
		txManager:        txManager,
		factory:          factory,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		now:              now,
	}
}

func TestNotificationService_Send(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.RecipientKind == entity.RecipientIndividual && n.Priority == entity.PriorityNormal
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventNotificationPush &&
				len(event.NotificationPush.UserIDs) == 1 &&
				event.NotificationPush.UserIDs[0] == userID.String()
		})).
		Return(nil)

	notification, err := fx.service.Send(ctx, &usecase.SendNotificationInput{
		UserID:  userID,
		Type:    entity.NotificationInfo,
		Title:   " Welcome ",
		Message: "Thanks for joining",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", notification.Title)
}

func TestNotificationService_Send_Validation(t *testing.T) {
	cases := map[string]*usecase.SendNotificationInput{
		"unknown type":     {UserID: uuid.New(), Type: "gossip", Title: "t", Message: "m"},
		"unknown priority": {UserID: uuid.New(), Type: entity.NotificationInfo, Priority: "meh", Title: "t", Message: "m"},
		"missing title":    {UserID: uuid.New(), Type: entity.NotificationInfo, Message: "m"},
		"missing message":  {UserID: uuid.New(), Type: entity.NotificationInfo, Title: "t"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			_, err := fx.service.Send(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNotificationService_Send_UnknownRecipient(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Send(ctx, &usecase.SendNotificationInput{
		UserID:  userID,
		Type:    entity.NotificationInfo,
		Title:   "t",
		Message: "m",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNotificationService_Broadcast_Buyers(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	buyers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindActiveIDs(ctx, entity.RoleBuyer).Return(buyers, nil)
	fx.notificationRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(batch []*entity.Notification) bool {
			if len(batch) != len(buyers) {
				return false
			}
			for i, n := range batch {
				if n.UserID != buyers[i] || n.RecipientKind != entity.RecipientGroup {
					return false
				}
			}

			return true
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return len(event.NotificationPush.UserIDs) == len(buyers)
		})).
		Return(nil).
		Once()

	output, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Audience: entity.AudienceBuyers,
		Type:     entity.NotificationPromotion,
		Priority: entity.PriorityHigh,
		Title:    "Weekend sale",
		Message:  "Everything 10% off",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, output.Recipients)
}

func TestNotificationService_Broadcast_UsersFilteredToExisting(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	known := uuid.New()
	requested := []uuid.UUID{known, uuid.New()}

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FilterExistingIDs(ctx, requested).Return([]uuid.UUID{known}, nil)
	fx.notificationRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Audience: entity.AudienceUsers,
		UserIDs:  requested,
		Type:     entity.NotificationSystem,
		Title:    "Maintenance",
		Message:  "Back soon",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Recipients)
}

func TestNotificationService_Broadcast_NoRecipients(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindActiveIDs(ctx, entity.Role("")).Return(nil, nil)

	output, err := fx.service.Broadcast(ctx, &usecase.BroadcastInput{
		Audience: entity.AudienceAll,
		Type:     entity.NotificationSystem,
		Title:    "Hello",
		Message:  "Anyone there?",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Recipients)
	fx.notificationRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNotificationService_Broadcast_InvalidAudience(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.Broadcast(context.Background(), &usecase.BroadcastInput{Audience: "sellers"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Broadcast(context.Background(), &usecase.BroadcastInput{Audience: entity.AudienceUsers})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID, fx.now).Return(nil)
	require.NoError(t, fx.service.MarkRead(ctx, userID, notificationID))

	other := uuid.New()
	fx.notificationRepo.EXPECT().MarkRead(ctx, other, userID, fx.now).Return(repository.ErrNotificationNotFound)
	assert.ErrorIs(t, fx.service.MarkRead(ctx, userID, other), domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_ListMine(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindByUser(ctx, userID, repository.NotificationFilter{
			UnreadOnly: true,
			Type:       entity.NotificationOrder,
			Limit:      defaultPageLimit,
		}).
		Return([]*entity.Notification{{ID: uuid.New()}}, nil)

	notifications, err := fx.service.ListMine(ctx, userID, &usecase.ListNotificationsInput{
		UnreadOnly: true,
		Type:       entity.NotificationOrder,
	})
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID, fx.now).Return(int64(4), nil)

	updated, err := fx.service.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
}
