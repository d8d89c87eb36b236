package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_Broadcast(t *testing.T) {
	sellerID := uuid.New()

	t.Run("buyers", func(t *testing.T) {
		notificationUC := mockUC.NewMockNotificationUsecase(t)
		h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})

		notificationUC.EXPECT().
			Broadcast(mock.Anything, mock.MatchedBy(func(in *usecase.BroadcastInput) bool {
				return in.Audience == entity.AudienceBuyers && *in.SenderID == sellerID && in.Type == entity.NotificationPromotion
			})).
			Return(&usecase.BroadcastOutput{Recipients: 17}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/notifications/broadcast",
			body:   `{"audience":"buyers","type":"promotion","title":"Sale","message":"Half off jam"}`,
			userID: sellerID,
		})
		require.NoError(t, h.Broadcast(c))

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"recipients":17}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("explicit users need ids", func(t *testing.T) {
		h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: mockUC.NewMockNotificationUsecase(t)})

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/notifications/broadcast",
			body:   `{"audience":"users","type":"info","title":"Hi","message":"Hello"}`,
			userID: sellerID,
		})
		require.NoError(t, h.Broadcast(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "user_ids")
	})
}

func TestNotificationHandler_ListMine_UnreadFilter(t *testing.T) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := uuid.New()

	notificationUC.EXPECT().
		ListMine(mock.Anything, userID, &usecase.ListNotificationsInput{UnreadOnly: true, Type: entity.NotificationOrder}).
		Return([]*entity.Notification{}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/notifications?unread=true&type=order",
		userID: userID,
	})
	require.NoError(t, h.ListMine(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
