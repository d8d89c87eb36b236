package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPushHandler(t *testing.T, pubsub *config.PubSubConfig, env string) (*PushHandler, *mockUC.MockDispatchUsecase) {
	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	cfg := &config.Config{PubSub: pubsub}
	cfg.Env.Env = env

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: newDiscardLogger(), DispatchUC: dispatchUC}), dispatchUC
}

func pushBody(t *testing.T, event *service.DomainEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/shop/subscriptions/worker"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func newPushContext(body []byte, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Outcomes(t *testing.T) {
	event := &service.DomainEvent{ID: "evt-1", Type: service.EventOrderPlaced}

	tests := []struct {
		name       string
		result     *usecase.DispatchResult
		err        error
		wantStatus int
	}{
		{name: "processed", result: &usecase.DispatchResult{Notified: 1, Sent: 1}, wantStatus: http.StatusOK},
		{name: "infrastructure failure is retried", err: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
		{
			name:       "malformed event is acknowledged",
			err:        errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unknown event type")),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, &config.PubSubConfig{Provider: "local"}, constants.EnvDevelop)
			dispatchUC.EXPECT().
				HandleEvent(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool { return e.ID == "evt-1" })).
				Return(tt.result, tt.err)

			c, rec := newPushContext(pushBody(t, event, nil), "")
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_UndecodableData(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.PubSubConfig{Provider: "local"}, constants.EnvDevelop)

	c, rec := newPushContext([]byte(`{"message":{"data":"!!not base64!!","messageId":"m"}}`), "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadEnvelope(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.PubSubConfig{Provider: "local"}, constants.EnvDevelop)

	c, rec := newPushContext([]byte(`{"message":`), "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_PropagatesRequestID(t *testing.T) {
	h, dispatchUC := newTestPushHandler(t, &config.PubSubConfig{Provider: "local"}, constants.EnvDevelop)
	event := &service.DomainEvent{ID: "evt-2", RequestID: "from-event", Type: service.EventProductRestocked}

	dispatchUC.EXPECT().
		HandleEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-attributes"
		}), mock.Anything).
		Return(&usecase.DispatchResult{}, nil)

	c, rec := newPushContext(pushBody(t, event, map[string]string{"request_id": "from-attributes"}), "")
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil, constants.EnvDevelop)

	var msg PubSubMessage
	assert.Equal(t, "evt", h.extractRequestID(context.Background(), &msg, &service.DomainEvent{RequestID: "evt"}))

	ctx := deliverycontext.WithRequestID(context.Background(), "header")
	assert.Equal(t, "header", h.extractRequestID(ctx, &msg, &service.DomainEvent{}))

	generated := h.extractRequestID(context.Background(), &msg, &service.DomainEvent{})
	assert.Len(t, generated, 36)
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	pubsub := &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example.com/push"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, pubsub, "production")

		c, rec := newPushContext(pushBody(t, &service.DomainEvent{ID: "evt"}, nil), "")
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, pubsub, "production")
		h.validate = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		c, rec := newPushContext(pushBody(t, &service.DomainEvent{ID: "evt"}, nil), "Bearer jwt")
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token uses configured audience", func(t *testing.T) {
		h, dispatchUC := newTestPushHandler(t, pubsub, "production")
		var gotAudience string
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			gotAudience = audience

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		dispatchUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(&usecase.DispatchResult{}, nil)

		c, rec := newPushContext(pushBody(t, &service.DomainEvent{ID: "evt"}, nil), "Bearer jwt")
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, pubsub.PushAudience, gotAudience)
	})

	t.Run("skipped in develop", func(t *testing.T) {
		h, dispatchUC := newTestPushHandler(t, pubsub, constants.EnvDevelop)
		dispatchUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(&usecase.DispatchResult{}, nil)

		c, rec := newPushContext(pushBody(t, &service.DomainEvent{ID: "evt"}, nil), "")
		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
