package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:         "evt-1",
		RequestID:  "req-1",
		ActorID:    "user-1",
		Type:       service.EventProductRestocked,
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ProductRestocked: &service.ProductRestockedPayload{
			ProductID:   "prod-1",
			ProductName: "Sourdough",
			Stock:       12,
		},
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, string(service.EventProductRestocked), received.Message.Attributes["event_type"])
	assert.Equal(t, "user-1", received.Message.Attributes["actor_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
	require.NotNil(t, decoded.ProductRestocked)
	assert.Equal(t, 12, decoded.ProductRestocked.Stock)
}

func newFastLocalPublisher(endpoint string) *localHTTPPublisher {
	publisher := NewLocalHTTPPublisher(endpoint, newDiscardLogger()).(*localHTTPPublisher)
	publisher.retryDelay = time.Millisecond

	return publisher
}

func TestLocalHTTPPublisher_Publish_RedeliversOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, newFastLocalPublisher(server.URL).Publish(context.Background(), newTestEvent()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_Publish_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).Publish(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "non-success status: 503")
	assert.Equal(t, int32(localMaxAttempts), calls.Load())
}

func TestLocalHTTPPublisher_Publish_ClientErrorIsFinal(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).Publish(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "non-success status: 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestEncodeEvent(t *testing.T) {
	encoded, err := encodeEvent(newTestEvent())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"event_id":   "evt-1",
		"event_type": string(service.EventProductRestocked),
		"request_id": "req-1",
		"actor_id":   "user-1",
	}, encoded.attributes)

	_, err = encodeEvent(&service.DomainEvent{ID: "evt-2"})
	assert.ErrorContains(t, err, "event id and type are required")

	_, err = encodeEvent(nil)
	assert.Error(t, err)
}

func TestNewEventPublisher_NoProviderUsesNoop(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	_, ok := publisher.(*noopPublisher)
	assert.True(t, ok)
	assert.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
}

func TestNewEventPublisher_LocalRequiresEndpoint(t *testing.T) {
	_, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: newDiscardLogger(),
	})

	assert.ErrorContains(t, err, "local endpoint is required")
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: newDiscardLogger(),
	})

	assert.ErrorContains(t, err, "unknown pubsub provider")
}
