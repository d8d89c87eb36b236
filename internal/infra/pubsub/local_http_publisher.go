package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/marketplace-events"
	localMaxAttempts    = 3
	localRetryBaseDelay = 200 * time.Millisecond
)

// localHTTPPublisher pushes events straight to the worker's /push endpoint in
// the Pub/Sub push format. A 5xx answer is redelivered like Pub/Sub would.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	retryDelay time.Duration
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:     logger,
		retryDelay: localRetryBaseDelay,
	}
}

// Publish posts the event to the worker, retrying while it answers 5xx.
func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	pushMsg.Message.MessageID = event.ID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = encoded.attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		status, err := p.post(ctx, event.RequestID, body)
		switch {
		case err != nil:
			lastErr = err
		case status >= 200 && status < 300:
			p.logger.Debug("[LocalPubSub] Event delivered",
				slog.String("event_id", event.ID),
				slog.String("event_type", string(event.Type)),
				slog.Int("attempt", attempt),
			)

			return nil
		case status >= 500:
			lastErr = errors.Errorf("worker returned non-success status: %d", status)
		default:
			return errors.Errorf("worker returned non-success status: %d", status)
		}

		if attempt == localMaxAttempts {
			break
		}

		p.logger.Warn("[LocalPubSub] Redelivering event",
			slog.String("event_id", event.ID),
			slog.Int("attempt", attempt),
			slog.Any("error", lastErr),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryDelay * time.Duration(attempt)):
		}
	}

	return lastErr
}

func (p *localHTTPPublisher) post(ctx context.Context, requestID string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
