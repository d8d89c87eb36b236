package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationService_WithoutCredentialsLogsOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	_, ok := svc.(*logOnlyService)
	require.True(t, ok)

	report, err := svc.Push(context.Background(), []string{"a", "b"}, &service.PushMessage{Title: "title", Body: "body"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
}

func TestLogOnlyService_RejectsOversizedBatch(t *testing.T) {
	svc := &logOnlyService{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, err := svc.Push(context.Background(), make([]string, service.MaxPushBatch+1), &service.PushMessage{Title: "t"})
	assert.ErrorContains(t, err, "token count exceeds limit")
}

func TestBuildMulticast(t *testing.T) {
	tokens := []string{"a", "b"}

	t.Run("normal", func(t *testing.T) {
		multicast := buildMulticast(tokens, &service.PushMessage{Title: "Back in stock", Body: "Plum Jam", Data: map[string]string{"type": "stock"}})

		assert.Equal(t, tokens, multicast.Tokens)
		assert.Equal(t, "Back in stock", multicast.Notification.Title)
		assert.Equal(t, "stock", multicast.Data["type"])
		assert.Nil(t, multicast.Android)
		assert.Nil(t, multicast.APNS)
	})

	t.Run("urgent", func(t *testing.T) {
		multicast := buildMulticast(tokens, &service.PushMessage{Title: "New order", Urgent: true})

		require.NotNil(t, multicast.Android)
		assert.Equal(t, "high", multicast.Android.Priority)
		require.NotNil(t, multicast.APNS)
		assert.Equal(t, "10", multicast.APNS.Headers["apns-priority"])
	})
}
