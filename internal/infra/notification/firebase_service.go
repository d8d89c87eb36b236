// Package notification sends pushes through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewNotificationService returns the Firebase sender when credentials are
// configured and a logging sender otherwise.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, push notifications are only logged")

		return &logOnlyService{logger: logger}, nil
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

func (s *firebaseService) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	if err := checkBatch(tokens); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &service.PushReport{}, nil
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &service.PushReport{Sent: response.SuccessCount, Failed: response.FailureCount}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			report.InvalidTokens = append(report.InvalidTokens, tokens[idx])

			continue
		}
		s.logger.DebugContext(ctx, "Push rejected", slog.Any("error", sendResponse.Error))
	}

	return report, nil
}

func buildMulticast(tokens []string, msg *service.PushMessage) *messaging.MulticastMessage {
	multicast := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	if msg.Urgent {
		multicast.Android = &messaging.AndroidConfig{Priority: "high"}
		multicast.APNS = &messaging.APNSConfig{Headers: map[string]string{"apns-priority": "10"}}
	}

	return multicast
}

func checkBatch(tokens []string) error {
	if len(tokens) > service.MaxPushBatch {
		return errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxPushBatch)
	}

	return nil
}

// logOnlyService stands in for FCM in environments without credentials.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) Push(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.PushReport, error) {
	if err := checkBatch(tokens); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "Push skipped (firebase disabled)",
		slog.String("title", msg.Title),
		slog.Int("tokens", len(tokens)),
		slog.Bool("urgent", msg.Urgent),
	)

	return &service.PushReport{Sent: len(tokens)}, nil
}
