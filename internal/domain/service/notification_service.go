package service

import (
	"context"
)

// PushMessage is one notification fanned out to a set of device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
	// Urgent pushes wake the device (high priority on Android, priority 10 on APNs).
	Urgent bool
}

// PushReport is the outcome of sending one batch.
type PushReport struct {
	Sent   int
	Failed int
	// InvalidTokens were rejected as unregistered or malformed and should be dropped.
	InvalidTokens []string
}

// NotificationService delivers pushes to devices.
type NotificationService interface {
	// Push sends msg to at most MaxPushBatch tokens.
	Push(ctx context.Context, tokens []string, msg *PushMessage) (*PushReport, error)
}

// MaxPushBatch is the number of tokens FCM accepts in one multicast request.
const MaxPushBatch = 500
