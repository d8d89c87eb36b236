package pubsub

import (
	"encoding/json"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute names set on every published message. Subscriptions may filter on event_type.
const (
	attrEventID   = "event_id"
	attrEventType = "event_type"
	attrRequestID = "request_id"
	attrActorID   = "actor_id"
)

// encodedEvent is a domain event ready to hand to a transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
}

// encodeEvent serializes event and derives its message attributes.
func encodeEvent(event *service.DomainEvent) (*encodedEvent, error) {
	if event == nil || event.ID == "" || event.Type == "" {
		return nil, errors.New("event id and type are required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal event %s", event.ID)
	}

	attributes := map[string]string{
		attrEventID:   event.ID,
		attrEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}
	if event.ActorID != "" {
		attributes[attrActorID] = event.ActorID
	}

	return &encodedEvent{data: data, attributes: attributes}, nil
}
