// Package messaging defines the envelope published to the analytics event
// stream.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is one published event. Key controls partitioning so one order's
// events stay ordered; EventID lets consumers deduplicate.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Type      string          `json:"type"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	EmittedAt time.Time       `json:"emitted_at"`
}

// NewEnvelope marshals the payload and stamps a fresh event ID.
func NewEnvelope(key, eventType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Key:       key,
		Payload:   data,
		EmittedAt: time.Now().UTC(),
	}, nil
}

// Publisher sends envelopes to the event stream.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}
