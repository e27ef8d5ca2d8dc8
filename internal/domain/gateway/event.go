// Package gateway normalizes the payment gateway's loosely-specified webhook
// payloads into a canonical event record.
package gateway

import "errors"

// EventType is a canonical gateway event. Only these two types drive order
// state; everything else is acknowledged and dropped.
type EventType string

const (
	EventApproved EventType = "approved"
	EventDeclined EventType = "declined"
)

// Event is the canonical record extracted from a webhook payload.
type Event struct {
	Type          EventType
	OrderRef      string
	Status        string
	TransactionID string
	Amount        float64
	Currency      string
}

var (
	// ErrMalformedPayload covers empty bodies, non-JSON bodies and
	// type-mismatched fields. The gateway gets a 400 and may not retry.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrUnrecognizedEvent marks event types outside the accepted vocabulary.
	// Such webhooks are acknowledged so the gateway stops redelivering them.
	ErrUnrecognizedEvent = errors.New("unrecognized event type")
)
