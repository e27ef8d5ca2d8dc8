// Package fulfillment fans a status-transitioned order out to the downstream
// integrations: commission tracking, marketing analytics and back-office
// order creation. Steps are independent; one failing never blocks, corrupts
// or rolls back the others.
package fulfillment

import (
	"context"
	"time"

	"challengecart/internal/domain/order"

	"github.com/google/uuid"
)

type OutcomeStatus string

const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// Outcome is one ledger entry: what a step did for an order. The ledger is
// append-only and keyed by (order, step); a "sent" entry is the durable
// idempotency marker against webhook redelivery.
type Outcome struct {
	OrderID   uuid.UUID
	Step      string
	Status    OutcomeStatus
	Detail    string
	CreatedAt time.Time
}

// Ledger is the integration-outcome store.
type Ledger interface {
	// Outcomes returns the latest outcome per step for the order.
	Outcomes(ctx context.Context, orderID uuid.UUID) (map[string]Outcome, error)

	// Record appends an outcome.
	Record(ctx context.Context, o Outcome) error
}

// Result is what a step reports back to the dispatcher. Steps never return
// plain errors: a failure is a result like any other and the loop continues.
type Result struct {
	Status OutcomeStatus
	Detail string
}

func Sent(detail string) Result {
	return Result{Status: OutcomeSent, Detail: detail}
}

func Skipped(reason string) Result {
	return Result{Status: OutcomeSkipped, Detail: reason}
}

func Failed(err error) Result {
	return Result{Status: OutcomeFailed, Detail: err.Error()}
}

// Step is one downstream integration.
type Step interface {
	Name() string
	Run(ctx context.Context, o order.Order) Result
}
