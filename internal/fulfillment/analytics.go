package fulfillment

import (
	"context"
	"fmt"

	"challengecart/internal/domain/order"
	"challengecart/internal/messaging"
)

// PurchaseEvent is the normalized order snapshot both marketing trackers
// receive.
type PurchaseEvent struct {
	OrderNumber  string  `json:"order_number"`
	Email        string  `json:"email"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Outcome      string  `json:"outcome"`
	ProgramID    string  `json:"program_id"`
	PlatformSlug string  `json:"platform_slug"`
	AccountSize  string  `json:"account_size"`
	DiscountCode string  `json:"discount_code,omitempty"`
}

func newPurchaseEvent(o order.Order) PurchaseEvent {
	return PurchaseEvent{
		OrderNumber:  o.OrderNumber,
		Email:        o.Email,
		Amount:       o.PurchasePrice,
		Currency:     o.Currency,
		Outcome:      string(o.Status),
		ProgramID:    o.ProgramID.String(),
		PlatformSlug: o.PlatformSlug,
		AccountSize:  o.AccountSize,
		DiscountCode: o.DiscountCode,
	}
}

// InsightTracker posts events to the marketing analytics backend.
type InsightTracker interface {
	Track(ctx context.Context, ev PurchaseEvent) error
}

// InsightStep emits the purchase event to the analytics tracker. It runs
// identically on completed and failed orders, parameterized by outcome.
type InsightStep struct {
	tracker InsightTracker
}

func NewInsightStep(tracker InsightTracker) *InsightStep {
	return &InsightStep{tracker: tracker}
}

func (s *InsightStep) Name() string { return "insight" }

func (s *InsightStep) Run(ctx context.Context, o order.Order) Result {
	if o.Status != order.StatusCompleted && o.Status != order.StatusFailed {
		return Skipped("no settled outcome to report")
	}

	if err := s.tracker.Track(ctx, newPurchaseEvent(o)); err != nil {
		return Failed(fmt.Errorf("track purchase event: %w", err))
	}
	return Sent(fmt.Sprintf("outcome %s reported", o.Status))
}

// EventStreamStep publishes completed orders to the analytics topic.
type EventStreamStep struct {
	publisher messaging.Publisher
}

func NewEventStreamStep(publisher messaging.Publisher) *EventStreamStep {
	return &EventStreamStep{publisher: publisher}
}

func (s *EventStreamStep) Name() string { return "event-stream" }

func (s *EventStreamStep) Run(ctx context.Context, o order.Order) Result {
	if o.Status != order.StatusCompleted {
		return Skipped("only completed orders are streamed")
	}

	env, err := messaging.NewEnvelope(o.OrderNumber, "order.completed", newPurchaseEvent(o))
	if err != nil {
		return Failed(fmt.Errorf("build envelope: %w", err))
	}
	if err := s.publisher.Publish(ctx, env); err != nil {
		return Failed(fmt.Errorf("publish order event: %w", err))
	}
	return Sent("order event published")
}
