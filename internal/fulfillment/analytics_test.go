package fulfillment

import (
	"context"
	"errors"
	"testing"

	"challengecart/internal/domain/order"
	"challengecart/internal/messaging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInsight struct {
	events []PurchaseEvent
	err    error
}

func (f *fakeInsight) Track(_ context.Context, ev PurchaseEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

type fakePublisher struct {
	published []messaging.Envelope
}

func (f *fakePublisher) Publish(_ context.Context, env messaging.Envelope) error {
	f.published = append(f.published, env)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func settledOrder(status order.Status) order.Order {
	return order.Order{
		ID:            uuid.New(),
		OrderNumber:   "#10042",
		Email:         "jo@example.com",
		PurchasePrice: 499,
		Currency:      "USD",
		ProgramID:     uuid.New(),
		PlatformSlug:  "mt5",
		AccountSize:   "100k",
		Status:        status,
	}
}

func TestInsightStep_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should report completed orders", func(t *testing.T) {
		tracker := &fakeInsight{}
		step := NewInsightStep(tracker)

		res := step.Run(ctx, settledOrder(order.StatusCompleted))

		assert.Equal(t, OutcomeSent, res.Status)
		require.Len(t, tracker.events, 1)
		assert.Equal(t, "completed", tracker.events[0].Outcome)
		assert.Equal(t, 499.0, tracker.events[0].Amount)
	})

	t.Run("should report failed orders with their outcome", func(t *testing.T) {
		tracker := &fakeInsight{}
		step := NewInsightStep(tracker)

		res := step.Run(ctx, settledOrder(order.StatusFailed))

		assert.Equal(t, OutcomeSent, res.Status)
		require.Len(t, tracker.events, 1)
		assert.Equal(t, "failed", tracker.events[0].Outcome)
	})

	t.Run("should skip unsettled orders", func(t *testing.T) {
		tracker := &fakeInsight{}
		step := NewInsightStep(tracker)

		res := step.Run(ctx, settledOrder(order.StatusPending))

		assert.Equal(t, OutcomeSkipped, res.Status)
		assert.Empty(t, tracker.events)
	})

	t.Run("should fail when the backend rejects the event", func(t *testing.T) {
		step := NewInsightStep(&fakeInsight{err: errors.New("503")})

		assert.Equal(t, OutcomeFailed, step.Run(ctx, settledOrder(order.StatusCompleted)).Status)
	})
}

func TestEventStreamStep_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should publish completed orders keyed by order number", func(t *testing.T) {
		publisher := &fakePublisher{}
		step := NewEventStreamStep(publisher)

		res := step.Run(ctx, settledOrder(order.StatusCompleted))

		assert.Equal(t, OutcomeSent, res.Status)
		require.Len(t, publisher.published, 1)
		assert.Equal(t, "#10042", publisher.published[0].Key)
		assert.Equal(t, "order.completed", publisher.published[0].Type)
	})

	t.Run("should skip failed orders", func(t *testing.T) {
		publisher := &fakePublisher{}
		step := NewEventStreamStep(publisher)

		res := step.Run(ctx, settledOrder(order.StatusFailed))

		assert.Equal(t, OutcomeSkipped, res.Status)
		assert.Empty(t, publisher.published)
	})
}
