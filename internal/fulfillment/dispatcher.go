package fulfillment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"challengecart/internal/domain/order"
	"challengecart/pkg/logger"
	"challengecart/pkg/metrics"
)

// Dispatcher runs the fixed, ordered step list for an order. Steps execute
// sequentially: one slow or failing integration never races the others and
// failure attribution in the logs stays unambiguous.
type Dispatcher struct {
	steps       []Step
	ledger      Ledger
	log         *logger.Logger
	stepTimeout time.Duration
}

func NewDispatcher(ledger Ledger, log *logger.Logger, stepTimeout time.Duration, steps ...Step) *Dispatcher {
	return &Dispatcher{
		steps:       steps,
		ledger:      ledger,
		log:         log,
		stepTimeout: stepTimeout,
	}
}

// Dispatch executes every step for the order. A step that already has a
// "sent" ledger marker short-circuits; everything else runs under its own
// timeout and records its outcome. All outcomes are collected into a single
// structured completion log.
func (d *Dispatcher) Dispatch(ctx context.Context, o order.Order) {
	seen, err := d.ledger.Outcomes(ctx, o.ID)
	if err != nil {
		// Proceed without markers: steps re-run at worst, and each is
		// idempotent on the receiving side or cheap to repeat.
		d.log.ErrorContext(ctx, "outcome ledger unavailable",
			"order_id", o.ID, "error", err)
		seen = nil
	}

	attrs := make([]any, 0, len(d.steps))
	for _, step := range d.steps {
		name := step.Name()

		if prev, ok := seen[name]; ok && prev.Status == OutcomeSent {
			attrs = append(attrs, slog.String(name, "already sent"))
			metrics.DispatchStepsTotal.WithLabelValues(name, "deduplicated").Inc()
			continue
		}

		res := d.runStep(ctx, step, o)

		out := Outcome{
			OrderID:   o.ID,
			Step:      name,
			Status:    res.Status,
			Detail:    res.Detail,
			CreatedAt: time.Now().UTC(),
		}
		if err := d.ledger.Record(ctx, out); err != nil {
			d.log.ErrorContext(ctx, "dispatch outcome not recorded",
				"order_id", o.ID, "step", name, "error", err)
		}

		if res.Status == OutcomeFailed {
			d.log.ErrorContext(ctx, "dispatch step failed",
				"order_id", o.ID,
				"order_number", o.OrderNumber,
				"step", name,
				"order_status", o.Status,
				"purchase_price", o.PurchasePrice,
				"total_price", o.TotalPrice,
				"detail", res.Detail)
		}

		metrics.DispatchStepsTotal.WithLabelValues(name, string(res.Status)).Inc()
		attrs = append(attrs, slog.String(name, fmt.Sprintf("%s: %s", res.Status, res.Detail)))
	}

	d.log.InfoContext(ctx, "fulfillment dispatch complete",
		append([]any{
			"order_id", o.ID,
			"order_number", o.OrderNumber,
			"order_status", o.Status,
		}, attrs...)...)
}

// runStep bounds the step with its own timeout and converts a panic into a
// failed result so the loop always reaches the next step.
func (d *Dispatcher) runStep(ctx context.Context, step Step, o order.Order) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Status: OutcomeFailed, Detail: fmt.Sprintf("panic: %v", r)}
		}
	}()

	stepCtx, cancel := context.WithTimeout(ctx, d.stepTimeout)
	defer cancel()

	return step.Run(stepCtx, o)
}
