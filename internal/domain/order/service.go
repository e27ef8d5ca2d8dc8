package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/gateway"
	"challengecart/pkg/logger"
	"challengecart/pkg/metrics"
)

const priceFixedBy = "payment-webhook"

// Dispatcher fans a status-transitioned order out to the downstream
// integrations. It never returns an error: step failures are isolated and
// recorded inside the dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, o Order)
}

type Service struct {
	repo       Repo
	dispatcher Dispatcher
	anomalies  anomaly.Sink
	log        *logger.Logger
}

func NewService(repo Repo, dispatcher Dispatcher, anomalies anomaly.Sink, log *logger.Logger) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		anomalies:  anomalies,
		log:        log,
	}
}

// ProcessGatewayEvent applies a normalized gateway event to its order: heal
// any price divergence, apply the status transition, then dispatch the
// downstream side effects. Redelivered events are tolerated: the transition
// is a no-op when the status already matches and every dispatch step guards
// itself with a ledger marker.
func (s *Service) ProcessGatewayEvent(ctx context.Context, ev gateway.Event) error {
	o, err := s.repo.GetByOrderNumber(ctx, ev.OrderRef)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Not the gateway's fault; ack upstream but flag for follow-up.
			s.log.ErrorContext(ctx, "webhook for unknown order",
				"order_number", ev.OrderRef, "event_type", ev.Type)
			s.report(ctx, anomaly.New(anomaly.KindOrderNotFound, ev.OrderRef, map[string]any{
				"event_type":     string(ev.Type),
				"transaction_id": ev.TransactionID,
			}))
			return ErrNotFound
		}
		return fmt.Errorf("load order %s: %w", ev.OrderRef, err)
	}

	if c := ReconcilePrice(&o, time.Now(), priceFixedBy); c != nil {
		if err := s.repo.HealMetadataPrice(ctx, o.ID, *c); err != nil {
			// Divergence will be healed on the next delivery; keep going.
			s.log.ErrorContext(ctx, "price correction not persisted",
				"order_id", o.ID, "order_number", o.OrderNumber, "error", err)
		}
		metrics.PriceCorrectionsTotal.Inc()
		s.log.WarnContext(ctx, "healed diverged price copy",
			"order_id", o.ID,
			"order_number", o.OrderNumber,
			"previous", c.Previous,
			"corrected", c.Corrected)
		s.report(ctx, anomaly.New(anomaly.KindPriceDivergence, o.OrderNumber, map[string]any{
			"previous":  c.Previous,
			"corrected": c.Corrected,
		}))
	}

	target := MapGatewayStatus(ev.Status)
	if o.Status != target {
		if err := s.repo.UpdateStatus(ctx, o.ID, target, ev.TransactionID); err != nil {
			return fmt.Errorf("update order %s status: %w", o.OrderNumber, err)
		}
		o.Status = target
		o.TransactionID = ev.TransactionID
		s.log.InfoContext(ctx, "order status transitioned",
			"order_id", o.ID,
			"order_number", o.OrderNumber,
			"status", target,
			"transaction_id", ev.TransactionID)
	}

	s.dispatcher.Dispatch(ctx, o)
	return nil
}

// GetByOrderNumber loads a single order for the operator lookup route.
func (s *Service) GetByOrderNumber(ctx context.Context, orderNumber string) (Order, error) {
	o, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Order{}, err
		}
		return Order{}, fmt.Errorf("get order %s: %w", orderNumber, err)
	}
	return o, nil
}

func (s *Service) report(ctx context.Context, a anomaly.Anomaly) {
	if err := s.anomalies.Report(ctx, a); err != nil {
		s.log.ErrorContext(ctx, "anomaly not indexed", "kind", a.Kind, "error", err)
	}
}
