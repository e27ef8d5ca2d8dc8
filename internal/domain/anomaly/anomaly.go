// Package anomaly carries non-fatal reconciliation findings to an operator
// sink. An anomaly never fails the pipeline that reports it.
package anomaly

import (
	"context"
	"time"
)

type Kind string

const (
	KindOrderNotFound     Kind = "order_not_found"
	KindPriceDivergence   Kind = "price_divergence"
	KindMappingUnresolved Kind = "mapping_unresolved"
)

type Anomaly struct {
	Kind        Kind           `json:"kind"`
	OrderNumber string         `json:"order_number,omitempty"`
	Detail      map[string]any `json:"detail,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func New(kind Kind, orderNumber string, detail map[string]any) Anomaly {
	return Anomaly{
		Kind:        kind,
		OrderNumber: orderNumber,
		Detail:      detail,
		CreatedAt:   time.Now().UTC(),
	}
}

// Sink indexes anomalies for manual reconciliation.
type Sink interface {
	Report(ctx context.Context, a Anomaly) error
}

// NopSink discards anomalies. Used when no sink is configured.
type NopSink struct{}

func (NopSink) Report(context.Context, Anomaly) error { return nil }
