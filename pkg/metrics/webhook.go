package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Inbound payment webhook events by type and result",
		},
		[]string{"event_type", "result"},
	)

	DispatchStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "fulfillment",
			Name:      "dispatch_steps_total",
			Help:      "Fulfillment dispatch step outcomes",
		},
		[]string{"step", "outcome"},
	)

	PriceCorrectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "orders",
			Name:      "price_corrections_total",
			Help:      "Orders whose metadata price copy was healed from the root value",
		},
	)
)

func init() {
	Registry.MustRegister(WebhookEventsTotal, DispatchStepsTotal, PriceCorrectionsTotal)
}
