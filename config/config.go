package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`

	// Outbound integrations. Each call carries its own timeout; a slow
	// integration must not stretch the webhook response.
	BackofficeWebhookURL string        `env:"BACKOFFICE_WEBHOOK_URL,required"`
	BackofficeTimeout    time.Duration `env:"BACKOFFICE_TIMEOUT" envDefault:"20s"`
	CommissionBaseURL    string        `env:"COMMISSION_BASE_URL,required"`
	CommissionTimeout    time.Duration `env:"COMMISSION_TIMEOUT" envDefault:"10s"`
	InsightURL           string        `env:"INSIGHT_URL,required"`
	InsightAPIKey        string        `env:"INSIGHT_API_KEY"`
	InsightTimeout       time.Duration `env:"INSIGHT_TIMEOUT" envDefault:"10s"`

	// DispatchStepTimeout bounds any single fulfillment step.
	DispatchStepTimeout time.Duration `env:"DISPATCH_STEP_TIMEOUT" envDefault:"25s"`

	// AttributionWindow is the rolling lifetime-attribution window for
	// commission eligibility, measured from the customer's most recent
	// previously-attributed order.
	AttributionWindow time.Duration `env:"ATTRIBUTION_WINDOW" envDefault:"8760h"`

	// Kafka analytics stream. Empty brokers disable the event-stream tracker.
	KafkaBrokers        []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaAnalyticsTopic string   `env:"KAFKA_ANALYTICS_TOPIC" envDefault:"analytics.orders"`

	// OpenSearch anomaly sink. Empty URLs disable indexing; anomalies are
	// still logged.
	OpensearchURLs           []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexAnomalies string   `env:"OPENSEARCH_INDEX_ANOMALIES" envDefault:"fulfillment-anomalies"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
