// Package app wires the service together and runs it.
package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"challengecart/config"
	"challengecart/internal/controller/rest"
	"challengecart/internal/controller/rest/handlers"
	"challengecart/internal/domain/anomaly"
	"challengecart/internal/domain/coupon"
	"challengecart/internal/domain/mapping"
	"challengecart/internal/domain/order"
	"challengecart/internal/external/backoffice"
	"challengecart/internal/external/commission"
	"challengecart/internal/external/insight"
	kafka_publisher "challengecart/internal/external/kafka"
	"challengecart/internal/external/opensearch"
	"challengecart/internal/fulfillment"
	coupon_repo "challengecart/internal/repo/coupon"
	ledger_repo "challengecart/internal/repo/ledger"
	mapping_repo "challengecart/internal/repo/mapping"
	order_repo "challengecart/internal/repo/order"
	"challengecart/pkg/health"
	"challengecart/pkg/logger"
	"challengecart/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) error {
	l := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pg.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	// Repositories
	orderRepo := order_repo.NewPgOrderRepo(pg)
	outcomeLedger := ledger_repo.NewPgOutcomeLedger(pg)
	mappingRepo := mapping_repo.NewPgMappingRepo(pg)
	couponRepo := coupon_repo.NewPgCouponRepo(pg)

	// Anomaly sink. Indexing is best-effort: without OpenSearch anomalies
	// still reach the logs.
	var anomalySink anomaly.Sink = anomaly.NopSink{}
	if len(cfg.OpensearchURLs) > 0 {
		sink, err := opensearch.NewAnomalySink(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexAnomalies)
		if err != nil {
			l.ErrorContext(ctx, "anomaly sink unavailable, continuing without indexing", "error", err)
		} else {
			anomalySink = sink
		}
	}

	// Outbound integrations
	backofficeClient := backoffice.New(cfg.BackofficeWebhookURL, &http.Client{Timeout: cfg.BackofficeTimeout})
	commissionClient := commission.New(cfg.CommissionBaseURL, &http.Client{Timeout: cfg.CommissionTimeout})
	insightClient := insight.New(cfg.InsightURL, cfg.InsightAPIKey, &http.Client{Timeout: cfg.InsightTimeout})

	resolver := mapping.NewResolver(mappingRepo, anomalySink, l)

	// Fulfillment steps, in dispatch order.
	steps := []fulfillment.Step{
		fulfillment.NewCommissionStep(commissionClient, orderRepo, cfg.AttributionWindow),
		fulfillment.NewInsightStep(insightClient),
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka_publisher.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaAnalyticsTopic)
		defer publisher.Close()
		steps = append(steps, fulfillment.NewEventStreamStep(publisher))
	}
	steps = append(steps, fulfillment.NewBackofficeStep(backofficeClient, resolver, mappingRepo, l))

	dispatcher := fulfillment.NewDispatcher(outcomeLedger, l, cfg.DispatchStepTimeout, steps...)

	// Services
	orderService := order.NewService(orderRepo, dispatcher, anomalySink, l)
	couponService := coupon.NewService(couponRepo, couponRepo, orderRepo, l)

	// Readiness checks
	checkers := []health.Checker{health.NewPostgresChecker(pg.Pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(checkers...)

	engine := NewGinEngine(l)
	router := rest.NewRouter(
		handlers.NewWebhookHandler(orderService, l),
		handlers.NewCouponHandler(couponService),
		handlers.NewOrderHandler(orderService, outcomeLedger),
		healthRegistry,
	)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		l.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
