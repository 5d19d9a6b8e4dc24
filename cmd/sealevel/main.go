package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/sea-level-predictor/internal/config"
	"github.com/couchcryptid/sea-level-predictor/internal/observability"
	"github.com/couchcryptid/sea-level-predictor/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.NewFromConfig(cfg, logger, metrics)
	_, runErr := p.Run(ctx)

	// Export metrics for failed runs too, so alerting sees the error outcome.
	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, prometheus.DefaultGatherer); err != nil {
			logger.Error("metrics textfile write failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if runErr != nil {
		stop()
		os.Exit(1)
	}
}
