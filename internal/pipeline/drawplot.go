package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/sea-level-predictor/internal/adapter/csvfile"
	"github.com/couchcryptid/sea-level-predictor/internal/adapter/pngfile"
	"github.com/couchcryptid/sea-level-predictor/internal/config"
	"github.com/couchcryptid/sea-level-predictor/internal/figure"
	"github.com/couchcryptid/sea-level-predictor/internal/observability"
)

// NewFromConfig wires the CSV reader and PNG writer described by cfg.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return New(
		csvfile.NewReader(cfg.DataPath, logger),
		pngfile.NewWriter(logger),
		logger,
		metrics,
		Options{
			OutputPath:     cfg.OutputPath,
			Horizon:        cfg.Horizon,
			RecentFromYear: cfg.RecentFromYear,
			Width:          cfg.ChartWidth,
			Height:         cfg.ChartHeight,
			ExploratoryDir: cfg.ExploratoryDir,
		},
	)
}

// DrawPlot reads epa-sea-level.csv, fits both trends, writes
// sea_level_plot.png and returns the rendered figure. Paths and years can be
// overridden through the environment; see config.Load.
func DrawPlot() (*figure.Figure, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	return NewFromConfig(cfg, logger, observability.NewMetrics(nil)).Run(context.Background())
}
