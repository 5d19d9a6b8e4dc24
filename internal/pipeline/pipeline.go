package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
	"github.com/couchcryptid/sea-level-predictor/internal/figure"
	"github.com/couchcryptid/sea-level-predictor/internal/observability"
)

// Extractor reads the full observation record from the source.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.Observation, error)
}

// Loader writes a rendered figure to path.
type Loader interface {
	Save(ctx context.Context, path string, fig *figure.Figure) error
}

// Options controls the fitted ranges and the chart outputs.
type Options struct {
	OutputPath     string
	Horizon        int // exclusive
	RecentFromYear int
	Width          int
	Height         int
	ExploratoryDir string // empty disables exploratory charts
}

// Pipeline orchestrates the load-fit-render-save run.
type Pipeline struct {
	extractor Extractor
	loader    Loader
	logger    *slog.Logger
	metrics   *observability.Metrics
	opts      Options
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, l Loader, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		extractor: e,
		loader:    l,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// Run loads the observations, fits the all-years and recent trends, extends
// both to the horizon, renders the chart and saves it. The rendered figure is
// returned for inspection. A failed run leaves whatever file was at the output
// path before.
func (p *Pipeline) Run(ctx context.Context) (*figure.Figure, error) {
	start := clock.Now()
	p.logger.Info("run started", "horizon", p.opts.Horizon, "recent_from", p.opts.RecentFromYear)

	fig, err := p.run(ctx)

	elapsed := clock.Since(start)
	p.metrics.RunDuration.Observe(elapsed.Seconds())
	if err != nil {
		p.metrics.Runs.WithLabelValues("error").Inc()
		p.logger.Error("run failed", "error", err, "duration", elapsed)
		return nil, err
	}
	p.metrics.Runs.WithLabelValues("success").Inc()
	p.logger.Info("run complete", "output", p.opts.OutputPath, "duration", elapsed)
	return fig, nil
}

func (p *Pipeline) run(ctx context.Context) (*figure.Figure, error) {
	obs, err := p.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	p.metrics.ObservationsLoaded.Set(float64(len(obs)))

	all, err := domain.FitAll(obs)
	if err != nil {
		return nil, fmt.Errorf("fit all: %w", err)
	}
	allYears := domain.ExtendYears(obs, p.opts.Horizon)
	p.recordFit("all", all)

	recent, err := domain.FitRecent(obs, p.opts.RecentFromYear)
	if err != nil {
		return nil, err
	}
	recentYears := domain.ExtendYears(domain.RecentSubset(obs, p.opts.RecentFromYear), p.opts.Horizon)
	p.recordFit("recent", recent)

	fig := figure.Trend(figure.TrendInput{
		Observations: obs,
		All:          all,
		Recent:       recent,
		AllYears:     allYears,
		RecentYears:  recentYears,
		Width:        p.opts.Width,
		Height:       p.opts.Height,
	})

	if err := p.save(ctx, p.opts.OutputPath, fig); err != nil {
		return nil, err
	}

	if p.opts.ExploratoryDir != "" {
		if err := p.saveExploratory(ctx, obs, all, recent); err != nil {
			return nil, err
		}
	}

	return fig, nil
}

// recordFit logs and exports one regression, including its value at the
// last extrapolated year.
func (p *Pipeline) recordFit(name string, r domain.Regression) {
	projected := r.Predict(p.opts.Horizon - 1)

	p.metrics.FitSlope.WithLabelValues(name).Set(r.Slope)
	p.metrics.FitIntercept.WithLabelValues(name).Set(r.Intercept)
	p.metrics.ProjectedLevel.WithLabelValues(name).Set(projected)

	p.logger.Debug("trend fitted",
		"fit", name,
		"slope", r.Slope,
		"intercept", r.Intercept,
		"r_squared", r.RSquared,
		"n", r.N,
		"projected_year", p.opts.Horizon-1,
		"projected_level", projected,
	)
}

func (p *Pipeline) saveExploratory(ctx context.Context, obs []domain.Observation, all, recent domain.Regression) error {
	figs := figure.Exploratory(obs, all, recent, p.opts.RecentFromYear)

	names := make([]string, 0, len(figs))
	for name := range figs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := p.save(ctx, filepath.Join(p.opts.ExploratoryDir, name), figs[name]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) save(ctx context.Context, path string, fig *figure.Figure) error {
	if err := p.loader.Save(ctx, path, fig); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	p.metrics.ChartsWritten.Inc()
	return nil
}
