package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a trend run.
type Metrics struct {
	ObservationsLoaded prometheus.Gauge
	Runs               *prometheus.CounterVec // labels: outcome={success,error}
	RunDuration        prometheus.Histogram

	// Fit results, labelled fit={all,recent}.
	FitSlope       *prometheus.GaugeVec
	FitIntercept   *prometheus.GaugeVec
	ProjectedLevel *prometheus.GaugeVec // fitted level at horizon-1, inches

	ChartsWritten prometheus.Counter
}

// NewMetrics creates all run metrics and registers them with reg.
// A nil reg leaves them unregistered, which tests rely on to avoid
// "already registered" panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ObservationsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sea_level",
			Name:      "observations_loaded",
			Help:      "Observations read from the dataset in the last run.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sea_level",
			Name:      "runs_total",
			Help:      "Pipeline runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sea_level",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-fit-render run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		FitSlope: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sea_level",
			Name:      "fit_slope_inches_per_year",
			Help:      "Slope of the fitted trend line.",
		}, []string{"fit"}),
		FitIntercept: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sea_level",
			Name:      "fit_intercept_inches",
			Help:      "Intercept of the fitted trend line at year 0.",
		}, []string{"fit"}),
		ProjectedLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sea_level",
			Name:      "projected_level_inches",
			Help:      "Fitted sea level at the last extrapolated year.",
		}, []string{"fit"}),
		ChartsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sea_level",
			Name:      "charts_written_total",
			Help:      "PNG charts written, including exploratory charts.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.ObservationsLoaded,
			m.Runs,
			m.RunDuration,
			m.FitSlope,
			m.FitIntercept,
			m.ProjectedLevel,
			m.ChartsWritten,
		)
	}

	return m
}

// WriteTextfile exports everything gathered by g in the node-exporter
// textfile format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
