package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
)

// Config holds all run settings, populated from environment variables.
// Every default reproduces the published chart.
type Config struct {
	DataPath   string
	OutputPath string

	Horizon        int
	RecentFromYear int

	ChartWidth  int
	ChartHeight int

	// ExploratoryDir enables the intermediate 15x5 charts when non-empty.
	ExploratoryDir string
	// MetricsTextfile enables a Prometheus textfile export when non-empty.
	MetricsTextfile string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	horizon, err := parsePositiveInt("HORIZON_YEAR", domain.DefaultHorizon)
	if err != nil {
		return nil, err
	}

	recentFrom, err := parsePositiveInt("RECENT_FROM_YEAR", domain.DefaultRecentFromYear)
	if err != nil {
		return nil, err
	}

	width, err := parsePositiveInt("CHART_WIDTH", 1600)
	if err != nil {
		return nil, err
	}

	height, err := parsePositiveInt("CHART_HEIGHT", 900)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:        sharedcfg.EnvOrDefault("SEA_LEVEL_DATA", "epa-sea-level.csv"),
		OutputPath:      sharedcfg.EnvOrDefault("SEA_LEVEL_OUTPUT", "sea_level_plot.png"),
		Horizon:         horizon,
		RecentFromYear:  recentFrom,
		ChartWidth:      width,
		ChartHeight:     height,
		ExploratoryDir:  os.Getenv("EXPLORATORY_DIR"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.DataPath == "" {
		return nil, errors.New("SEA_LEVEL_DATA is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("SEA_LEVEL_OUTPUT is required")
	}
	if cfg.Horizon <= cfg.RecentFromYear {
		return nil, fmt.Errorf("HORIZON_YEAR (%d) must be after RECENT_FROM_YEAR (%d)", cfg.Horizon, cfg.RecentFromYear)
	}

	return cfg, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
