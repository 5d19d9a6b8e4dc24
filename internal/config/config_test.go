package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "epa-sea-level.csv", cfg.DataPath)
	assert.Equal(t, "sea_level_plot.png", cfg.OutputPath)
	assert.Equal(t, 2050, cfg.Horizon)
	assert.Equal(t, 2000, cfg.RecentFromYear)
	assert.Equal(t, 1600, cfg.ChartWidth)
	assert.Equal(t, 900, cfg.ChartHeight)
	assert.Empty(t, cfg.ExploratoryDir)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SEA_LEVEL_DATA", "/data/sea.csv")
	t.Setenv("SEA_LEVEL_OUTPUT", "/out/plot.png")
	t.Setenv("HORIZON_YEAR", "2100")
	t.Setenv("RECENT_FROM_YEAR", "1990")
	t.Setenv("CHART_WIDTH", "800")
	t.Setenv("CHART_HEIGHT", "450")
	t.Setenv("EXPLORATORY_DIR", "/out/explore")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/sea_level.prom")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/sea.csv", cfg.DataPath)
	assert.Equal(t, "/out/plot.png", cfg.OutputPath)
	assert.Equal(t, 2100, cfg.Horizon)
	assert.Equal(t, 1990, cfg.RecentFromYear)
	assert.Equal(t, 800, cfg.ChartWidth)
	assert.Equal(t, 450, cfg.ChartHeight)
	assert.Equal(t, "/out/explore", cfg.ExploratoryDir)
	assert.Equal(t, "/var/lib/node_exporter/sea_level.prom", cfg.MetricsTextfile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidHorizon(t *testing.T) {
	t.Setenv("HORIZON_YEAR", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HORIZON_YEAR")
}

func TestLoad_HorizonBeforeRecentFrom(t *testing.T) {
	t.Setenv("HORIZON_YEAR", "1999")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HORIZON_YEAR")
	assert.Contains(t, err.Error(), "RECENT_FROM_YEAR")
}

func TestLoad_InvalidRecentFromYear(t *testing.T) {
	t.Setenv("RECENT_FROM_YEAR", "-2000")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECENT_FROM_YEAR")
}

func TestLoad_InvalidChartSize(t *testing.T) {
	t.Setenv("CHART_WIDTH", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHART_WIDTH")

	t.Setenv("CHART_WIDTH", "1600")
	t.Setenv("CHART_HEIGHT", "tall")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHART_HEIGHT")
}
