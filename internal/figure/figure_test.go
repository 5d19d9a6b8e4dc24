package figure_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
	"github.com/couchcryptid/sea-level-predictor/internal/figure"
)

func sampleObservations() []domain.Observation {
	return []domain.Observation{
		{Year: 1995, Level: 6.5},
		{Year: 2000, Level: 7.06},
		{Year: 2005, Level: 7.7},
		{Year: 2010, Level: 8.9},
		{Year: 2013, Level: 8.5},
	}
}

func sampleTrend(t *testing.T) *figure.Figure {
	t.Helper()
	obs := sampleObservations()
	all, err := domain.FitAll(obs)
	require.NoError(t, err)
	recent, err := domain.FitRecent(obs, 2000)
	require.NoError(t, err)

	return figure.Trend(figure.TrendInput{
		Observations: obs,
		All:          all,
		Recent:       recent,
		AllYears:     domain.ExtendYears(obs, 2050),
		RecentYears:  domain.ExtendYears(domain.RecentSubset(obs, 2000), 2050),
		Width:        640,
		Height:       360,
	})
}

func TestTrend_LabelsAndLines(t *testing.T) {
	f := sampleTrend(t)

	assert.Equal(t, "Rise in Sea Level", f.Title)
	assert.Equal(t, "Year", f.XLabel)
	assert.Equal(t, "Sea Level (inches)", f.YLabel)

	lines := f.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "fit all", lines[0].Name)
	assert.Equal(t, "fit recent", lines[1].Name)
	for _, l := range lines {
		assert.InDelta(t, 2049, l.MaxX(), 0)
		assert.Len(t, l.YValues, len(l.XValues))
	}

	// fit all starts at the first observation, fit recent at the first recent one.
	assert.InDelta(t, 1995, lines[0].XValues[0], 0)
	assert.InDelta(t, 2000, lines[1].XValues[0], 0)
}

func TestTrend_ScatterIsNotALine(t *testing.T) {
	f := sampleTrend(t)

	require.Len(t, f.Series, 3)
	assert.Equal(t, figure.KindScatter, f.Series[0].Kind)
	assert.Equal(t, []float64{1995, 2000, 2005, 2010, 2013}, f.Series[0].XValues)
}

func TestFigure_RenderPNG(t *testing.T) {
	f := sampleTrend(t)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
}

func TestFigure_RenderEmpty(t *testing.T) {
	f := figure.New("empty", "x", "y", 100, 100)
	var buf bytes.Buffer
	require.Error(t, f.Render(&buf))
	assert.Zero(t, buf.Len())
}

func TestFigure_Chart(t *testing.T) {
	f := figure.New("t", "x", "y", 300, 200)
	f.AddScatter("points", []float64{1, 2}, []float64{3, 4}, drawing.ColorBlack)
	f.AddLine("line", []float64{1, 2}, []float64{3, 4}, drawing.ColorBlue)

	ch := f.Chart()

	assert.Equal(t, "t", ch.Title)
	assert.Equal(t, "x", ch.XAxis.Name)
	assert.Equal(t, "y", ch.YAxis.Name)
	require.Len(t, ch.Series, 2)
	scatter, ok := ch.Series[0].(chart.ContinuousSeries)
	require.True(t, ok)
	assert.InDelta(t, chart.Disabled, scatter.Style.StrokeWidth, 0)
	assert.Len(t, ch.Elements, 1)
}

func TestSeries_MaxX(t *testing.T) {
	assert.InDelta(t, 0, figure.Series{}.MaxX(), 0)
	assert.InDelta(t, 2049, figure.Series{XValues: []float64{2049, 1880, 2013}}.MaxX(), 0)
}

func TestExploratory(t *testing.T) {
	obs := sampleObservations()
	all, err := domain.FitAll(obs)
	require.NoError(t, err)
	recent, err := domain.FitRecent(obs, 2000)
	require.NoError(t, err)

	figs := figure.Exploratory(obs, all, recent, 2000)

	require.Len(t, figs, 3)
	assert.Empty(t, figs["exploratory_scatter.png"].Lines())
	assert.Len(t, figs["exploratory_fit_all.png"].Lines(), 1)

	fits := figs["exploratory_fits.png"]
	assert.Equal(t, figure.TrendTitle, fits.Title)
	require.Len(t, fits.Lines(), 2)
	assert.InDelta(t, 2013, fits.Lines()[1].MaxX(), 0)
	for _, f := range figs {
		assert.Equal(t, figure.ExploratoryWidth, f.Width)
		assert.Equal(t, figure.ExploratoryHeight, f.Height)
	}
}
