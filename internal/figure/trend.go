package figure

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
)

// Labels of the published chart.
const (
	TrendTitle  = "Rise in Sea Level"
	TrendXLabel = "Year"
	TrendYLabel = "Sea Level (inches)"
)

// Exploratory charts use a 15x5 aspect.
const (
	ExploratoryWidth  = 1500
	ExploratoryHeight = 500
)

// TrendInput carries everything the published chart is drawn from.
type TrendInput struct {
	Observations []domain.Observation
	All          domain.Regression
	Recent       domain.Regression
	AllYears     []int // observed years extended to horizon-1
	RecentYears  []int // recent years extended to horizon-1
	Width        int
	Height       int
}

// Trend draws the observations as a scatter plus the "fit all" and
// "fit recent" lines, each evaluated over its own extended year range.
func Trend(in TrendInput) *Figure {
	f := New(TrendTitle, TrendXLabel, TrendYLabel, in.Width, in.Height)

	xs, ys := observationPoints(in.Observations)
	f.AddScatter("observed", xs, ys, drawing.ColorRed)
	f.AddLine("fit all", yearsToFloats(in.AllYears), in.All.PredictAll(in.AllYears), drawing.ColorRed)
	f.AddLine("fit recent", yearsToFloats(in.RecentYears), in.Recent.PredictAll(in.RecentYears), chart.ColorBlue)

	return f
}

// Exploratory returns the intermediate charts keyed by file name: the raw
// scatter, the all-years fit over observed years, and both fits over their
// observed ranges.
func Exploratory(obs []domain.Observation, all, recent domain.Regression, recentFromYear int) map[string]*Figure {
	xs, ys := observationPoints(obs)
	years := domain.Years(obs)
	recentYears := domain.Years(domain.RecentSubset(obs, recentFromYear))

	scatter := New("", "Years", "CSIRO Adjusted Sea Level", ExploratoryWidth, ExploratoryHeight)
	scatter.AddScatter("observed", xs, ys, chart.ColorBlue)

	fitAll := New("", "Years", "CSIRO Adjusted Sea Level", ExploratoryWidth, ExploratoryHeight)
	fitAll.AddScatter("observed", xs, ys, chart.ColorBlue)
	fitAll.AddLine("fit all", yearsToFloats(years), all.PredictAll(years), drawing.ColorRed)

	fits := New(TrendTitle, TrendXLabel, TrendYLabel, ExploratoryWidth, ExploratoryHeight)
	fits.AddScatter("observed", xs, ys, chart.ColorBlue)
	fits.AddLine("fit all", yearsToFloats(years), all.PredictAll(years), chart.ColorGreen)
	fits.AddLine("fit recent", yearsToFloats(recentYears), recent.PredictAll(recentYears), drawing.ColorRed)

	return map[string]*Figure{
		"exploratory_scatter.png": scatter,
		"exploratory_fit_all.png": fitAll,
		"exploratory_fits.png":    fits,
	}
}

func observationPoints(obs []domain.Observation) (xs, ys []float64) {
	xs = make([]float64, len(obs))
	ys = make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = float64(o.Year)
		ys[i] = o.Level
	}
	return xs, ys
}

func yearsToFloats(years []int) []float64 {
	out := make([]float64, len(years))
	for i, y := range years {
		out[i] = float64(y)
	}
	return out
}
