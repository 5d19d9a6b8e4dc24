package domain

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Regression is an ordinary least-squares fit of level on year:
// level = Slope*year + Intercept.
type Regression struct {
	Slope     float64 // inches per year
	Intercept float64 // inches at year 0
	RSquared  float64
	N         int
}

// Predict evaluates the fitted line at year.
func (r Regression) Predict(year int) float64 {
	return r.Slope*float64(year) + r.Intercept
}

// PredictAll evaluates the fitted line at every year.
func (r Regression) PredictAll(years []int) []float64 {
	out := make([]float64, len(years))
	for i, y := range years {
		out[i] = r.Predict(y)
	}
	return out
}

// Fit computes the least-squares line through obs. At least two distinct
// years are required.
func Fit(obs []Observation) (Regression, error) {
	if n := distinctYears(obs); n < 2 {
		return Regression{}, fmt.Errorf("%w: %d distinct years in %d observations", ErrDataInsufficient, n, len(obs))
	}

	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = float64(o.Year)
		ys[i] = o.Level
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Regression{
		Slope:     beta,
		Intercept: alpha,
		RSquared:  stat.RSquared(xs, ys, nil, alpha, beta),
		N:         len(obs),
	}, nil
}

// FitAll fits every observation.
func FitAll(obs []Observation) (Regression, error) {
	return Fit(obs)
}

// FitRecent fits the observations from fromYear through the last observed year.
func FitRecent(obs []Observation, fromYear int) (Regression, error) {
	recent := RecentSubset(obs, fromYear)
	r, err := Fit(recent)
	if err != nil {
		return Regression{}, fmt.Errorf("recent fit from %d: %w", fromYear, err)
	}
	return r, nil
}

func distinctYears(obs []Observation) int {
	seen := make(map[int]struct{}, len(obs))
	for _, o := range obs {
		seen[o.Year] = struct{}{}
	}
	return len(seen)
}
