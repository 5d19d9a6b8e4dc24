package domain

// Default horizon and recent-subset boundary for the published chart.
const (
	DefaultHorizon        = 2050
	DefaultRecentFromYear = 2000
)

// Observation is one year of the adjusted sea-level record.
type Observation struct {
	Year  int
	Level float64 // inches
}

// LastYear returns the largest year in obs, or 0 when obs is empty.
func LastYear(obs []Observation) int {
	if len(obs) == 0 {
		return 0
	}
	last := obs[0].Year
	for _, o := range obs[1:] {
		if o.Year > last {
			last = o.Year
		}
	}
	return last
}

// Years returns the year of every observation, in order.
func Years(obs []Observation) []int {
	years := make([]int, len(obs))
	for i, o := range obs {
		years[i] = o.Year
	}
	return years
}

// RecentSubset returns the observations with fromYear <= year <= LastYear(obs).
// The result is a new slice; obs is not modified.
func RecentSubset(obs []Observation, fromYear int) []Observation {
	last := LastYear(obs)
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.Year >= fromYear && o.Year <= last {
			out = append(out, o)
		}
	}
	return out
}

// SyntheticYears returns lastYear+1 through horizon-1. It is empty when the
// horizon does not lie beyond lastYear+1.
func SyntheticYears(lastYear, horizon int) []int {
	if horizon <= lastYear+1 {
		return []int{}
	}
	years := make([]int, 0, horizon-lastYear-1)
	for y := lastYear + 1; y < horizon; y++ {
		years = append(years, y)
	}
	return years
}

// ExtendYears returns the observed years of obs followed by the synthetic
// years after LastYear(obs) and before horizon.
func ExtendYears(obs []Observation, horizon int) []int {
	years := Years(obs)
	return append(years, SyntheticYears(LastYear(obs), horizon)...)
}
