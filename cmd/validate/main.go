// Command validate performs integrity checks on a sea-level dataset before it
// is handed to the trend pipeline: required columns, row parsing, year
// ordering, duplicate or missing years, and whether both trends can be fitted.
//
// Usage:
//
//	go run ./cmd/validate -data epa-sea-level.csv -recent-from 2000 -horizon 2050
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/sea-level-predictor/internal/adapter/csvfile"
	"github.com/couchcryptid/sea-level-predictor/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "epa-sea-level.csv", "path to the sea-level CSV")
	recentFrom := flag.Int("recent-from", domain.DefaultRecentFromYear, "first year of the recent trend")
	horizon := flag.Int("horizon", domain.DefaultHorizon, "extrapolation horizon (exclusive)")
	flag.Parse()

	os.Exit(run(os.Stdout, *dataPath, *recentFrom, *horizon))
}

func run(out io.Writer, dataPath string, recentFrom, horizon int) int {
	fmt.Fprintln(out, "=== Sea Level Dataset Validation ===")
	fmt.Fprintln(out)

	obs, loadPhase := validateLoad(dataPath)
	phases := []*phase{loadPhase}
	if loadPhase.passed() {
		phases = append(phases,
			validateOrdering(obs),
			validateTrends(obs, recentFrom, horizon),
		)
	}

	allPassed := report(out, phases)
	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func report(out io.Writer, phases []*phase) bool {
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-36s %s\n", p.name, status)
		for _, n := range p.notes {
			fmt.Fprintf(out, "      %s\n", n)
		}
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}
	return allPassed
}

// ── Phase 1: Load ──

func validateLoad(path string) ([]domain.Observation, *phase) {
	p := &phase{name: "Phase 1: Schema and parsing"}

	f, err := os.Open(path)
	if err != nil {
		p.errorf("open %s: %v", path, err)
		return nil, p
	}
	defer f.Close()

	obs, err := csvfile.Parse(f)
	switch {
	case errors.Is(err, domain.ErrSchema):
		p.errorf("schema: %v", err)
	case err != nil:
		p.errorf("parse: %v", err)
	default:
		p.notef("%d observations, %d..%d", len(obs), obs[0].Year, domain.LastYear(obs))
	}
	return obs, p
}

// ── Phase 2: Year coverage ──
// Runs on the sorted record: duplicate years fail, gaps are only reported.

func validateOrdering(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 2: Year coverage"}

	gaps := 0
	for i := 1; i < len(obs); i++ {
		prev, cur := obs[i-1].Year, obs[i].Year
		switch {
		case cur == prev:
			p.errorf("duplicate year %d", cur)
		case cur > prev+1:
			gaps += cur - prev - 1
		}
	}
	if gaps > 0 {
		// Gaps are not fatal: years are used as-is without gap filling.
		p.notef("%d missing years", gaps)
	}
	return p
}

// ── Phase 3: Trends ──

func validateTrends(obs []domain.Observation, recentFrom, horizon int) *phase {
	p := &phase{name: "Phase 3: Trend fits"}

	if horizon <= recentFrom {
		p.errorf("horizon %d must be after recent-from %d", horizon, recentFrom)
		return p
	}

	all, err := domain.FitAll(obs)
	if err != nil {
		p.errorf("fit all: %v", err)
	} else {
		p.notef("fit all:    slope=%.6f in/yr, n=%d, level at %d: %.3f in", all.Slope, all.N, horizon-1, all.Predict(horizon-1))
	}

	recent, err := domain.FitRecent(obs, recentFrom)
	if err != nil {
		p.errorf("fit recent: %v", err)
	} else {
		p.notef("fit recent: slope=%.6f in/yr, n=%d, level at %d: %.3f in", recent.Slope, recent.N, horizon-1, recent.Predict(horizon-1))
	}

	if last := domain.LastYear(obs); last >= horizon-1 {
		p.errorf("last observed year %d leaves nothing to extrapolate before %d", last, horizon)
	}
	return p
}
