// Command genmock writes a deterministic synthetic dataset in the EPA
// sea-level CSV layout. The fixture under internal/pipeline/testdata was
// produced with the defaults. It uses the domain package to print the trends
// the pipeline will fit, so fixture changes are visible at generation time.
//
// Usage:
//
//	go run ./cmd/genmock -out internal/pipeline/testdata/epa-sea-level.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/couchcryptid/sea-level-predictor/internal/adapter/csvfile"
	"github.com/couchcryptid/sea-level-predictor/internal/domain"
)

// noaaFromYear is the first year the NOAA satellite column is populated.
const noaaFromYear = 1993

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the synthetic CSV")
	first := flag.Int("first", 1880, "first year")
	last := flag.Int("last", 2013, "last year")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *last <= *first {
		return fmt.Errorf("-last (%d) must be after -first (%d)", *last, *first)
	}

	obs := make([]domain.Observation, 0, *last-*first+1)
	rows := [][]string{{csvfile.YearColumn, csvfile.LevelColumn, "Lower Error Bound", "Upper Error Bound", "NOAA Adjusted Sea Level"}}
	for y := *first; y <= *last; y++ {
		level := syntheticLevel(y, *first)
		bound := math.Max(0.95-0.006*float64(y-*first), 0.1)

		noaa := ""
		if y >= noaaFromYear {
			noaa = formatLevel(level - 0.25)
		}
		rows = append(rows, []string{
			strconv.Itoa(y),
			formatLevel(level),
			formatLevel(level - bound),
			formatLevel(level + bound),
			noaa,
		})
		obs = append(obs, domain.Observation{Year: y, Level: level})
	}

	if err := writeCSV(*out, rows); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote %d rows to %s", len(obs), *out)

	printTrends(obs)
	return nil
}

// syntheticLevel is a gently accelerating rise with a bounded, repeatable wiggle.
func syntheticLevel(year, first int) float64 {
	t := float64(year - first)
	wiggle := float64((year*37)%11-5) * 0.04
	return 0.03*t + 0.00028*t*t + wiggle
}

func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', 9, 64)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

func printTrends(obs []domain.Observation) {
	all, err := domain.FitAll(obs)
	if err != nil {
		log.Printf("fit all: %v", err)
		return
	}
	log.Printf("fit all:    slope=%.6f intercept=%.4f r2=%.4f 2049=%.3f", all.Slope, all.Intercept, all.RSquared, all.Predict(domain.DefaultHorizon-1))

	recent, err := domain.FitRecent(obs, domain.DefaultRecentFromYear)
	if err != nil {
		log.Printf("fit recent: %v", err)
		return
	}
	log.Printf("fit recent: slope=%.6f intercept=%.4f r2=%.4f 2049=%.3f", recent.Slope, recent.Intercept, recent.RSquared, recent.Predict(domain.DefaultHorizon-1))
}
