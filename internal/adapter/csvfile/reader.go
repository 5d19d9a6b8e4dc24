package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
)

// Required column names in the EPA dataset header.
const (
	YearColumn  = "Year"
	LevelColumn = "CSIRO Adjusted Sea Level"
)

// Reader loads observations from a CSV file on disk.
// It implements pipeline.Extractor.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the dataset at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Extract opens the dataset and parses every row.
func (r *Reader) Extract(ctx context.Context) ([]domain.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrDataLoad, r.path, err)
	}
	defer f.Close()

	obs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	r.logger.Info("dataset loaded", "path", r.path, "observations", len(obs),
		"first_year", obs[0].Year, "last_year", domain.LastYear(obs))
	return obs, nil
}

// Parse reads a header row followed by data rows, keeping the Year and
// CSIRO Adjusted Sea Level columns. Rows are returned in ascending year order;
// rows sharing a year keep their file order.
func Parse(src io.Reader) ([]domain.Observation, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", domain.ErrDataLoad)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrDataLoad, err)
	}

	yearIdx, levelIdx, err := columnIndices(header)
	if err != nil {
		return nil, err
	}

	var obs []domain.Observation
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrDataLoad, line, err)
		}
		if isBlank(record) {
			continue
		}

		o, err := parseRecord(record, yearIdx, levelIdx)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", domain.ErrDataLoad, line, err)
		}
		obs = append(obs, o)
	}

	if len(obs) == 0 {
		return nil, fmt.Errorf("%w: no data rows", domain.ErrDataLoad)
	}

	slices.SortStableFunc(obs, func(a, b domain.Observation) int { return a.Year - b.Year })
	return obs, nil
}

func columnIndices(header []string) (yearIdx, levelIdx int, err error) {
	yearIdx, levelIdx = -1, -1
	for i, h := range header {
		// Spreadsheet exports sometimes carry a UTF-8 BOM on the first column.
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch h {
		case YearColumn:
			yearIdx = i
		case LevelColumn:
			levelIdx = i
		}
	}

	var missing []string
	if yearIdx < 0 {
		missing = append(missing, strconv.Quote(YearColumn))
	}
	if levelIdx < 0 {
		missing = append(missing, strconv.Quote(LevelColumn))
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("%w: missing column %s", domain.ErrSchema, strings.Join(missing, ", "))
	}
	return yearIdx, levelIdx, nil
}

func parseRecord(record []string, yearIdx, levelIdx int) (domain.Observation, error) {
	if yearIdx >= len(record) || levelIdx >= len(record) {
		return domain.Observation{}, fmt.Errorf("expected at least %d fields, got %d", max(yearIdx, levelIdx)+1, len(record))
	}

	year, err := parseYear(record[yearIdx])
	if err != nil {
		return domain.Observation{}, err
	}

	levelStr := strings.TrimSpace(record[levelIdx])
	level, err := strconv.ParseFloat(levelStr, 64)
	if err != nil || math.IsNaN(level) || math.IsInf(level, 0) {
		return domain.Observation{}, fmt.Errorf("invalid %s %q", LevelColumn, levelStr)
	}

	return domain.Observation{Year: year, Level: level}, nil
}

// parseYear accepts "1880" and the float form "1880.0" some exports produce.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid %s %q", YearColumn, s)
	}
	return int(f), nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
