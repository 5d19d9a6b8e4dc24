package pngfile

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/sea-level-predictor/internal/domain"
	"github.com/couchcryptid/sea-level-predictor/internal/figure"
)

// Writer renders figures to PNG files.
// It implements pipeline.Loader.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a PNG file writer.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Save renders fig and writes it to path, replacing any existing file. The
// image is encoded in memory first so a render failure leaves the old file
// untouched.
func (w *Writer) Save(ctx context.Context, path string, fig *figure.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := fig.Render(&buf); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", domain.ErrOutputWrite, dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // chart images are world-readable
		return fmt.Errorf("%w: write %s: %w", domain.ErrOutputWrite, path, err)
	}

	w.logger.Info("chart written", "path", path, "bytes", buf.Len(), "series", len(fig.Series))
	return nil
}
