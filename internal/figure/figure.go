// Package figure holds an explicit, inspectable chart value and renders it to
// PNG with go-chart. Nothing here keeps global plotting state; every render
// starts from the Figure passed in.
package figure

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind distinguishes marker-only series from connected lines.
type Kind int

const (
	KindScatter Kind = iota
	KindLine
)

// Series is one named set of points on a figure.
type Series struct {
	Name    string
	Kind    Kind
	XValues []float64
	YValues []float64
	Color   drawing.Color
}

// MaxX returns the largest x value, or 0 for an empty series.
func (s Series) MaxX() float64 {
	if len(s.XValues) == 0 {
		return 0
	}
	maxX := s.XValues[0]
	for _, x := range s.XValues[1:] {
		if x > maxX {
			maxX = x
		}
	}
	return maxX
}

// Figure is a titled, labelled chart of scatter and line series.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	Series []Series
}

// New creates an empty figure of the given pixel size.
func New(title, xLabel, yLabel string, width, height int) *Figure {
	return &Figure{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Width:  width,
		Height: height,
	}
}

// AddScatter appends a marker-only series.
func (f *Figure) AddScatter(name string, xs, ys []float64, color drawing.Color) {
	f.Series = append(f.Series, Series{Name: name, Kind: KindScatter, XValues: xs, YValues: ys, Color: color})
}

// AddLine appends a connected line series.
func (f *Figure) AddLine(name string, xs, ys []float64, color drawing.Color) {
	f.Series = append(f.Series, Series{Name: name, Kind: KindLine, XValues: xs, YValues: ys, Color: color})
}

// Lines returns the line series in the order they were added. Scatter series
// are not lines.
func (f *Figure) Lines() []Series {
	var lines []Series
	for _, s := range f.Series {
		if s.Kind == KindLine {
			lines = append(lines, s)
		}
	}
	return lines
}

// Chart converts the figure to a go-chart chart.
func (f *Figure) Chart() chart.Chart {
	series := make([]chart.Series, 0, len(f.Series))
	for _, s := range f.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.XValues,
			YValues: s.YValues,
			Style:   seriesStyle(s),
		})
	}

	ch := chart.Chart{
		Title:      f.Title,
		Width:      f.Width,
		Height:     f.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: f.XLabel, ValueFormatter: yearFormatter},
		YAxis:      chart.YAxis{Name: f.YLabel},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// Render encodes the figure as PNG into w.
func (f *Figure) Render(w io.Writer) error {
	if len(f.Series) == 0 {
		return errors.New("render figure: no series")
	}
	ch := f.Chart()
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render figure %q: %w", f.Title, err)
	}
	return nil
}

func seriesStyle(s Series) chart.Style {
	if s.Kind == KindScatter {
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    3,
			DotColor:    s.Color,
		}
	}
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: s.Color,
	}
}

// yearFormatter prints x ticks as whole years.
func yearFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
