// Package plot turns a Figure of stacked metric panels into a rendered
// document. Renderers exist for HTML (go-echarts), PNG (go-chart) and
// coloured terminal text (aurora).
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// DefaultDPI converts display units (inches) into pixels when a Figure
// does not carry its own DPI.
const DefaultDPI = 100

const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatText = "text"
)

var ErrUnknownFormat = errors.New("unknown render format")

// Size is a canvas size in display units.
type Size struct {
	Width  float64
	Height float64
}

// Pixels returns the size in whole pixels at the given dpi.
func (s Size) Pixels(dpi float64) (int, int) {
	return int(math.Round(s.Width * dpi)), int(math.Round(s.Height * dpi))
}

// Panel is one line plot of a single metric, indexed by episode.
type Panel struct {
	Label  string
	XLabel string
	Values []float64
}

// Figure is a vertical stack of panels sharing one canvas.
type Figure struct {
	Title  string
	Size   Size
	DPI    float64
	Panels []Panel
}

func (f Figure) dpi() float64 {
	if f.DPI <= 0 {
		return DefaultDPI
	}
	return f.DPI
}

// panelPixels splits the canvas height evenly between the panels.
func (f Figure) panelPixels() (int, int) {
	w, h := f.Size.Pixels(f.dpi())
	if len(f.Panels) == 0 {
		return w, h
	}
	return w, h / len(f.Panels)
}

// Renderer draws a figure into w.
type Renderer interface {
	Render(w io.Writer, fig Figure) error
	ContentType() string
}

// ByName returns a renderer for one of the Format* names.
func ByName(format string) (Renderer, error) {
	switch format {
	case FormatHTML:
		return NewECharts(), nil
	case FormatPNG:
		return NewPNG(), nil
	case FormatText:
		return NewText(true), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Ext is the file extension used for documents of the given format.
func Ext(format string) string {
	if format == FormatText {
		return "txt"
	}
	return format
}

// valueRange returns the finite min and max of values, padded so the
// range is never empty and its span never overflows.
func valueRange(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		d := math.Abs(lo) * 0.05
		if d == 0 {
			d = 0.5
		}
		lo, hi = lo-d, hi+d
	}
	lo, hi = math.Max(lo, -math.MaxFloat64), math.Min(hi, math.MaxFloat64)
	if math.IsInf(hi-lo, 0) {
		// values beyond this span are clamped by the renderers
		mid := lo/2 + hi/2
		lo, hi = mid-math.MaxFloat64/4, mid+math.MaxFloat64/4
	}
	return lo, hi
}
