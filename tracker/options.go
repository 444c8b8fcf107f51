package tracker

import (
	"log/slog"

	"github.com/CodeStranger-Fred/rlmetrics/plot"
)

// Default canvas configuration, in display units.
const (
	DefaultWidth         = 14
	DefaultHeightPerPlot = 2.5
)

// Config sizes the chart. Width and HeightPerPlot are expected to be
// positive; they are not checked.
type Config struct {
	Width         float64
	HeightPerPlot float64
	DPI           float64
	Title         string
}

func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		HeightPerPlot: DefaultHeightPerPlot,
		DPI:           plot.DefaultDPI,
	}
}

// Size is the full canvas: one HeightPerPlot for each metric panel.
func (c Config) Size() plot.Size {
	return plot.Size{Width: c.Width, Height: c.HeightPerPlot * numMetrics}
}

type settings struct {
	cfg    Config
	logger *slog.Logger
}

type Option func(*settings)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

func WithWidth(width float64) Option {
	return func(s *settings) { s.cfg.Width = width }
}

func WithHeightPerPlot(height float64) Option {
	return func(s *settings) { s.cfg.HeightPerPlot = height }
}

func WithDPI(dpi float64) Option {
	return func(s *settings) { s.cfg.DPI = dpi }
}

func WithTitle(title string) Option {
	return func(s *settings) { s.cfg.Title = title }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}
