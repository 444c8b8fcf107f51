// Package tracker keeps per-episode reinforcement-learning metrics and
// redraws a stacked line chart of them after every episode.
//
// A Tracker is a passive observer: the training loop calls Record once per
// finished episode with values it has already computed. The Tracker is not
// safe for concurrent use.
package tracker

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/CodeStranger-Fred/rlmetrics/display"
	"github.com/CodeStranger-Fred/rlmetrics/plot"
)

// Metric identifies one of the tracked logs. The order of the constants is
// the order of the panels.
type Metric int

const (
	Reward Metric = iota
	Loss
	DiscountFactor
	ExplorationRate

	numMetrics = 4
)

var labels = [numMetrics]string{
	Reward:          "Reward",
	Loss:            "Loss",
	DiscountFactor:  "Discount Factor (γ)",
	ExplorationRate: "Exploration Rate (ε)",
}

// Label is the axis label used for the metric's panel.
func (m Metric) Label() string {
	if m < 0 || m >= numMetrics {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return labels[m]
}

// Metrics lists every metric in panel order.
func Metrics() []Metric {
	return []Metric{Reward, Loss, DiscountFactor, ExplorationRate}
}

// Episode is the set of values recorded for one episode.
type Episode struct {
	Score           float64 `json:"score"`
	Loss            float64 `json:"loss"`
	DiscountFactor  float64 `json:"discount_factor"`
	ExplorationRate float64 `json:"exploration_rate"`
}

// Tracker holds the metric logs of one training run and the collaborators
// that draw and show them.
type Tracker struct {
	logs [numMetrics][]float64

	size     plot.Size
	dpi      float64
	title    string
	renderer plot.Renderer
	display  display.Display
	logger   *slog.Logger
}

// New returns an empty tracker drawing with renderer onto d. Both
// collaborators are required.
func New(renderer plot.Renderer, d display.Display, opts ...Option) *Tracker {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return &Tracker{
		size:     s.cfg.Size(),
		dpi:      s.cfg.DPI,
		title:    s.cfg.Title,
		renderer: renderer,
		display:  d,
		logger:   s.logger,
	}
}

// Record appends one episode's values and redraws the chart. The logs are
// updated even when rendering or displaying fails.
func (t *Tracker) Record(score, loss, discountFactor, explorationRate float64) error {
	t.logs[Reward] = append(t.logs[Reward], score)
	t.logs[Loss] = append(t.logs[Loss], loss)
	t.logs[DiscountFactor] = append(t.logs[DiscountFactor], discountFactor)
	t.logs[ExplorationRate] = append(t.logs[ExplorationRate], explorationRate)

	t.logger.Debug("episode recorded",
		"episode", t.Len()-1,
		"score", score,
		"loss", loss,
		"discount_factor", discountFactor,
		"exploration_rate", explorationRate)

	return t.render()
}

// RecordEpisode is Record with the values taken from ep.
func (t *Tracker) RecordEpisode(ep Episode) error {
	return t.Record(ep.Score, ep.Loss, ep.DiscountFactor, ep.ExplorationRate)
}

func (t *Tracker) render() error {
	episode := t.Len() - 1

	var buf bytes.Buffer
	if err := t.renderer.Render(&buf, t.Figure()); err != nil {
		return fmt.Errorf("rendering episode %d: %w", episode, err)
	}

	frame := display.Frame{
		Episodes:    t.Len(),
		ContentType: t.renderer.ContentType(),
		Data:        buf.Bytes(),
	}
	if err := t.display.Show(frame); err != nil {
		return fmt.Errorf("displaying episode %d: %w", episode, err)
	}
	return nil
}

// Figure builds the chart for the logs as they are now. The panels hold
// copies, so the figure does not change when more episodes are recorded.
func (t *Tracker) Figure() plot.Figure {
	fig := plot.Figure{
		Title:  t.title,
		Size:   t.size,
		DPI:    t.dpi,
		Panels: make([]plot.Panel, 0, numMetrics),
	}
	for _, m := range Metrics() {
		fig.Panels = append(fig.Panels, plot.Panel{
			Label:  m.Label(),
			XLabel: "Episode",
			Values: t.Log(m),
		})
	}
	return fig
}

// Len is the number of recorded episodes.
func (t *Tracker) Len() int {
	return len(t.logs[Reward])
}

// Size is the canvas size fixed at construction.
func (t *Tracker) Size() plot.Size {
	return t.size
}

// Log returns a copy of the metric's values in episode order.
func (t *Tracker) Log(m Metric) []float64 {
	if m < 0 || m >= numMetrics {
		return nil
	}
	out := make([]float64, len(t.logs[m]))
	copy(out, t.logs[m])
	return out
}

func (t *Tracker) Rewards() []float64          { return t.Log(Reward) }
func (t *Tracker) Losses() []float64           { return t.Log(Loss) }
func (t *Tracker) DiscountFactors() []float64  { return t.Log(DiscountFactor) }
func (t *Tracker) ExplorationRates() []float64 { return t.Log(ExplorationRate) }

// Episodes returns the recorded values grouped by episode.
func (t *Tracker) Episodes() []Episode {
	out := make([]Episode, t.Len())
	for i := range out {
		out[i] = Episode{
			Score:           t.logs[Reward][i],
			Loss:            t.logs[Loss][i],
			DiscountFactor:  t.logs[DiscountFactor][i],
			ExplorationRate: t.logs[ExplorationRate][i],
		}
	}
	return out
}
