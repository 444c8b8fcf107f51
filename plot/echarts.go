package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ECharts renders a figure as a standalone HTML page with one echarts
// line chart per panel.
type ECharts struct {
	Theme string
}

func NewECharts() *ECharts {
	return &ECharts{Theme: "shine"}
}

func (e *ECharts) ContentType() string {
	return "text/html; charset=utf-8"
}

func (e *ECharts) Render(w io.Writer, fig Figure) error {
	width, height := fig.panelPixels()

	page := components.NewPage()
	page.PageTitle = fig.Title
	page.SetLayout(components.PageCenterLayout)

	for i, p := range fig.Panels {
		page.AddCharts(e.panel(i, p, fig.Title, width, height))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering echarts page: %w", err)
	}
	return nil
}

func (e *ECharts) panel(index int, p Panel, title string, width, height int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: fmt.Sprintf("panel%d", index),
			Width:   fmt.Sprintf("%dpx", width),
			Height:  fmt.Sprintf("%dpx", height),
			Theme:   e.Theme,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: p.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: p.Label}),
		charts.WithGridOpts(opts.Grid{Left: "8%", Right: "6%", Top: "18%", Bottom: "18%"}),
	)
	if index == 0 && title != "" {
		line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	}

	// category axis of episode numbers keeps every tick an integer
	steps := make([]string, 0, len(p.Values))
	items := make([]opts.LineData, 0, len(p.Values))
	for i, v := range p.Values {
		steps = append(steps, fmt.Sprintf("%d", i))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			// echarts draws "-" as a gap
			items = append(items, opts.LineData{Value: "-"})
			continue
		}
		items = append(items, opts.LineData{Value: v})
	}

	line.SetXAxis(steps).AddSeries(p.Label, items)
	return line
}
