package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// pixels per x axis label
const pngTickSpacing = 60

// PNG renders each panel with go-chart and stacks the panel images into a
// single PNG.
type PNG struct{}

func NewPNG() *PNG {
	return &PNG{}
}

func (p *PNG) ContentType() string {
	return "image/png"
}

func (p *PNG) Render(w io.Writer, fig Figure) error {
	width, height := fig.panelPixels()
	if width <= 0 || height <= 0 || len(fig.Panels) == 0 {
		return fmt.Errorf("empty canvas %dx%d with %d panels", width, height, len(fig.Panels))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height*len(fig.Panels)))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for i, panel := range fig.Panels {
		title := ""
		if i == 0 {
			title = fig.Title
		}
		img, err := renderPanel(panel, title, width, height)
		if err != nil {
			return fmt.Errorf("panel %q: %w", panel.Label, err)
		}
		dst := image.Rect(0, i*height, width, (i+1)*height)
		draw.Draw(canvas, dst, img, img.Bounds().Min, draw.Over)
	}

	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func renderPanel(p Panel, title string, width, height int) (image.Image, error) {
	n := len(p.Values)

	// a single episode is centred on its tick
	xMin, xMax := 0.0, float64(n-1)
	if n <= 1 {
		xMin, xMax = -0.5, 0.5
	}
	var xTicks []chart.Tick
	for _, t := range IntegerTicks(n, width/pngTickSpacing) {
		xTicks = append(xTicks, chart.Tick{Value: float64(t), Label: strconv.Itoa(t)})
	}
	lo, hi := valueRange(p.Values)

	// go-chart takes its ranges from the series and rejects a zero delta, so
	// an invisible diagonal pins both axes to the intended bounds
	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: []float64{xMin, xMax},
			YValues: []float64{lo, hi},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
		},
	}
	style := chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2}
	for _, seg := range segments(p.Values, lo, hi, xMin, xMax) {
		series = append(series, chart.ContinuousSeries{
			Name:    p.Label,
			XValues: seg.xs,
			YValues: seg.ys,
			Style:   style,
		})
	}

	padTop := 12
	if title != "" {
		padTop = 36
	}
	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: padTop, Left: 24, Right: 16, Bottom: 12}},
		XAxis: chart.XAxis{
			Name:  p.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  p.Label,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}
	return img, nil
}

type segment struct {
	xs, ys []float64
}

// segments splits values into runs of finite points, clamped to [lo, hi].
// NaN and ±Inf end a run and leave a gap. A run of one point becomes a
// short flat stub so it stays visible, kept inside [xMin, xMax].
func segments(values []float64, lo, hi, xMin, xMax float64) []segment {
	var (
		out []segment
		cur segment
	)
	flush := func() {
		if len(cur.xs) == 1 {
			x, y := cur.xs[0], cur.ys[0]
			from, to := math.Max(xMin, x-0.25), math.Min(xMax, x+0.25)
			cur = segment{xs: []float64{from, to}, ys: []float64{y, y}}
		}
		if len(cur.xs) > 0 {
			out = append(out, cur)
		}
		cur = segment{}
	}

	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			flush()
			continue
		}
		cur.xs = append(cur.xs, float64(i))
		cur.ys = append(cur.ys, math.Max(lo, math.Min(hi, v)))
	}
	flush()
	return out
}
