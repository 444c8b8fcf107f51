package plot

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
)

// terminal cells per display unit
const (
	textColsPerUnit = 6
	textRowsPerUnit = 2
)

var eighths = []rune(" ▁▂▃▄▅▆▇█")

// Text renders panels as block-character column charts for a terminal.
type Text struct {
	au aurora.Aurora
}

// NewText returns a text renderer; colors turns ANSI colouring on or off.
func NewText(colors bool) *Text {
	return &Text{au: aurora.NewAurora(colors)}
}

func (t *Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (t *Text) Render(w io.Writer, fig Figure) error {
	cols := int(math.Round(fig.Size.Width * textColsPerUnit))
	if cols < 1 {
		cols = 1
	}
	rows := 1
	if len(fig.Panels) > 0 {
		rows = int(math.Round(fig.Size.Height * textRowsPerUnit / float64(len(fig.Panels))))
	}
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	if fig.Title != "" {
		b.WriteString(t.au.Bold(fig.Title).String())
		b.WriteString("\n\n")
	}
	for _, p := range fig.Panels {
		t.panel(&b, p, cols, rows)
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing text plot: %w", err)
	}
	return nil
}

func (t *Text) panel(b *strings.Builder, p Panel, cols, rows int) {
	n := len(p.Values)
	lo, hi := valueRange(p.Values)

	last := math.NaN()
	if n > 0 {
		last = p.Values[n-1]
	}
	fmt.Fprintf(b, "%s  %s %s  %s %s\n",
		t.au.Bold(t.au.Cyan(p.Label)),
		"last", t.au.Green(formatValue(last)),
		"range", t.au.Blue(formatValue(lo)+" .. "+formatValue(hi)))

	columns := bucket(p.Values, cols)
	for r := rows - 1; r >= 0; r-- {
		var line strings.Builder
		for _, v := range columns {
			line.WriteRune(cell(v, lo, hi, rows, r))
		}
		b.WriteString(t.au.White("|").String())
		b.WriteString(t.au.Green(line.String()).String())
		b.WriteString("\n")
	}
	b.WriteString(t.au.White("+" + strings.Repeat("-", len(columns))).String())
	b.WriteString("\n")
	b.WriteString(" " + axisLabels(n, len(columns)) + "  " + p.XLabel + "\n")
}

// bucket averages values into at most cols columns.
func bucket(values []float64, cols int) []float64 {
	n := len(values)
	if n <= cols {
		return values
	}
	out := make([]float64, cols)
	for c := range out {
		from, to := c*n/cols, (c+1)*n/cols
		sum, count := 0.0, 0
		for _, v := range values[from:to] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			sum += v
			count++
		}
		if count == 0 {
			out[c] = math.NaN()
			continue
		}
		out[c] = sum / float64(count)
	}
	return out
}

func cell(v, lo, hi float64, rows, row int) rune {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ' '
	}
	v = math.Max(lo, math.Min(hi, v))
	level := int(math.Round((v - lo) / (hi - lo) * float64(rows*8)))
	level -= row * 8
	switch {
	case level <= 0:
		return eighths[0]
	case level >= 8:
		return eighths[8]
	}
	return eighths[level]
}

// axisLabels places integer episode labels under their columns.
func axisLabels(n, cols int) string {
	if n == 0 || cols == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", cols+8))
	next := 0
	for _, ep := range IntegerTicks(n, cols/6+1) {
		col := ep
		if n > cols {
			col = ep * cols / n
		}
		label := strconv.Itoa(ep)
		if col < next || col+len(label) > len(line) {
			continue
		}
		copy(line[col:], []rune(label))
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
