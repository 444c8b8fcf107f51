// Package episode reads recorded episode metrics from JSON Lines input,
// one object per line with all four metrics:
//
//	{"score": 12.5, "loss": 0.31, "discount_factor": 0.99, "exploration_rate": 0.2}
package episode

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CodeStranger-Fred/rlmetrics/tracker"
)

// ErrMissingField reports an episode line without one of the four metrics.
var ErrMissingField = errors.New("missing episode field")

// Reader decodes episodes one line at a time.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next episode, skipping blank lines. It returns io.EOF
// once the input is exhausted.
func (r *Reader) Next() (tracker.Episode, error) {
	for r.scanner.Scan() {
		r.line++
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		ep, err := decode(line)
		if err != nil {
			return tracker.Episode{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return ep, nil
	}
	if err := r.scanner.Err(); err != nil {
		return tracker.Episode{}, fmt.Errorf("scanning episodes: %w", err)
	}
	return tracker.Episode{}, io.EOF
}

// record mirrors tracker.Episode with every field required.
type record struct {
	Score           *float64 `json:"score"`
	Loss            *float64 `json:"loss"`
	DiscountFactor  *float64 `json:"discount_factor"`
	ExplorationRate *float64 `json:"exploration_rate"`
}

func decode(line []byte) (tracker.Episode, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return tracker.Episode{}, err
	}
	if dec.More() {
		return tracker.Episode{}, errors.New("trailing data after episode")
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"score", rec.Score},
		{"loss", rec.Loss},
		{"discount_factor", rec.DiscountFactor},
		{"exploration_rate", rec.ExplorationRate},
	} {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return tracker.Episode{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	return tracker.Episode{
		Score:           *rec.Score,
		Loss:            *rec.Loss,
		DiscountFactor:  *rec.DiscountFactor,
		ExplorationRate: *rec.ExplorationRate,
	}, nil
}

// Line is the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}
