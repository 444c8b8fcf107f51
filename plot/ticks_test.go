package plot

import (
	"math"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func TestIntegerTicks(t *testing.T) {
	tests := []struct {
		n, max int
		want   []int
	}{
		{0, 10, nil},
		{1, 10, []int{0}},
		{5, 10, []int{0, 1, 2, 3, 4}},
		{11, 6, []int{0, 2, 4, 6, 8, 10}},
		{100, 5, []int{0, 50}},
		{101, 11, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{3, 0, []int{0, 2}},
	}

	for _, tt := range tests {
		got := IntegerTicks(tt.n, tt.max)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("IntegerTicks(%d, %d) = %v, want %v", tt.n, tt.max, got, tt.want)
		}
	}
}

func TestProperty_IntegerTicksBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 100000).Draw(rt, "n")
		max := rapid.IntRange(2, 50).Draw(rt, "max")

		ticks := IntegerTicks(n, max)
		if len(ticks) == 0 || len(ticks) > max {
			rt.Fatalf("got %d ticks, want 1..%d", len(ticks), max)
		}
		if ticks[0] != 0 {
			rt.Fatalf("first tick = %d, want 0", ticks[0])
		}
		for i, tick := range ticks {
			if tick < 0 || tick >= n {
				rt.Fatalf("tick %d out of range [0, %d)", tick, n)
			}
			if i > 0 && tick <= ticks[i-1] {
				rt.Fatalf("ticks not increasing: %v", ticks)
			}
		}
	})
}

func TestValueRange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"zero", []float64{0}, -0.5, 0.5},
		{"constant", []float64{10, 10}, 9.5, 10.5},
		{"spread", []float64{3, -1, 2}, -1, 3},
	}
	for _, tt := range tests {
		lo, hi := valueRange(tt.values)
		if math.Abs(lo-tt.lo) > 1e-9 || math.Abs(hi-tt.hi) > 1e-9 {
			t.Errorf("%s: valueRange = (%v, %v), want (%v, %v)", tt.name, lo, hi, tt.lo, tt.hi)
		}
	}
}
