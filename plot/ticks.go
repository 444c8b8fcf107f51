package plot

// IntegerTicks picks at most maxTicks episode indices in [0, n) to label
// an x axis. Ticks start at 0 and are spaced by a 1-2-5 step, so every
// label is a whole episode number.
func IntegerTicks(n, maxTicks int) []int {
	if n <= 0 {
		return nil
	}
	if maxTicks < 2 {
		maxTicks = 2
	}
	if n <= maxTicks {
		ticks := make([]int, n)
		for i := range ticks {
			ticks[i] = i
		}
		return ticks
	}

	raw := (n - 1 + maxTicks - 2) / (maxTicks - 1)
	step := niceStep(raw)

	ticks := make([]int, 0, maxTicks)
	for t := 0; t <= n-1; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}

func niceStep(raw int) int {
	if raw < 1 {
		return 1
	}
	for mag := 1; ; mag *= 10 {
		for _, m := range []int{1, 2, 5} {
			if m*mag >= raw {
				return m * mag
			}
		}
	}
}
