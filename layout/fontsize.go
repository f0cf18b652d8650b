package layout

// findFontSize returns the largest size in {max, max-step, max-2*step, ...}
// that is at least min and satisfies fits. Sizes are tried strictly
// descending and the first success wins. fits is assumed monotonic in size;
// the search does not verify that.
func findFontSize(min, max, step float64, fits func(size float64) bool) (float64, bool) {
	const eps = 1e-9
	for size := max; size >= min-eps; size -= step {
		if fits(size) {
			return size, true
		}
	}
	return 0, false
}
