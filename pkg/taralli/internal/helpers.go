package internal

// Clamp bounds v to [lo, hi]. lo wins when the range is inverted.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
