package mathutil

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap folds v into the half-open interval [lo, hi). When the interval is
// empty lo is returned.
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	if v >= lo && v < hi {
		return v
	}
	v = math.Mod(v-lo, span)
	if v < 0 {
		v += span
	}
	// math.Mod can land exactly on span for tiny negative inputs.
	if v >= span {
		v = 0
	}
	return lo + v
}
