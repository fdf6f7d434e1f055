// Package interp reads sample values at fractional frame positions.
//
// The width of the interpolation kernel is chosen with a single "maxfilt"
// setting: narrow widths use linear or Hermite interpolation, wider ones a
// Kaiser-windowed sinc filter bank.
package interp

import "math"

// Interpolator reads data at a fractional frame position. When wrap is set
// positions outside the slice fold back into it; otherwise they read as
// silence.
type Interpolator interface {
	At(data []float64, pos float64, wrap bool) float64

	// Taps returns the number of input frames the kernel spans.
	Taps() int
}

// New returns the interpolator for a maxfilt width and the width actually
// used. Sinc kernels are allocated here, never on the read path.
func New(maxFilt int) (Interpolator, int) {
	switch {
	case maxFilt <= linearTaps:
		return Linear{}, linearTaps
	case maxFilt <= hermiteTaps:
		return Hermite{}, hermiteTaps
	default:
		s := NewSinc(maxFilt, 1)
		return s, s.Taps()
	}
}

// frame returns data[i] honouring the wrap policy.
func frame(data []float64, i int, wrap bool) float64 {
	n := len(data)
	if i >= 0 && i < n {
		return data[i]
	}
	if !wrap || n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return data[i]
}

// split breaks pos into its integer frame and fractional offset.
func split(pos float64) (int, float64) {
	base := math.Floor(pos)
	return int(base), pos - base
}

// Linear implements 2-point linear interpolation.
type Linear struct{}

// At implements Interpolator.
func (Linear) At(data []float64, pos float64, wrap bool) float64 {
	i, x := split(pos)
	y0 := frame(data, i, wrap)
	if x == 0 {
		return y0
	}
	y1 := frame(data, i+1, wrap)
	return y0 + (y1-y0)*x
}

// Taps implements Interpolator.
func (Linear) Taps() int { return linearTaps }

// Hermite implements 4-point, 3rd order Hermite (Catmull-Rom) interpolation.
type Hermite struct{}

// At implements Interpolator.
func (Hermite) At(data []float64, pos float64, wrap bool) float64 {
	i, x := split(pos)
	y0 := frame(data, i-1, wrap)
	y1 := frame(data, i, wrap)
	y2 := frame(data, i+1, wrap)
	y3 := frame(data, i+2, wrap)

	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*x+coefB)*x+coefC)*x + coefD
}

// Taps implements Interpolator.
func (Hermite) Taps() int { return hermiteTaps }
