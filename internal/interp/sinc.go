package interp

import (
	"github.com/tphakala/go-granular/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// Sinc is a Kaiser-windowed sinc interpolator backed by a polyphase
// coefficient table. Coefficients between table rows are linearly
// interpolated.
//
// A Sinc keeps a scratch window for reads near the buffer edges, so a
// single instance must not be used from more than one goroutine at a time.
type Sinc struct {
	taps    int
	half    int
	rows    [][]float64 // sincPhases+1 rows of taps coefficients
	scratch []float64
}

// NewSinc designs a sinc interpolator spanning taps frames. cutoff is the
// normalised lowpass corner (1 = Nyquist of the data); values below 1 are
// used when reading data faster than its native rate.
func NewSinc(taps int, cutoff float64) *Sinc {
	taps &= evenMask
	taps = min(max(taps, MinSincTaps), MaxSincTaps)
	cutoff = mathutil.Clamp(cutoff, 0, 1)
	if cutoff == 0 {
		cutoff = 1
	}

	s := &Sinc{
		taps:    taps,
		half:    taps / halfDivisor,
		rows:    make([][]float64, sincPhases+1),
		scratch: make([]float64, taps),
	}

	beta := mathutil.KaiserBeta(sincAttenuation)
	for p := range s.rows {
		frac := float64(p) / sincPhases
		row := make([]float64, taps)
		for j := range row {
			// Tap j weighs frame (i - half + 1 + j) for a read at i + frac.
			x := float64(j-s.half+1) - frac
			row[j] = cutoff * mathutil.Sinc(cutoff*x) * mathutil.KaiserWindowAt(x/float64(s.half), beta)
		}

		// Normalise each phase to unity DC gain.
		if sum := f64.Sum(row); sum > sumThreshold || sum < -sumThreshold {
			f64.Scale(row, row, 1/sum)
		}
		s.rows[p] = row
	}
	return s
}

// Taps implements Interpolator.
func (s *Sinc) Taps() int { return s.taps }

// At implements Interpolator.
func (s *Sinc) At(data []float64, pos float64, wrap bool) float64 {
	i, x := split(pos)
	first := i - s.half + 1

	var window []float64
	if first >= 0 && first+s.taps <= len(data) {
		window = data[first : first+s.taps]
	} else {
		for j := range s.scratch {
			s.scratch[j] = frame(data, first+j, wrap)
		}
		window = s.scratch
	}

	phase := x * sincPhases
	p := int(phase)
	if p >= sincPhases {
		p = sincPhases - 1
	}
	mix := phase - float64(p)

	lo := f64.DotProduct(s.rows[p], window)
	if mix == 0 {
		return lo
	}
	hi := f64.DotProduct(s.rows[p+1], window)
	return lo + (hi-lo)*mix
}
