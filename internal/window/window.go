// Package window provides the amplitude envelopes applied over a grain's
// lifetime.
//
// Every shape is zero at both edges and non-negative in between. Envelopes
// are served from tables built once at package initialisation, so lookups
// on the audio path are a clamp, an index and one linear interpolation.
package window

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/dsp/window"
)

// Shape selects one of the supported envelope variants.
type Shape uint8

// Supported shapes.
const (
	Blackman Shape = iota
	Hanning
	Hamming
	Bartlett
	PlanckTaper

	numShapes
)

var names = [numShapes]string{
	Blackman:    "blackman",
	Hanning:     "hanning",
	Hamming:     "hamming",
	Bartlett:    "bartlett",
	PlanckTaper: "plancktaper",
}

// lookup maps accepted names, including aliases, to shapes.
var lookup = map[string]Shape{
	"blackman":    Blackman,
	"hanning":     Hanning,
	"hann":        Hanning,
	"hamming":     Hamming,
	"bartlett":    Bartlett,
	"plancktaper": PlanckTaper,
}

var tables [numShapes][]float64

func init() {
	tables[Blackman] = build(window.Blackman)
	tables[Hanning] = build(window.Hann)
	tables[Hamming] = build(func(seq []float64) []float64 {
		// Hamming has a pedestal at its edges; lower it to zero and
		// renormalise the peak.
		seq = window.Hamming(seq)
		edge := seq[0]
		for i := range seq {
			seq[i] = (seq[i] - edge) / (1 - edge)
		}
		return seq
	})
	tables[Bartlett] = build(window.Triangular)
	tables[PlanckTaper] = build(planck)
}

// build fills a table of ones through fn and clears rounding noise below
// zero.
func build(fn func([]float64) []float64) []float64 {
	seq := make([]float64, tableLen)
	for i := range seq {
		seq[i] = 1
	}
	seq = fn(seq)
	for i, v := range seq {
		seq[i] = max(v, 0)
	}
	seq[0], seq[lastIdx] = 0, 0
	return seq
}

// planck applies a Planck-taper window to seq in place.
func planck(seq []float64) []float64 {
	n := float64(len(seq) - 1)
	for i := range seq {
		seq[i] *= planckAt(float64(i) / n)
	}
	return seq
}

func planckAt(x float64) float64 {
	if x > 0.5 {
		x = 1 - x
	}
	switch {
	case x <= 0:
		return 0
	case x >= planckEpsilon:
		return 1
	}
	z := planckEpsilon/x - planckEpsilon/(planckEpsilon-x)
	return 1 / (math.Exp(z) + 1)
}

// Envelope returns the amplitude multiplier of shape s at progress p.
// Progress is clamped to [0, 1]; unknown shapes read as Blackman.
func Envelope(p float64, s Shape) float64 {
	if s >= numShapes {
		s = Blackman
	}
	t := tables[s]
	switch {
	case !(p > 0):
		return t[0]
	case p >= 1:
		return t[lastIdx]
	}
	x := p * lastIdx
	i := int(x)
	if i >= lastIdx {
		return t[lastIdx]
	}
	frac := x - float64(i)
	return t[i] + (t[i+1]-t[i])*frac
}

// Parse resolves a shape name. Matching ignores case and surrounding space.
func Parse(name string) (Shape, bool) {
	s, ok := lookup[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Valid reports whether s is a supported shape.
func (s Shape) Valid() bool { return s < numShapes }

// String returns the canonical name of s.
func (s Shape) String() string {
	if s >= numShapes {
		return "unknown"
	}
	return names[s]
}

// Shapes returns every supported shape in declaration order.
func Shapes() []Shape {
	out := make([]Shape, numShapes)
	for i := range out {
		out[i] = Shape(i)
	}
	return out
}

// Names returns the canonical names of every supported shape.
func Names() []string {
	return append([]string(nil), names[:]...)
}
