// Package grain implements the grain state machine and the fixed-capacity
// pool that owns every grain of an engine.
package grain

import (
	"github.com/tphakala/go-granular/internal/mathutil"
	"github.com/tphakala/go-granular/internal/window"
)

// Source supplies buffer samples at fractional frame positions. Positions
// outside the buffer wrap.
type Source interface {
	At(pos float64) float64
}

// Grain plays one windowed excerpt [start, stop] of a buffer.
type Grain struct {
	start, stop int64
	rate        float64
	shape       window.Shape
	pos         float64
	live        bool
	done        bool
}

// Init resets the grain to play frames start through stop at rate with the
// given envelope. A stop before start is raised to start. Rates with a
// magnitude below MinRate are raised to MinRate keeping their sign, zero
// counts as forward. Negative rates play the span backwards from stop.
func (g *Grain) Init(start, stop int64, rate float64, shape window.Shape) {
	if stop < start {
		stop = start
	}
	switch {
	case rate >= 0 && rate < MinRate:
		rate = MinRate
	case rate < 0 && rate > -MinRate:
		rate = -MinRate
	}
	g.start, g.stop = start, stop
	g.rate = rate
	g.shape = shape
	g.pos = float64(start)
	if rate < 0 {
		g.pos = float64(stop)
	}
	g.live = true
	g.done = false
}

// SampleAndTick returns the enveloped sample at the cursor and advances the
// cursor by the grain's rate. The call that moves the cursor past the end of
// the span still returns its sample and marks the grain finished.
func (g *Grain) SampleAndTick(src Source) float64 {
	if !g.live || g.done {
		return 0
	}
	v := src.At(g.pos) * window.Envelope(g.Progress(), g.shape)

	g.pos += g.rate
	if g.rate > 0 {
		g.done = g.pos > float64(g.stop)
	} else {
		g.done = g.pos < float64(g.start)
	}
	return v
}

// Progress returns how far the cursor is through the span, in [0, 1].
func (g *Grain) Progress() float64 {
	span := float64(g.stop - g.start)
	if span <= 0 {
		return 0
	}
	return mathutil.Clamp((g.pos-float64(g.start))/span, 0, 1)
}

// Done reports whether the grain has played its whole span.
func (g *Grain) Done() bool { return g.done }

// Start returns the first frame of the grain.
func (g *Grain) Start() int64 { return g.start }

// Stop returns the frame the grain ends at.
func (g *Grain) Stop() int64 { return g.stop }

// Rate returns the signed playback speed.
func (g *Grain) Rate() float64 { return g.rate }

// Shape returns the envelope applied over the grain.
func (g *Grain) Shape() window.Shape { return g.shape }

// Position returns the read cursor in frames.
func (g *Grain) Position() float64 { return g.pos }

// Span returns the number of frames between start and stop.
func (g *Grain) Span() int64 { return g.stop - g.start }
