// Package phasor generates the read position grains are spawned from.
//
// The phase is normalised to [0, 1) over the length of the buffer. Each
// Tick advances it so that a rate of 1 crosses the buffer at its native
// speed, wrapping inside the configured [start, stop) window.
package phasor

import (
	"github.com/tphakala/go-granular/internal/jitter"
	"github.com/tphakala/go-granular/internal/mathutil"
)

// Phasor is a wrapping phase accumulator with a randomised read-out.
// It is not safe for concurrent use.
type Phasor struct {
	sampleRate float64
	fileDur    float64

	start, stop float64
	rate        float64
	wobble      float64

	phase float64
	rng   *jitter.Source
}

// New returns a phasor for a stream at sampleRate frames per second, drawing
// wobble from rng. The window spans the whole buffer and the rate is 1.
func New(sampleRate float64, rng *jitter.Source) *Phasor {
	return &Phasor{
		sampleRate: sampleRate,
		stop:       1,
		rate:       1,
		rng:        rng,
	}
}

// SetFileDur binds the traversal length in seconds. Negative values read
// as 0, which freezes the phase.
func (p *Phasor) SetFileDur(seconds float64) float64 {
	p.fileDur = max(seconds, 0)
	return p.fileDur
}

// SetStart sets the lower phase bound, clamped to [0, 1].
func (p *Phasor) SetStart(v float64) float64 {
	p.start = mathutil.Clamp(v, 0, 1)
	return p.start
}

// SetStop sets the upper phase bound, clamped to [0, 1]. Bounds given in
// reverse order are swapped when ticking.
func (p *Phasor) SetStop(v float64) float64 {
	p.stop = mathutil.Clamp(v, 0, 1)
	return p.stop
}

// SetRate sets the traversal speed as a multiple of native speed. Negative
// rates run backwards.
func (p *Phasor) SetRate(v float64) float64 {
	p.rate = v
	return p.rate
}

// SetWobble sets the random read-out spread as a fraction of the buffer,
// clamped to [0, 1].
func (p *Phasor) SetWobble(v float64) float64 {
	p.wobble = mathutil.Clamp(v, 0, 1)
	return p.wobble
}

// Configured values, as stored by the setters above.

func (p *Phasor) FileDur() float64 { return p.fileDur }
func (p *Phasor) Start() float64   { return p.start }
func (p *Phasor) Stop() float64    { return p.stop }
func (p *Phasor) Rate() float64    { return p.rate }
func (p *Phasor) Wobble() float64  { return p.wobble }

// Phase returns the current normalised phase.
func (p *Phasor) Phase() float64 { return p.phase }

func (p *Phasor) bounds() (float64, float64) {
	return min(p.start, p.stop), max(p.start, p.stop)
}

// Tick advances the phase by one frame. With equal bounds the phase is held
// at the bound.
func (p *Phasor) Tick() {
	lo, hi := p.bounds()
	if hi <= lo {
		p.phase = lo
		return
	}
	var inc float64
	if frames := p.fileDur * p.sampleRate; frames > 0 {
		inc = p.rate / frames
	}
	p.phase = mathutil.Wrap(p.phase+inc, lo, hi)
}

// Sample returns the read position in frames: the phase, perturbed by up
// to ±wobble and wrapped into [0, 1), scaled to the buffer length.
func (p *Phasor) Sample() float64 {
	ph := p.phase
	if p.wobble > 0 {
		ph = mathutil.Wrap(ph+p.wobble*p.rng.Bipolar(), 0, 1)
	}
	return ph * p.fileDur * p.sampleRate
}

// Reset moves the phase back to the lower bound.
func (p *Phasor) Reset() {
	p.phase, _ = p.bounds()
}
