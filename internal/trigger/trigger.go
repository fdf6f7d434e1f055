// Package trigger produces the periodic spawn events that time grain
// creation.
package trigger

import (
	"github.com/tphakala/go-granular/internal/jitter"
	"github.com/tphakala/go-granular/internal/mathutil"
)

// Trigger is a countdown that fires every period ticks, offset at each fire
// by a fresh random jitter of up to range×period ticks either way.
// It is not safe for concurrent use.
type Trigger struct {
	period    int64
	spread    float64
	remaining int64
	rng       *jitter.Source
}

// New returns a trigger that fires on every tick until configured.
func New(rng *jitter.Source) *Trigger {
	return &Trigger{period: 1, rng: rng}
}

// SetPeriod sets the base interval in ticks, at least 1. The new period
// applies from the next fire.
func (t *Trigger) SetPeriod(ticks int64) int64 {
	t.period = max(ticks, 1)
	return t.period
}

// SetRange sets the jitter as a fraction of the period, clamped to [0, 1].
func (t *Trigger) SetRange(fraction float64) float64 {
	t.spread = mathutil.Clamp(fraction, 0, 1)
	return t.spread
}

// Period returns the base interval in ticks.
func (t *Trigger) Period() int64 { return t.period }

// Range returns the jitter fraction.
func (t *Trigger) Range() float64 { return t.spread }

// SampleAndTick advances the countdown by one tick and reports whether it
// fired. The first tick after construction or Reset always fires. The input
// sample is not used by the time-driven policy.
func (t *Trigger) SampleAndTick(_ float64) bool {
	fired := false
	if t.remaining <= 0 {
		fired = true
		t.remaining = t.nextInterval()
	}
	t.remaining--
	return fired
}

// nextInterval draws the ticks until the following fire. The jitter bound
// is truncated so the interval never leaves period×(1±range).
func (t *Trigger) nextInterval() int64 {
	bound := int64(t.spread * float64(t.period))
	return max(t.period+t.rng.HalfRange(bound), 1)
}

// Reset rearms the trigger to fire on the next tick.
func (t *Trigger) Reset() {
	t.remaining = 0
}
