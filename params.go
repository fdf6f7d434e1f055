package granular

import (
	"github.com/tphakala/go-granular/internal/mathutil"
	"github.com/tphakala/go-granular/internal/window"
)

// params is an immutable snapshot of every control-rate setting. Setters
// publish a modified copy; the audio goroutine only loads it.
type params struct {
	window        window.Shape
	grainPeriod   float64 // seconds
	grainVariance float64 // fraction of grainPeriod
	grainRate     float64
	bypass        bool
	gain          float64

	triggerFreq   float64 // Hz
	triggerPeriod int64   // ticks
	triggerRange  float64

	phaseStart  float64
	phaseStop   float64
	phaseRate   float64
	phaseWobble float64
	fileDur     float64 // seconds
}

func newParams(c *Config, shape window.Shape) *params {
	p := &params{
		window:        shape,
		grainPeriod:   c.GrainPeriod,
		grainVariance: c.GrainPeriodVariance,
		grainRate:     c.GrainRate,
		gain:          defaultGain,
		triggerRange:  c.TriggerRange,
		phaseStop:     1,
		phaseRate:     1,
	}
	p.setTriggerFreq(c.TriggerFreq, c.SampleRate)
	return p
}

// setTriggerFreq stores hz clamped to [minTriggerFreq, sampleRate] and the
// matching whole-tick period.
func (p *params) setTriggerFreq(hz, sampleRate float64) {
	p.triggerFreq = mathutil.Clamp(hz, minTriggerFreq, sampleRate)
	p.triggerPeriod = max(int64(sampleRate/p.triggerFreq), 1)
}

// grainFrames returns the base grain length in frames.
func (p *params) grainFrames(sampleRate float64) int64 {
	return int64(p.grainPeriod*sampleRate + 0.5)
}
