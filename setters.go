package granular

import (
	"fmt"

	"github.com/tphakala/go-granular/internal/window"
)

// Window selects a grain envelope shape.
type Window = window.Shape

// Supported grain windows.
const (
	WindowBlackman    = window.Blackman
	WindowHanning     = window.Hanning
	WindowHamming     = window.Hamming
	WindowBartlett    = window.Bartlett
	WindowPlanckTaper = window.PlanckTaper
)

// WindowNames returns the canonical names accepted by SetGrainWindow.
// "hann" is also accepted as an alias of "hanning".
func WindowNames() []string { return window.Names() }

// SetGrainWindow selects the grain envelope by name. An unknown name
// returns ErrUnknownWindow and keeps the current window. New grains pick
// up the change; grains already playing keep their envelope.
func (e *Engine) SetGrainWindow(name string) error {
	shape, ok := window.Parse(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}
	e.update(func(p *params) { p.window = shape })
	return nil
}

// GrainWindow returns the current grain envelope.
func (e *Engine) GrainWindow() Window { return e.params.Load().window }

// SetTriggerFreq sets the grain spawn rate in Hz, clamped to
// [0.001, sample rate]. The spawn period becomes the whole number of ticks
// per cycle.
func (e *Engine) SetTriggerFreq(hz float64) float64 {
	return e.update(func(p *params) { p.setTriggerFreq(hz, e.sampleRate) }).triggerFreq
}

// TriggerFreq returns the grain spawn rate in Hz.
func (e *Engine) TriggerFreq() float64 { return e.params.Load().triggerFreq }

// TriggerPeriod returns the spawn period in ticks.
func (e *Engine) TriggerPeriod() int64 { return e.params.Load().triggerPeriod }

// SetTriggerRange sets spawn timing jitter as a fraction of the period,
// clamped to [0, 1].
func (e *Engine) SetTriggerRange(fraction float64) float64 {
	return e.update(func(p *params) { p.triggerRange = clamp01(fraction) }).triggerRange
}

// TriggerRange returns the spawn timing jitter fraction.
func (e *Engine) TriggerRange() float64 { return e.params.Load().triggerRange }

// SetGrainPeriod sets the grain length in seconds. Negative values are
// stored as 0.
func (e *Engine) SetGrainPeriod(seconds float64) float64 {
	return e.update(func(p *params) { p.grainPeriod = max(seconds, 0) }).grainPeriod
}

// GrainPeriod returns the grain length in seconds.
func (e *Engine) GrainPeriod() float64 { return e.params.Load().grainPeriod }

// SetGrainPeriodVariance sets the random spread of grain length as a
// fraction of the grain period, clamped to [0, 1].
func (e *Engine) SetGrainPeriodVariance(fraction float64) float64 {
	return e.update(func(p *params) { p.grainVariance = clamp01(fraction) }).grainVariance
}

// GrainPeriodVariance returns the grain length spread.
func (e *Engine) GrainPeriodVariance() float64 { return e.params.Load().grainVariance }

// SetGrainRate sets grain playback speed as a multiple of native speed.
// Negative rates play grains backwards. Grains never play slower than
// 0.001 in either direction.
func (e *Engine) SetGrainRate(rate float64) float64 {
	return e.update(func(p *params) { p.grainRate = rate }).grainRate
}

// GrainRate returns the grain playback speed.
func (e *Engine) GrainRate() float64 { return e.params.Load().grainRate }

// SetGrainPhaseStart sets the lower bound of the spawn position window,
// normalised to the buffer and clamped to [0, 1].
func (e *Engine) SetGrainPhaseStart(v float64) float64 {
	return e.update(func(p *params) { p.phaseStart = clamp01(v) }).phaseStart
}

// GrainPhaseStart returns the lower bound of the spawn position window.
func (e *Engine) GrainPhaseStart() float64 { return e.params.Load().phaseStart }

// SetGrainPhaseStop sets the upper bound of the spawn position window,
// normalised to the buffer and clamped to [0, 1].
func (e *Engine) SetGrainPhaseStop(v float64) float64 {
	return e.update(func(p *params) { p.phaseStop = clamp01(v) }).phaseStop
}

// GrainPhaseStop returns the upper bound of the spawn position window.
func (e *Engine) GrainPhaseStop() float64 { return e.params.Load().phaseStop }

// SetGrainPhaseRate sets how fast the spawn position moves through the
// buffer, as a multiple of native speed.
func (e *Engine) SetGrainPhaseRate(rate float64) float64 {
	return e.update(func(p *params) { p.phaseRate = rate }).phaseRate
}

// GrainPhaseRate returns the spawn position speed.
func (e *Engine) GrainPhaseRate() float64 { return e.params.Load().phaseRate }

// SetGrainPhaseWobble sets the random spread of spawn positions as a
// fraction of the buffer, clamped to [0, 1].
func (e *Engine) SetGrainPhaseWobble(v float64) float64 {
	return e.update(func(p *params) { p.phaseWobble = clamp01(v) }).phaseWobble
}

// GrainPhaseWobble returns the spawn position spread.
func (e *Engine) GrainPhaseWobble() float64 { return e.params.Load().phaseWobble }

// SetBypass switches between grain synthesis and plain buffer playback.
func (e *Engine) SetBypass(on bool) bool {
	return e.update(func(p *params) { p.bypass = on }).bypass
}

// Bypass reports whether the engine plays the buffer directly.
func (e *Engine) Bypass() bool { return e.params.Load().bypass }

// SetGain sets the gain Process and Render apply. Negative values are
// stored as 0.
func (e *Engine) SetGain(g float64) float64 {
	return e.update(func(p *params) { p.gain = max(g, 0) }).gain
}

// Gain returns the block output gain.
func (e *Engine) Gain() float64 { return e.params.Load().gain }

// Buffer passthrough. These drive the bypass playback of the buffer and
// its interpolation.

// SetLoop sets whether bypass playback wraps at the buffer ends.
func (e *Engine) SetLoop(loop bool) bool { return e.buf.SetLoop(loop) }

// Loop reports whether bypass playback wraps.
func (e *Engine) Loop() bool { return e.buf.Loop() }

// SetPos seeks bypass playback to a frame, clamped to the buffer.
func (e *Engine) SetPos(frames float64) float64 { return e.buf.SetPosition(frames) }

// Pos returns the bypass playback position in frames.
func (e *Engine) Pos() float64 { return e.buf.Position() }

// SetPhase seeks bypass playback to a normalised position in [0, 1].
func (e *Engine) SetPhase(phase float64) float64 { return e.buf.SetPhase(phase) }

// Phase returns the bypass playback position normalised to [0, 1].
func (e *Engine) Phase() float64 { return e.buf.Phase() }

// SetRate sets bypass playback speed.
func (e *Engine) SetRate(rate float64) float64 { return e.buf.SetRate(rate) }

// Rate returns bypass playback speed.
func (e *Engine) Rate() float64 { return e.buf.Rate() }

// SetMaxFilt sets the buffer interpolation width and returns the width in
// use: up to 2 is linear, up to 4 is cubic, wider is a windowed sinc of
// even width up to 64.
func (e *Engine) SetMaxFilt(width int) int { return e.buf.SetMaxFilt(width) }

// MaxFilt returns the buffer interpolation width.
func (e *Engine) MaxFilt() int { return e.buf.MaxFilt() }
