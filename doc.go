// Package granular provides a real-time granular synthesis voice in pure Go.
//
// An [Engine] reads from a sampled audio buffer. A phasor sweeps a read
// position through the buffer while a periodic trigger spawns short
// overlapping grains at that position. Each grain plays its own excerpt at
// its own rate under a fade-in/fade-out window, and the engine sums every
// active grain into one output sample per tick.
//
// # Quick Start
//
//	e, err := granular.NewSimple(granular.RateCD, "voice.wav")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e.SetTriggerFreq(40)
//	e.SetGrainPeriod(0.08)
//	e.SetGrainPeriodVariance(0.25)
//	e.SetGrainPhaseRate(0.5)
//
//	out := make([]float64, 1024)
//	for {
//	    e.Render(out)
//	    writeOutput(out)
//	}
//
// # Parameters
//
// Units follow the usual synthesis conventions:
//
//   - Grain period in seconds, variance as a fraction of the period.
//   - Trigger frequency in Hz; the engine converts it to a period in ticks.
//     Trigger range is the timing jitter as a fraction of that period.
//   - Rates are multiples of native playback speed. Negative grain rates
//     play grains backwards.
//   - Phase start, stop and wobble are normalised to the buffer length.
//
// Setters return the value actually stored after clamping, and every
// setter has a matching getter.
//
// # Windows
//
// Grains are shaped by one of [WindowBlackman], [WindowHanning],
// [WindowHamming], [WindowBartlett] or [WindowPlanckTaper], selected by
// name with [Engine.SetGrainWindow]. Every window is zero at both ends, so
// grains never click in or out. Hamming is rescaled to meet that.
//
// # Real-time Use
//
// Tick, Process and Render are meant for a single audio goroutine. They do
// not lock, block or allocate (unless spawn tracing is enabled with
// [VerbosityDebug]). All grain storage is reserved by [New]; when every
// slot is busy new spawns are dropped and counted in [Stats]. Saturation
// warnings are logged by [Engine.Report] on the calling goroutine, never
// from Tick.
//
// Setters may be called from any goroutine while audio runs. Each setter
// publishes an immutable parameter snapshot, so a tick never observes a
// half-applied update. Phasor and trigger changes take effect at the start
// of the next tick.
//
// # Bypass
//
// With bypass enabled the engine ignores grains and plays the buffer
// directly at its own rate, loop and position settings ([Engine.SetRate],
// [Engine.SetLoop], [Engine.SetPos]).
package granular
