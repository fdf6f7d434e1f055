package granular

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/tphakala/go-granular/internal/grain"
	"github.com/tphakala/go-granular/internal/jitter"
	"github.com/tphakala/go-granular/internal/mathutil"
	"github.com/tphakala/go-granular/internal/phasor"
	"github.com/tphakala/go-granular/internal/sndbuf"
	"github.com/tphakala/go-granular/internal/trigger"
	"github.com/tphakala/go-granular/internal/window"
	"github.com/tphakala/simd/f64"
)

// Engine is a granular voice. One goroutine drives Tick, Process or Render;
// setters, getters, Read, Load, Reset and Stats may be called from other
// goroutines at the same time.
type Engine struct {
	sampleRate float64
	logger     *slog.Logger
	verbosity  atomic.Int32

	mu     sync.Mutex // serialises snapshot writers
	params atomic.Pointer[params]
	reset  atomic.Bool

	// Owned by the audio goroutine.
	applied   *params
	pool      *grain.Pool
	phasor    *phasor.Phasor
	trigger   *trigger.Trigger
	rng       *jitter.Source
	saturated bool

	buf *sndbuf.Buffer

	ticks   atomic.Uint64
	spawned atomic.Uint64
	dropped atomic.Uint64
	active  atomic.Int64

	episodes atomic.Uint64 // saturation onsets, counted by Tick
	reported atomic.Uint64 // onsets already logged by Report
}

// Stats is a snapshot of engine diagnostics.
type Stats struct {
	Ticks         uint64
	ActiveGrains  int
	Capacity      int
	SpawnedGrains uint64
	DroppedSpawns uint64

	// SaturationEpisodes counts how often the pool filled up. Consecutive
	// dropped spawns belong to one episode.
	SaturationEpisodes uint64
}

// New creates an engine from config. The buffer starts empty; load audio
// with Read or Load.
func New(config *Config) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	shape, _ := window.Parse(config.Window)

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rng := jitter.New(config.Seed)
	e := &Engine{
		sampleRate: config.SampleRate,
		logger:     logger,
		pool:       grain.NewPool(config.PoolCapacity),
		phasor:     phasor.New(config.SampleRate, rng),
		trigger:    trigger.New(rng),
		rng:        rng,
		buf:        sndbuf.New(config.SampleRate),
	}
	e.verbosity.Store(int32(config.Verbosity))
	e.buf.SetMaxFilt(config.MaxFilt)
	e.params.Store(newParams(config, shape))

	logger.Debug("granular engine created",
		"sample_rate", config.SampleRate,
		"capacity", config.PoolCapacity,
		"window", shape.String())
	return e, nil
}

// Tick produces one output sample. In bypass mode it returns the buffer's
// own playback. Otherwise it advances the phasor, spawns a grain when the
// trigger fires, sums every active grain and reclaims the finished ones.
// The input sample is passed to the trigger, which currently ignores it.
//
// Tick never blocks and, below VerbosityDebug, never allocates.
func (e *Engine) Tick(in float64) float64 {
	p := e.params.Load()
	if p != e.applied {
		e.apply(p)
	}
	if e.reset.CompareAndSwap(true, false) {
		e.clear()
	}
	e.ticks.Add(1)

	if p.bypass {
		return e.buf.Sample()
	}

	e.phasor.Tick()
	if e.trigger.SampleAndTick(in) {
		e.spawn(p)
	}
	out := e.pool.Mix(e.buf)
	e.pool.Prune()
	e.active.Store(int64(e.pool.ActiveCount()))
	return out
}

// apply pushes a new snapshot into the phasor and trigger.
func (e *Engine) apply(p *params) {
	e.phasor.SetFileDur(p.fileDur)
	e.phasor.SetStart(p.phaseStart)
	e.phasor.SetStop(p.phaseStop)
	e.phasor.SetRate(p.phaseRate)
	e.phasor.SetWobble(p.phaseWobble)
	e.trigger.SetPeriod(p.triggerPeriod)
	e.trigger.SetRange(p.triggerRange)
	e.applied = p
}

func (e *Engine) clear() {
	e.pool.Reset()
	e.trigger.Reset()
	e.phasor.Reset()
	e.saturated = false
	e.active.Store(0)
}

func (e *Engine) spawn(p *params) {
	h, ok := e.pool.Allocate()
	if !ok {
		e.dropped.Add(1)
		if !e.saturated {
			e.saturated = true
			e.episodes.Add(1)
		}
		return
	}
	e.saturated = false

	frames := p.grainFrames(e.sampleRate)
	start := int64(e.phasor.Sample())
	stop := start + frames + e.rng.HalfRange(int64(float64(frames)*p.grainVariance))
	stop = max(stop, start)

	e.pool.Init(h, start, stop, p.grainRate, p.window)
	e.spawned.Add(1)

	if Verbosity(e.verbosity.Load()) >= VerbosityDebug {
		e.logger.Debug("new grain",
			"start", start,
			"stop", stop,
			"rate", p.grainRate,
			"active", e.pool.ActiveCount(),
			"capacity", e.pool.Capacity())
	}
}

// Process runs one Tick per input sample and writes the results, scaled by
// the output gain, to out. It returns the number of samples written.
func (e *Engine) Process(in, out []float64) int {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = e.Tick(in[i])
	}
	e.applyGain(out[:n])
	return n
}

// Render fills out with Ticks of silent input, scaled by the output gain.
func (e *Engine) Render(out []float64) {
	for i := range out {
		out[i] = e.Tick(0)
	}
	e.applyGain(out)
}

func (e *Engine) applyGain(out []float64) {
	if g := e.params.Load().gain; g != 1 {
		f64.Scale(out, out, g)
	}
}

// Reset silences every grain and rearms the trigger and phasor. It takes
// effect at the start of the next Tick.
func (e *Engine) Reset() {
	e.reset.Store(true)
}

// Stats returns the current diagnostics and reports any new saturation
// episodes to the logger.
func (e *Engine) Stats() Stats {
	e.Report()
	return Stats{
		Ticks:              e.ticks.Load(),
		ActiveGrains:       int(e.active.Load()),
		Capacity:           e.pool.Capacity(),
		SpawnedGrains:      e.spawned.Load(),
		DroppedSpawns:      e.dropped.Load(),
		SaturationEpisodes: e.episodes.Load(),
	}
}

// Report logs saturation episodes Tick recorded since the last call, at
// VerbosityInfo and above. Tick never logs saturation itself; call Report
// (or Stats) from a control goroutine.
func (e *Engine) Report() {
	n := e.episodes.Load()
	prev := e.reported.Swap(n)
	if n <= prev || e.Verbosity() < VerbosityInfo {
		return
	}
	e.logger.Warn("too many active grains",
		"capacity", e.pool.Capacity(),
		"episodes", n-prev,
		"dropped", e.dropped.Load())
}

// Capacity returns the maximum number of simultaneous grains.
func (e *Engine) Capacity() int { return e.pool.Capacity() }

// SampleRate returns the rate Tick is driven at.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Read loads a WAV file into the buffer and binds the phasor to its
// duration. On failure the previous buffer and settings stay in place.
func (e *Engine) Read(path string) error {
	if err := e.buf.ReadHeader(path); err != nil {
		return fmt.Errorf("%w: %w", ErrReadBuffer, err)
	}
	e.bindFile()
	e.logger.Info("sample buffer loaded",
		"path", path,
		"seconds", e.buf.LengthSeconds(),
		"channels", e.buf.NChan(),
		"file_rate", e.buf.FileRate())
	return nil
}

// Load replaces the buffer with planar channels recorded at fileRate and
// binds the phasor to their duration.
func (e *Engine) Load(channels [][]float64, fileRate int) error {
	if err := e.buf.Load(channels, fileRate); err != nil {
		return fmt.Errorf("%w: %w", ErrReadBuffer, err)
	}
	e.bindFile()
	return nil
}

func (e *Engine) bindFile() {
	seconds := e.buf.LengthSeconds()
	e.update(func(p *params) { p.fileDur = seconds })
}

// FileDur returns the buffer duration in seconds.
func (e *Engine) FileDur() float64 { return e.params.Load().fileDur }

// NChan returns the channel count of the loaded file.
func (e *Engine) NChan() int { return e.buf.NChan() }

// SetVerbosity changes audio-path diagnostics. Out of range values are
// clamped.
func (e *Engine) SetVerbosity(v Verbosity) Verbosity {
	v = min(max(v, VerbosityQuiet), VerbosityDebug)
	e.verbosity.Store(int32(v))
	return v
}

// Verbosity returns the audio-path diagnostics level.
func (e *Engine) Verbosity() Verbosity { return Verbosity(e.verbosity.Load()) }

// update publishes a modified copy of the parameter snapshot.
func (e *Engine) update(fn func(p *params)) *params {
	e.mu.Lock()
	defer e.mu.Unlock()
	next := *e.params.Load()
	fn(&next)
	e.params.Store(&next)
	return &next
}

// clamp01 is shared by the normalised setters.
func clamp01(v float64) float64 { return mathutil.Clamp(v, 0, 1) }
