package granular

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tphakala/go-granular/internal/grain"
	"github.com/tphakala/go-granular/internal/sndbuf"
	"github.com/tphakala/go-granular/internal/window"
)

// Common errors returned by the engine.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid granular configuration")

	// ErrUnknownWindow indicates a window name outside the supported set.
	ErrUnknownWindow = errors.New("unknown grain window")

	// ErrReadBuffer indicates the sample buffer could not be loaded.
	ErrReadBuffer = errors.New("failed to read sample buffer")
)

// Verbosity selects which diagnostics the audio path emits.
type Verbosity int

const (
	// VerbosityQuiet emits nothing from the audio path.
	VerbosityQuiet Verbosity = iota

	// VerbosityInfo lets Report and Stats log pool saturation once per
	// saturation episode.
	VerbosityInfo

	// VerbosityDebug also traces every spawned grain. Tracing allocates
	// and is meant for offline inspection, not live playback.
	VerbosityDebug
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityInfo:
		return "info"
	case VerbosityDebug:
		return "debug"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// Config holds engine configuration.
type Config struct {
	// SampleRate is the rate Tick is called at, in Hz.
	SampleRate float64

	// PoolCapacity is the maximum number of simultaneous grains.
	PoolCapacity int

	// Seed initialises the random source behind trigger jitter, grain
	// length variance and phasor wobble. Equal seeds render equal output.
	Seed uint64

	// Verbosity selects audio-path diagnostics.
	Verbosity Verbosity

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger

	// Window is the initial grain window name.
	Window string

	// GrainPeriod is the grain length in seconds.
	GrainPeriod float64

	// GrainPeriodVariance is the random spread of the grain length as a
	// fraction of GrainPeriod.
	GrainPeriodVariance float64

	// GrainRate is the grain playback speed as a multiple of native speed.
	GrainRate float64

	// TriggerFreq is the grain spawn rate in Hz.
	TriggerFreq float64

	// TriggerRange is the spawn timing jitter as a fraction of the period.
	TriggerRange float64

	// MaxFilt is the buffer interpolation width.
	MaxFilt int
}

// DefaultConfig returns the default configuration for an engine running at
// sampleRate: 512 grains, Blackman window, 0.2 s grains at native speed
// spawned 10 times a second.
func DefaultConfig(sampleRate float64) Config {
	return Config{
		SampleRate:   sampleRate,
		PoolCapacity: grain.DefaultCapacity,
		Seed:         1,
		Window:       defaultWindow,
		GrainPeriod:  defaultGrainPeriod,
		GrainRate:    defaultGrainRate,
		TriggerFreq:  defaultTriggerFreq,
		MaxFilt:      sndbuf.DefaultMaxFilt,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate <= 0 || c.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate must be in (0, %d]", ErrInvalidConfig, maxSampleRate)
	}

	if c.PoolCapacity < 1 || c.PoolCapacity > maxPoolCapacity {
		return fmt.Errorf("%w: pool capacity must be 1-%d", ErrInvalidConfig, maxPoolCapacity)
	}

	if c.Verbosity < VerbosityQuiet || c.Verbosity > VerbosityDebug {
		return fmt.Errorf("%w: unknown verbosity %d", ErrInvalidConfig, int(c.Verbosity))
	}

	if _, ok := window.Parse(c.Window); !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnknownWindow, c.Window)
	}

	if c.GrainPeriod < 0 {
		return fmt.Errorf("%w: grain period must not be negative", ErrInvalidConfig)
	}

	if c.GrainPeriodVariance < 0 || c.GrainPeriodVariance > 1 {
		return fmt.Errorf("%w: grain period variance must be in [0, 1]", ErrInvalidConfig)
	}

	if c.TriggerFreq < minTriggerFreq || c.TriggerFreq > c.SampleRate {
		return fmt.Errorf("%w: trigger frequency must be in [%v, sample rate]", ErrInvalidConfig, minTriggerFreq)
	}

	if c.TriggerRange < 0 || c.TriggerRange > 1 {
		return fmt.Errorf("%w: trigger range must be in [0, 1]", ErrInvalidConfig)
	}

	if c.MaxFilt < 0 {
		return fmt.Errorf("%w: maxfilt must not be negative", ErrInvalidConfig)
	}

	return nil
}
