// Package sndbuf holds the sampled audio an engine reads from.
//
// Audio is mixed to mono and converted to the playback rate when it is
// loaded, so every position handled by a Buffer is a frame index at the
// playback rate. Grain reads go through At and always wrap around the
// buffer. Sample plays the buffer directly with its own rate, loop flag
// and seek position; it backs the engine's bypass mode.
//
// Loading and setters may run on a control goroutine while one audio
// goroutine calls At and Sample. Composite state is built off the audio
// goroutine and published with a single atomic store.
package sndbuf

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/tphakala/go-granular/internal/interp"
	"github.com/tphakala/go-granular/internal/mathutil"
)

// audioData is an immutable decoded buffer.
type audioData struct {
	frames   []float64
	nchan    int
	fileRate int
	seconds  float64
	path     string
}

type kernel struct {
	interp  interp.Interpolator
	maxFilt int
}

// Buffer is a mono sample buffer at a fixed playback rate.
type Buffer struct {
	sampleRate float64

	data atomic.Pointer[audioData]
	kern atomic.Pointer[kernel]

	loop atomic.Bool
	rate atomic.Uint64 // float64 bits
	pos  atomic.Uint64 // float64 bits, written by Sample
	seek atomic.Pointer[float64]
}

// New returns an empty buffer that plays at sampleRate. Until audio is
// loaded every read returns 0.
func New(sampleRate float64) *Buffer {
	b := &Buffer{sampleRate: sampleRate}
	b.rate.Store(math.Float64bits(1))
	b.SetMaxFilt(DefaultMaxFilt)
	return b
}

// SampleRate returns the playback rate.
func (b *Buffer) SampleRate() float64 { return b.sampleRate }

// Load replaces the buffer contents with planar channels recorded at
// fileRate. Channels are averaged to mono and converted to the playback
// rate. Playback restarts at frame 0. On error the previous contents stay.
func (b *Buffer) Load(channels [][]float64, fileRate int) error {
	d, err := b.prepare(channels, fileRate)
	if err != nil {
		return err
	}
	b.data.Store(d)
	zero := 0.0
	b.seek.Store(&zero)
	return nil
}

func (b *Buffer) prepare(channels [][]float64, fileRate int) (*audioData, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFormat)
	}
	if fileRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, fileRate)
	}
	n := len(channels[0])
	for ch, c := range channels {
		if len(c) != n {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d", ErrInvalidFormat, ch, len(c), n)
		}
	}
	if n == 0 {
		return nil, ErrNoAudio
	}

	mono := mixDown(channels)
	return &audioData{
		frames:   convertRate(mono, float64(fileRate), b.sampleRate),
		nchan:    len(channels),
		fileRate: fileRate,
		seconds:  float64(n) / float64(fileRate),
	}, nil
}

func mixDown(channels [][]float64) []float64 {
	if len(channels) == 1 {
		return append([]float64(nil), channels[0]...)
	}
	mono := make([]float64, len(channels[0]))
	for _, c := range channels {
		for i, v := range c {
			mono[i] += v
		}
	}
	inv := 1 / float64(len(channels))
	for i := range mono {
		mono[i] *= inv
	}
	return mono
}

// convertRate resamples src from rate `from` to rate `to` with a
// band-limited sinc kernel.
func convertRate(src []float64, from, to float64) []float64 {
	if from == to {
		return src
	}
	ratio := from / to
	n := max(int(math.Round(float64(len(src))/ratio)), 1)
	k := interp.NewSinc(conversionTaps, min(1, to/from))
	out := make([]float64, n)
	for i := range out {
		out[i] = k.At(src, float64(i)*ratio, false)
	}
	return out
}

// At returns the interpolated sample at frame pos, wrapping around the
// buffer. It is meant for the audio goroutine only.
func (b *Buffer) At(pos float64) float64 {
	d := b.data.Load()
	if d == nil {
		return 0
	}
	return b.kern.Load().interp.At(d.frames, pos, true)
}

// Sample returns the sample at the playback position and advances it by
// the playback rate. Without looping the buffer is silent once the
// position leaves it. It is meant for the audio goroutine only.
func (b *Buffer) Sample() float64 {
	d := b.data.Load()
	if d == nil {
		return 0
	}
	pos := math.Float64frombits(b.pos.Load())
	if p := b.seek.Swap(nil); p != nil {
		pos = *p
	}

	n := float64(len(d.frames))
	loop := b.loop.Load()
	if !loop && (pos < 0 || pos >= n) {
		b.pos.Store(math.Float64bits(pos))
		return 0
	}

	v := b.kern.Load().interp.At(d.frames, pos, loop)
	pos += math.Float64frombits(b.rate.Load())
	if loop {
		pos = mathutil.Wrap(pos, 0, n)
	}
	b.pos.Store(math.Float64bits(pos))
	return v
}

// SetLoop sets whether Sample wraps at the buffer ends.
func (b *Buffer) SetLoop(loop bool) bool {
	b.loop.Store(loop)
	return loop
}

// Loop reports whether Sample wraps at the buffer ends.
func (b *Buffer) Loop() bool { return b.loop.Load() }

// SetRate sets the Sample playback speed as a multiple of native speed.
// Negative rates play backwards.
func (b *Buffer) SetRate(rate float64) float64 {
	b.rate.Store(math.Float64bits(rate))
	return rate
}

// Rate returns the Sample playback speed.
func (b *Buffer) Rate() float64 { return math.Float64frombits(b.rate.Load()) }

// SetPosition seeks Sample to a frame, clamped to the buffer. The seek is
// applied on the next Sample call.
func (b *Buffer) SetPosition(frames float64) float64 {
	frames = max(frames, 0)
	if n := b.Frames(); n > 0 {
		frames = min(frames, float64(n))
	}
	b.seek.Store(&frames)
	return frames
}

// Position returns the Sample position in frames, including a seek not yet
// applied.
func (b *Buffer) Position() float64 {
	if p := b.seek.Load(); p != nil {
		return *p
	}
	return math.Float64frombits(b.pos.Load())
}

// SetPhase seeks Sample to a normalised position in [0, 1].
func (b *Buffer) SetPhase(phase float64) float64 {
	phase = mathutil.Clamp(phase, 0, 1)
	b.SetPosition(phase * float64(b.Frames()))
	return phase
}

// Phase returns the Sample position normalised to [0, 1]. An empty buffer
// reports 0.
func (b *Buffer) Phase() float64 {
	n := b.Frames()
	if n == 0 {
		return 0
	}
	return mathutil.Clamp(b.Position()/float64(n), 0, 1)
}

// SetMaxFilt selects the interpolation width and returns the width
// actually used: 2 is linear, 4 is Hermite cubic, wider values select a
// windowed sinc of even width up to interp.MaxSincTaps.
func (b *Buffer) SetMaxFilt(width int) int {
	k, taps := interp.New(width)
	b.kern.Store(&kernel{interp: k, maxFilt: taps})
	return taps
}

// MaxFilt returns the interpolation width in use.
func (b *Buffer) MaxFilt() int { return b.kern.Load().maxFilt }

// Frames returns the buffer length in frames at the playback rate.
func (b *Buffer) Frames() int {
	if d := b.data.Load(); d != nil {
		return len(d.frames)
	}
	return 0
}

// LengthSeconds returns the duration of the loaded audio.
func (b *Buffer) LengthSeconds() float64 {
	if d := b.data.Load(); d != nil {
		return d.seconds
	}
	return 0
}

// NChan returns the channel count of the loaded audio before mixdown.
func (b *Buffer) NChan() int {
	if d := b.data.Load(); d != nil {
		return d.nchan
	}
	return 0
}

// FileRate returns the sample rate the loaded audio was recorded at.
func (b *Buffer) FileRate() int {
	if d := b.data.Load(); d != nil {
		return d.fileRate
	}
	return 0
}

// Path returns the file the buffer was read from, if any.
func (b *Buffer) Path() string {
	if d := b.data.Load(); d != nil {
		return d.path
	}
	return ""
}
