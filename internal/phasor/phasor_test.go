package phasor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-granular/internal/jitter"
)

const testRate = 1000.0

func newTest() *Phasor {
	p := New(testRate, jitter.New(1))
	p.SetFileDur(1)
	return p
}

func TestNew_Defaults(t *testing.T) {
	p := New(testRate, jitter.New(1))
	assert.Zero(t, p.Start())
	assert.Equal(t, 1.0, p.Stop())
	assert.Equal(t, 1.0, p.Rate())
	assert.Zero(t, p.Wobble())
	assert.Zero(t, p.FileDur())
}

func TestSetters_ClampAndRoundTrip(t *testing.T) {
	p := newTest()
	tests := []struct {
		name string
		set  func(float64) float64
		get  func() float64
		in   float64
		want float64
	}{
		{"start", p.SetStart, p.Start, 0.25, 0.25},
		{"start low", p.SetStart, p.Start, -1, 0},
		{"stop", p.SetStop, p.Stop, 0.75, 0.75},
		{"stop high", p.SetStop, p.Stop, 3, 1},
		{"rate", p.SetRate, p.Rate, -0.5, -0.5},
		{"wobble", p.SetWobble, p.Wobble, 0.1, 0.1},
		{"wobble high", p.SetWobble, p.Wobble, 2, 1},
		{"file dur", p.SetFileDur, p.FileDur, 2.5, 2.5},
		{"file dur negative", p.SetFileDur, p.FileDur, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set(tt.in))
			assert.Equal(t, tt.want, tt.get())
			assert.Equal(t, tt.want, tt.set(tt.in), "idempotent")
		})
	}
}

func TestTick_AdvancesAtNativeSpeed(t *testing.T) {
	p := newTest()
	for range 250 {
		p.Tick()
	}
	assert.InDelta(t, 0.25, p.Phase(), 1e-9)
	assert.InDelta(t, 250, p.Sample(), 1e-6)
}

func TestTick_WrapsInsideWindow(t *testing.T) {
	p := newTest()
	p.SetStart(0.2)
	p.SetStop(0.4)
	p.SetRate(7)

	for range 5000 {
		p.Tick()
		ph := p.Phase()
		require.GreaterOrEqual(t, ph, 0.2)
		require.Less(t, ph, 0.4)
	}
}

func TestTick_ReversedBoundsAndNegativeRate(t *testing.T) {
	p := newTest()
	p.SetStart(0.6)
	p.SetStop(0.3)
	p.SetRate(-3)

	for range 2000 {
		p.Tick()
		ph := p.Phase()
		require.GreaterOrEqual(t, ph, 0.3)
		require.Less(t, ph, 0.6)
	}
}

func TestTick_EqualBoundsHoldPhase(t *testing.T) {
	p := newTest()
	p.SetStart(0.5)
	p.SetStop(0.5)
	for range 10 {
		p.Tick()
	}
	assert.Equal(t, 0.5, p.Phase())
	assert.InDelta(t, 500, p.Sample(), 1e-9)
}

func TestTick_NoDurationFreezes(t *testing.T) {
	p := New(testRate, jitter.New(1))
	for range 10 {
		p.Tick()
	}
	assert.Zero(t, p.Phase())
	assert.Zero(t, p.Sample())
}

func TestSample_WobbleStaysInBuffer(t *testing.T) {
	p := newTest()
	p.SetStart(0.9)
	p.SetStop(1)
	p.SetWobble(0.3)

	frames := p.FileDur() * testRate
	spread := false
	for range 10000 {
		p.Tick()
		s := p.Sample()
		require.GreaterOrEqual(t, s, 0.0)
		require.Less(t, s, frames)
		if s < 0.9*frames-1 {
			spread = true
		}
	}
	assert.True(t, spread, "wobble should move reads outside the phase window")
}

func TestReset(t *testing.T) {
	p := newTest()
	p.SetStart(0.1)
	for range 100 {
		p.Tick()
	}
	p.Reset()
	assert.Equal(t, 0.1, p.Phase())
}
