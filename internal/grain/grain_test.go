package grain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-granular/internal/window"
)

// constSource reads the same value everywhere.
type constSource float64

func (c constSource) At(float64) float64 { return float64(c) }

// recordSource remembers every position read.
type recordSource struct {
	reads []float64
}

func (r *recordSource) At(pos float64) float64 {
	r.reads = append(r.reads, pos)
	return 1
}

func ticksUntilDone(g *Grain, src Source) int {
	n := 0
	for !g.Done() {
		g.SampleAndTick(src)
		n++
	}
	return n
}

func TestGrain_InitForward(t *testing.T) {
	var g Grain
	g.Init(100, 200, 1, window.Hanning)

	assert.Equal(t, int64(100), g.Start())
	assert.Equal(t, int64(200), g.Stop())
	assert.Equal(t, 100.0, g.Position())
	assert.Equal(t, window.Hanning, g.Shape())
	assert.Equal(t, int64(100), g.Span())
	assert.False(t, g.Done())
}

func TestGrain_InitRaisesStopToStart(t *testing.T) {
	var g Grain
	g.Init(50, 10, 1, window.Blackman)
	assert.Equal(t, int64(50), g.Stop())
	assert.Zero(t, g.Span())
}

func TestGrain_RateClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero plays forward", 0, MinRate},
		{"tiny positive", 1e-6, MinRate},
		{"tiny negative", -1e-6, -MinRate},
		{"normal", 1.5, 1.5},
		{"reverse", -2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grain
			g.Init(0, 10, tt.in, window.Blackman)
			assert.Equal(t, tt.want, g.Rate())
		})
	}
}

func TestGrain_PlaysWholeSpanIncludingLastFrame(t *testing.T) {
	var g Grain
	g.Init(10, 20, 1, window.Bartlett)
	src := &recordSource{}

	n := ticksUntilDone(&g, src)

	// Frames 10..20 inclusive.
	assert.Equal(t, 11, n)
	require.Len(t, src.reads, 11)
	assert.Equal(t, 10.0, src.reads[0])
	assert.Equal(t, 20.0, src.reads[10])
}

func TestGrain_ReversePlayback(t *testing.T) {
	var g Grain
	g.Init(10, 20, -1, window.Bartlett)
	src := &recordSource{}

	n := ticksUntilDone(&g, src)

	assert.Equal(t, 11, n)
	assert.Equal(t, 20.0, src.reads[0])
	assert.Equal(t, 10.0, src.reads[len(src.reads)-1])
}

func TestGrain_EnvelopeApplied(t *testing.T) {
	var g Grain
	g.Init(0, 4, 1, window.Bartlett)
	src := constSource(2)

	var got []float64
	for !g.Done() {
		got = append(got, g.SampleAndTick(src))
	}

	want := []float64{0, 1, 2, 1, 0}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "tick %d", i)
	}
}

func TestGrain_FinishedGrainIsSilent(t *testing.T) {
	var g Grain
	g.Init(0, 2, 1, window.Hanning)
	ticksUntilDone(&g, constSource(1))
	assert.Zero(t, g.SampleAndTick(constSource(1)))

	var idle Grain
	assert.Zero(t, idle.SampleAndTick(constSource(1)))
	assert.False(t, idle.Done())
}

func TestGrain_ProgressClamped(t *testing.T) {
	var g Grain
	g.Init(0, 10, 3, window.Hanning)
	for !g.Done() {
		p := g.Progress()
		require.GreaterOrEqual(t, p, 0.0)
		require.LessOrEqual(t, p, 1.0)
		g.SampleAndTick(constSource(1))
	}
	assert.Equal(t, 1.0, g.Progress())
}

func TestGrain_SpanOf8820Frames(t *testing.T) {
	var g Grain
	g.Init(1000, 1000+8820, 1, window.Blackman)
	assert.Equal(t, int64(8820), g.Span())
	assert.Equal(t, 8821, ticksUntilDone(&g, constSource(0)))
}
