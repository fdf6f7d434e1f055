package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-granular/internal/testutil"
)

func TestEnvelope_EdgesAreZero(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			assert.Zero(t, Envelope(0, s), "envelope(0)")
			assert.Zero(t, Envelope(1, s), "envelope(1)")
		})
	}
}

func TestEnvelope_NonNegativeAndBounded(t *testing.T) {
	const steps = 10000
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			for i := 0; i <= steps; i++ {
				v := Envelope(float64(i)/steps, s)
				require.GreaterOrEqual(t, v, 0.0, "progress %d/%d", i, steps)
				require.LessOrEqual(t, v, 1.0+1e-12, "progress %d/%d", i, steps)
			}
		})
	}
}

func TestEnvelope_PeaksAtCentre(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			assert.InDelta(t, 1.0, Envelope(0.5, s), 1e-6)
		})
	}
}

func TestEnvelope_Symmetric(t *testing.T) {
	const points = 1001
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			env := make([]float64, points)
			for i := range env {
				env[i] = Envelope(float64(i)/(points-1), s)
			}
			testutil.AssertSymmetric(t, env, testutil.WindowTolerance)
		})
	}
}

func TestEnvelope_Continuous(t *testing.T) {
	// Adjacent reads never jump by more than a small step.
	const steps = 100000
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			prev := Envelope(0, s)
			for i := 1; i <= steps; i++ {
				v := Envelope(float64(i)/steps, s)
				require.Less(t, math.Abs(v-prev), 1e-3, "step %d", i)
				prev = v
			}
		})
	}
}

func TestEnvelope_ClampsProgress(t *testing.T) {
	assert.Zero(t, Envelope(-0.5, Hanning))
	assert.Zero(t, Envelope(1.5, Hanning))
	assert.Zero(t, Envelope(math.NaN(), Hanning))
}

func TestEnvelope_MatchesClosedForms(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		p     float64
		want  float64
	}{
		{"hann quarter", Hanning, 0.25, 0.5},
		{"bartlett quarter", Bartlett, 0.25, 0.5},
		{"blackman quarter", Blackman, 0.25, 0.42 - 0.5*math.Cos(math.Pi/2) + 0.08*math.Cos(math.Pi)},
		{"hamming quarter", Hamming, 0.25, (0.54 - 0.08) / 0.92},
		{"planck flat top", PlanckTaper, 0.3, 1},
		{"planck taper midpoint", PlanckTaper, 0.05, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Envelope(tt.p, tt.shape), 1e-6)
		})
	}
}

func TestEnvelope_UnknownShapeFallsBack(t *testing.T) {
	assert.Equal(t, Envelope(0.3, Blackman), Envelope(0.3, Shape(200)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Shape
		ok   bool
	}{
		{"blackman", Blackman, true},
		{"hanning", Hanning, true},
		{"hann", Hanning, true},
		{"hamming", Hamming, true},
		{"bartlett", Bartlett, true},
		{"plancktaper", PlanckTaper, true},
		{"  Blackman ", Blackman, true},
		{"HAMMING", Hamming, true},
		{"kaiser", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestShape_StringRoundTrip(t *testing.T) {
	for _, s := range Shapes() {
		got, ok := Parse(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
		assert.True(t, s.Valid())
	}
	assert.Equal(t, "unknown", Shape(99).String())
	assert.False(t, Shape(99).Valid())
	assert.Len(t, Names(), len(Shapes()))
}

func BenchmarkEnvelope(b *testing.B) {
	p := 0.0
	for b.Loop() {
		_ = Envelope(p, Blackman)
		p += 1e-4
		if p > 1 {
			p = 0
		}
	}
}
