package granular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-granular/internal/testutil"
)

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*Engine, error)
		rate float64
	}{
		{"CD", NewCD, RateCD},
		{"DAT", NewDAT, RateDAT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.rate, e.SampleRate())
			assert.Equal(t, 512, e.Capacity())
		})
	}
}

func TestRenderFile(t *testing.T) {
	path := testutil.WriteWAV(t, "tone.wav", RateCD, testutil.Sine(RateCD/2, 440, RateCD))

	cfg := DefaultConfig(RateDAT)
	cfg.TriggerFreq = 30
	cfg.GrainPeriod = 0.1
	out, err := RenderFile(&cfg, path, 0.25)
	require.NoError(t, err)

	assert.Len(t, out, 12000)
	testutil.AssertNoNaNOrInf(t, out)
	testutil.AssertAllInRange(t, out, -4, 4)
}

func TestRenderFile_Errors(t *testing.T) {
	_, err := RenderFile(nil, "x.wav", 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultConfig(RateCD)
	_, err = RenderFile(&cfg, "does-not-exist.wav", 1)
	assert.ErrorIs(t, err, ErrReadBuffer)
}
