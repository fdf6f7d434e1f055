package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	granular "github.com/tphakala/go-granular"
)

func newTestEnv(t *testing.T) *env {
	t.Helper()
	cfg := granular.DefaultConfig(granular.RateCD)
	e, err := granular.New(&cfg)
	require.NoError(t, err)
	return &env{engine: e, out: io.Discard}
}

func TestEval_SetAndGet(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.eval("set trigger 25")
	require.NoError(t, err)
	assert.Equal(t, "trigger = 25", out)
	assert.InDelta(t, 25.0, env.engine.TriggerFreq(), 1e-12)

	out, err = env.eval("get trigger")
	require.NoError(t, err)
	assert.Equal(t, "trigger = 25", out)
}

func TestEval_SetReportsClampedValue(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.eval("set wobble 3")
	require.NoError(t, err)
	assert.Equal(t, "wobble = 1", out)

	out, err = env.eval("set gain -2")
	require.NoError(t, err)
	assert.Equal(t, "gain = 0", out)
}

func TestEval_BoolParams(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.eval("set bypass 1")
	require.NoError(t, err)
	assert.Equal(t, "bypass = 1", out)
	assert.True(t, env.engine.Bypass())

	out, err = env.eval("set bypass 0")
	require.NoError(t, err)
	assert.Equal(t, "bypass = 0", out)
	assert.False(t, env.engine.Bypass())
}

func TestEval_MaxFilt(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.eval("set maxfilt 4")
	require.NoError(t, err)
	assert.Equal(t, "maxfilt = 4", out)
	assert.Equal(t, 4, env.engine.MaxFilt())
}

func TestEval_Window(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.eval("window hamming")
	require.NoError(t, err)
	assert.Equal(t, "window = hamming", out)
	assert.Equal(t, granular.WindowHamming, env.engine.GrainWindow())

	_, err = env.eval("window kaiser")
	require.ErrorIs(t, err, granular.ErrUnknownWindow)
	assert.Contains(t, err.Error(), "plancktaper")
	assert.Equal(t, granular.WindowHamming, env.engine.GrainWindow(), "failed switch keeps window")
}

func TestEval_Errors(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		input string
		msg   string
	}{
		{"frobnicate", "unknown command"},
		{"set trigger", "wrong number of arguments"},
		{"set nope 1", "unknown parameter"},
		{"set trigger fast", "invalid value"},
		{"get", "wrong number of arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := env.eval(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestEval_EmptyLine(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.eval("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEval_Quit(t *testing.T) {
	env := newTestEnv(t)
	for _, cmd := range []string{"quit", "exit"} {
		_, err := env.eval(cmd)
		require.ErrorIs(t, err, errQuit)
	}
}

func TestEval_StatsAndReset(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.engine.Load([][]float64{make([]float64, 4410)}, granular.RateCD))
	env.engine.Render(make([]float64, 1024))

	out, err := env.eval("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "spawned 1")
	assert.Contains(t, out, "ticks 1024")

	out, err = env.eval("reset")
	require.NoError(t, err)
	assert.Equal(t, "reset", out)
}

func TestEval_HelpListsParams(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.eval("help")
	require.NoError(t, err)
	for name := range params {
		assert.Contains(t, out, name)
	}
}
