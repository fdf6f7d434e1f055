package playback

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter renders 0, 1, 2, ... across calls.
type counter struct{ next float64 }

func (c *counter) Render(out []float64) {
	for i := range out {
		out[i] = c.next
		c.next++
	}
}

func decode(p []byte) []float32 {
	out := make([]float32, len(p)/bytesPerSample)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerSample:]))
	}
	return out
}

func TestReader_SilentWithoutSource(t *testing.T) {
	r := NewReader()
	p := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, len(p), n)
	assert.Equal(t, make([]byte, 9), p)
}

func TestReader_EncodesFloat32LE(t *testing.T) {
	r := NewReader()
	r.SetSource(&counter{})

	p := make([]byte, 16)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, []float32{0, 1, 2, 3}, decode(p))

	_, _ = r.Read(p)
	assert.Equal(t, []float32{4, 5, 6, 7}, decode(p), "source state carries across reads")
}

func TestReader_PartialSampleZeroed(t *testing.T) {
	r := NewReader()
	r.SetSource(&counter{next: 1})
	p := []byte{9, 9, 9, 9, 9, 9, 9}
	_, _ = r.Read(p)
	assert.Equal(t, []float32{1}, decode(p[:4]))
	assert.Equal(t, []byte{0, 0, 0}, p[4:])
}

func TestReader_GrowsForLargeReads(t *testing.T) {
	r := NewReader()
	r.SetSource(&counter{})
	p := make([]byte, (defaultFrames+10)*bytesPerSample)
	_, _ = r.Read(p)
	got := decode(p)
	assert.Equal(t, float32(defaultFrames+9), got[len(got)-1])
}

func TestReader_SetSourceNil(t *testing.T) {
	r := NewReader()
	r.SetSource(&counter{next: 5})
	r.SetSource(nil)
	p := make([]byte, 8)
	_, _ = r.Read(p)
	assert.Equal(t, make([]byte, 8), p)
}
