// Package playback streams engine output to the system audio device.
package playback

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

const (
	bytesPerSample = 4 // float32 LE
	defaultFrames  = 1024
)

// Source renders mono audio blocks. *granular.Engine satisfies it.
type Source interface {
	Render(out []float64)
}

type sourceRef struct {
	src Source
}

// Reader adapts a Source to an io.Reader of mono float32 little-endian
// PCM, the format the output device pulls. The source can be swapped while
// the device is reading; with no source the reader yields silence.
type Reader struct {
	src atomic.Pointer[sourceRef]
	buf []float64 // pre-allocated render block
}

// NewReader returns a reader with no source.
func NewReader() *Reader {
	return &Reader{buf: make([]float64, defaultFrames)}
}

// SetSource replaces the rendered source. Nil silences the reader.
func (r *Reader) SetSource(src Source) {
	if src == nil {
		r.src.Store(nil)
		return
	}
	r.src.Store(&sourceRef{src: src})
}

// Read fills p with whole float32 samples; trailing bytes that do not make
// up a sample are zeroed. It never returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	ref := r.src.Load()
	n := len(p) / bytesPerSample
	if ref == nil || n == 0 {
		clear(p)
		return len(p), nil
	}

	if len(r.buf) < n {
		r.buf = make([]float64, n)
	}
	block := r.buf[:n]
	ref.src.Render(block)

	for i, v := range block {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(float32(v)))
	}
	clear(p[n*bytesPerSample:])
	return len(p), nil
}
