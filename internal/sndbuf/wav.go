package sndbuf

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadHeader opens a WAV file, checks its header and loads its audio. On
// error the previous contents stay.
func (b *Buffer) ReadHeader(path string) error {
	channels, rate, err := decodeWAV(path)
	if err != nil {
		return err
	}
	d, err := b.prepare(channels, rate)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	d.path = path
	b.data.Store(d)
	zero := 0.0
	b.seek.Store(&zero)
	return nil
}

// decodeWAV reads a whole WAV file into planar float channels in [-1, 1].
func decodeWAV(path string) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrInvalidFile, path, err)
	}

	numCh := int(dec.NumChans)
	if numCh == 0 || dec.BitDepth == 0 {
		return nil, 0, fmt.Errorf("%w: %s: %d channels, %d-bit", ErrInvalidFormat, path, numCh, dec.BitDepth)
	}
	toFloat := sampleScaler(dec.WavAudioFormat, int(dec.BitDepth))
	return deinterleave(buf, numCh, toFloat), int(dec.SampleRate), nil
}

// sampleScaler maps decoded integer samples to [-1, 1].
func sampleScaler(format uint16, bitDepth int) func(int) float64 {
	switch {
	case format == wavFormatFloat && bitDepth == floatBitDepth:
		return func(v int) float64 {
			return float64(math.Float32frombits(uint32(int32(v))))
		}
	case bitDepth == pcm8BitDepth:
		return func(v int) float64 { return float64(v-pcm8Offset) / pcm8Offset }
	default:
		scale := 1 / float64(int64(1)<<(bitDepth-1))
		return func(v int) float64 { return float64(v) * scale }
	}
}

func deinterleave(buf *audio.IntBuffer, numCh int, toFloat func(int) float64) [][]float64 {
	frames := len(buf.Data) / numCh
	out := make([][]float64, numCh)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range numCh {
			out[ch][i] = toFloat(buf.Data[i*numCh+ch])
		}
	}
	return out
}
