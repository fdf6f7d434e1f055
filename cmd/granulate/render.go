package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	granular "github.com/tphakala/go-granular"
)

const (
	renderBlock  = 4096
	wavFormatPCM = 1
	monoChannels = 1
	bitDepth16   = 16
	bitDepth24   = 24
)

// renderWAV renders seconds of engine output to a mono PCM WAV file and
// returns the number of frames written.
func renderWAV(e *granular.Engine, path string, seconds float64, bits int) (int, error) {
	if bits != bitDepth16 && bits != bitDepth24 {
		return 0, fmt.Errorf("unsupported bit depth %d", bits)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("render duration must be positive")
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	rate := int(e.SampleRate())
	enc := wav.NewEncoder(f, rate, bits, monoChannels, wavFormatPCM)
	scale := float64(int64(1)<<(bits-1) - 1)

	block := make([]float64, renderBlock)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: rate},
		Data:           make([]int, renderBlock),
		SourceBitDepth: bits,
	}

	total := int(seconds * e.SampleRate())
	for done := 0; done < total; {
		n := min(renderBlock, total-done)
		e.Render(block[:n])
		buf.Data = buf.Data[:n]
		for i, v := range block[:n] {
			buf.Data[i] = int(math.Round(max(-1, min(1, v)) * scale))
		}
		if err := enc.Write(buf); err != nil {
			_ = f.Close()
			return done, fmt.Errorf("failed to write audio data: %w", err)
		}
		done += n
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return total, fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return total, f.Close()
}
