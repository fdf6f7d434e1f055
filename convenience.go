package granular

// Common sample rates for convenience functions.
const (
	// RateCD is the CD quality sample rate (Red Book standard).
	RateCD = 44100

	// RateDAT is the DAT/DVD sample rate.
	RateDAT = 48000

	// RateHiRes96 is the high-resolution 2x DAT sample rate.
	RateHiRes96 = 96000
)

// NewCD creates an engine with default settings running at 44.1kHz.
func NewCD() (*Engine, error) {
	cfg := DefaultConfig(RateCD)
	return New(&cfg)
}

// NewDAT creates an engine with default settings running at 48kHz.
func NewDAT() (*Engine, error) {
	cfg := DefaultConfig(RateDAT)
	return New(&cfg)
}

// NewSimple creates an engine with default settings at sampleRate and
// loads the WAV file at path into it.
func NewSimple(sampleRate float64, path string) (*Engine, error) {
	cfg := DefaultConfig(sampleRate)
	e, err := New(&cfg)
	if err != nil {
		return nil, err
	}
	if err := e.Read(path); err != nil {
		return nil, err
	}
	return e, nil
}

// RenderFile is a convenience function for offline rendering: it loads
// path into an engine built from config and renders seconds of output.
func RenderFile(config *Config, path string, seconds float64) ([]float64, error) {
	e, err := New(config)
	if err != nil {
		return nil, err
	}
	if err := e.Read(path); err != nil {
		return nil, err
	}
	out := make([]float64, int(seconds*e.SampleRate()))
	e.Render(out)
	return out, nil
}
