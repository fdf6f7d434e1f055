package sndbuf

const (
	// DefaultMaxFilt is the interpolation width used until SetMaxFilt is
	// called.
	DefaultMaxFilt = 2

	// conversionTaps is the sinc width used to bring loaded audio to the
	// playback rate.
	conversionTaps = 32
)

// WAV decoding
const (
	wavFormatFloat = 3 // WAVE_FORMAT_IEEE_FLOAT
	pcm8BitDepth   = 8
	pcm8Offset     = 128
	floatBitDepth  = 32
)
