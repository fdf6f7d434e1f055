package sndbuf

import "errors"

var (
	// ErrInvalidFile is returned when a file is not a readable WAV file.
	ErrInvalidFile = errors.New("sndbuf: invalid WAV file")

	// ErrNoAudio is returned when a file or channel set holds no frames.
	ErrNoAudio = errors.New("sndbuf: no audio frames")

	// ErrInvalidFormat is returned for unusable channel layouts or rates.
	ErrInvalidFormat = errors.New("sndbuf: invalid audio format")
)
