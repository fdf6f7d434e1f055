package grain

const (
	// DefaultCapacity is the number of grain slots a pool reserves when no
	// capacity is given.
	DefaultCapacity = 512

	// MinRate is the smallest playback rate magnitude a grain accepts.
	// Slower rates would keep a grain alive for an unbounded time.
	MinRate = 1e-3
)
