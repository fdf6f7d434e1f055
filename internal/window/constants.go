package window

// Table layout
const (
	// tableLen is the number of precomputed points per shape, both edges
	// included.
	tableLen = 4097
	lastIdx  = tableLen - 1
)

// Planck-taper parameters
const (
	// planckEpsilon is the fraction of the window spent tapering on each side.
	planckEpsilon = 0.1
)
