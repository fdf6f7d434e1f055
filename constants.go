package granular

// Engine defaults
const (
	defaultGrainPeriod = 0.2  // seconds
	defaultGrainRate   = 1.0  // native speed
	defaultTriggerFreq = 10.0 // Hz
	defaultGain        = 1.0
	defaultWindow      = "blackman"
)

// Configuration limits
const (
	maxSampleRate   = 768000
	maxPoolCapacity = 1 << 16
	minTriggerFreq  = 1e-3 // Hz
)
