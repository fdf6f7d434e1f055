package interp

// Width thresholds for selecting an interpolator from a maxfilt setting.
const (
	linearTaps  = 2 // widths up to this use linear interpolation
	hermiteTaps = 4 // widths up to this use 4-point Hermite

	// MinSincTaps and MaxSincTaps bound the windowed-sinc kernel width.
	MinSincTaps = 6
	MaxSincTaps = 64
)

// Windowed-sinc table design.
const (
	sincPhases      = 256   // Table rows per unit of fractional offset
	sincAttenuation = 80.0  // Kaiser stopband attenuation in dB
	evenMask        = ^1    // Clears the low bit to round taps down to even
	halfDivisor     = 2     // Taps on each side of the read position
	sumThreshold    = 1e-10 // Rows with a smaller DC sum are left unnormalised
)

// Hermite interpolation coefficients for C1 continuity.
// Formula: y = ((a*x + b)*x + c)*x + d
const (
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)
