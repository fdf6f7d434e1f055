package mathutil

// Kaiser window formula constants (Kaiser & Schafer empirical fit).
const (
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Power series evaluation limits for I₀(x).
const (
	besselMaxTerms    = 500   // Hard stop for the series loop
	besselConvergence = 1e-17 // Relative size of the last term that still matters
	halfDivisor       = 2.0
)

// sincZeroThreshold is the |x| below which sinc(x) is taken as 1.
const sincZeroThreshold = 1e-12
