// Package mathutil provides the small numeric helpers shared by the
// interpolation and modulation packages.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero.
//
// It sums the power series I₀(x) = Σ ((x/2)^k / k!)², which converges for all
// x and is accurate to full float64 precision for the β range used by
// Kaiser windows (0-20).
func BesselI0(x float64) float64 {
	half := x / halfDivisor
	halfSq := half * half

	sum := 1.0
	term := 1.0
	for k := 1; k < besselMaxTerms; k++ {
		kf := float64(k)
		term *= halfSq / (kf * kf)
		sum += term
		if term < sum*besselConvergence {
			break
		}
	}
	return sum
}

// KaiserBeta computes the Kaiser window β parameter for the desired
// stopband attenuation in dB.
//
//   - att > 50 dB:        β = 0.1102 * (att - 8.7)
//   - 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - att < 21 dB:        β = 0
func KaiserBeta(attenuation float64) float64 {
	switch {
	case attenuation > kaiserAttHigh:
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	case attenuation >= kaiserAttMedium:
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	default:
		return 0
	}
}

// KaiserWindowAt evaluates a Kaiser window of shape β at a normalised
// position x ∈ [-1, 1]. Positions outside that interval return 0.
func KaiserWindowAt(x, beta float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	return BesselI0(beta*math.Sqrt(1-x*x)) / BesselI0(beta)
}

// Sinc is the normalised sinc function sin(πx)/(πx).
func Sinc(x float64) float64 {
	if math.Abs(x) < sincZeroThreshold {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
