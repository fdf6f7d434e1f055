// Command analyze-window prints the shape and overlap-add gain of every
// grain envelope.
package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-granular/internal/window"
)

const (
	numPoints   = 1001 // samples taken across one grain
	maxOverlaps = 8    // grains overlapping at each instant
)

// profile samples a shape at numPoints evenly spaced positions.
func profile(s window.Shape) []float64 {
	out := make([]float64, numPoints)
	for i := range out {
		out[i] = window.Envelope(float64(i)/(numPoints-1), s)
	}
	return out
}

// overlapGain returns the min and max of the sum of n equally staggered
// envelopes, which is the level ripple a steady grain stream produces.
func overlapGain(env []float64, n int) (lo, hi float64) {
	period := len(env) / n
	sum := make([]float64, period)
	for k := range n {
		for i := range period {
			sum[i] += env[(i+k*period)%len(env)]
		}
	}
	return floats.Min(sum), floats.Max(sum)
}

func main() {
	fmt.Println("=== Grain Envelope Analysis ===")

	for _, s := range window.Shapes() {
		env := profile(s)
		area := floats.Sum(env) / float64(len(env)-1)

		fmt.Printf("\n%s\n", s)
		fmt.Printf("  Edges:     %.6f / %.6f\n", env[0], env[len(env)-1])
		fmt.Printf("  Peak:      %.6f at %.3f\n", floats.Max(env), float64(floats.MaxIdx(env))/(numPoints-1))
		fmt.Printf("  Area:      %.6f\n", area)
		fmt.Printf("  Quarter:   %.6f\n", window.Envelope(0.25, s))

		fmt.Println("  Overlap-add gain:")
		for n := 2; n <= maxOverlaps; n *= 2 {
			lo, hi := overlapGain(env, n)
			fmt.Printf("    %d grains: %.4f .. %.4f (ripple %.2f%%)\n", n, lo, hi, 100*(hi-lo)/max(hi, 1e-12))
		}
	}
}
