package outboard

// MaxPiIterations is the largest iteration count for which every series
// denominator 2i+1 is exactly representable as a float64. The evaluators
// still return finite results beyond this, but individual terms may round
// before they are accumulated.
const MaxPiIterations = 1 << 52

// Pi approximates π by summing the first n terms of the Leibniz series:
//
//	π/4 = 1 - 1/3 + 1/5 - 1/7 + ...
//
// Terms are accumulated strictly left to right, one per iteration, so the
// result is bit-identical across calls and platforms for the same n.
// Pi(0) returns 0.
//
// The series converges slowly: the absolute error after n terms is bounded
// by 4/(2n+1), so roughly two million terms are needed for six correct
// digits. The denominator is computed in float64 from a 64-bit index, which
// avoids the integer wraparound a 32-bit index would hit at large n.
func Pi(n uint64) float64 {
	sum := 0.0
	sign := -1.0
	for i := uint64(0); i < n; i++ {
		sign = -sign
		sum += sign / (2*float64(i) + 1)
	}
	return sum * 4.0
}
