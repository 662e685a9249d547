package outboard

// laneWidth is the number of parallel accumulators in the vectorized
// evaluator. Four float64 lanes fill one 256-bit vector register.
const laneWidth = 4

// lane4 is a fixed-width group of four float64 values advanced in lock-step.
// The methods operate element-wise over straight-line code so the compiler
// can keep the whole group in vector registers; no slices, no allocation.
type lane4 [laneWidth]float64

func (v lane4) add(o lane4) lane4 {
	return lane4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v lane4) mul(o lane4) lane4 {
	return lane4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v lane4) div(o lane4) lane4 {
	return lane4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

// reduce sums the lanes in fixed order, lane 0 first and lane 3 last.
// The order is part of the numeric contract: changing it changes the
// rounding trajectory of the final result.
func (v lane4) reduce() float64 {
	return v[0] + v[1] + v[2] + v[3]
}

// splat returns a lane4 with every lane set to x.
func splat(x float64) lane4 {
	return lane4{x, x, x, x}
}

// PiVector approximates π over the same Leibniz series as Pi, using four
// interleaved partial sums.
//
// Lane k accumulates terms k, k+4, k+8, ... and carries the fixed sign of
// its position within a four-term block: +1 for even k, -1 for odd k. The
// sign never changes per lane, because term parity relative to the block
// start is constant. After n/4 steps the lane accumulators are reduced in
// lane order (0, 1, 2, 3) and any remaining n mod 4 terms are accumulated
// scalar-wise in ascending index order, so counts that are not a multiple
// of four lose no terms.
//
// PiVector(n) and Pi(n) converge to the same limit and agree to well under
// 1e-6 for n in the millions, but are not bit-identical: grouping terms
// into lanes changes the order of floating-point additions. The same
// iteration-count caveat as Pi applies; see MaxPiIterations.
func PiVector(n uint64) float64 {
	var acc lane4
	sign := lane4{1, -1, 1, -1}
	idx := lane4{0, 1, 2, 3}
	step := splat(laneWidth)
	two := splat(2)
	one := splat(1)

	for i := uint64(0); i+laneWidth <= n; i += laneWidth {
		denom := two.mul(idx).add(one)
		acc = acc.add(sign.div(denom))
		idx = idx.add(step)
	}

	pi := acc.reduce()

	// Scalar tail for the n mod 4 remainder, continuing the alternating
	// series from the first index the lanes did not cover.
	for i := n - n%laneWidth; i < n; i++ {
		s := 1.0
		if i%2 == 1 {
			s = -1.0
		}
		pi += s / (2*float64(i) + 1)
	}

	return pi * 4.0
}
