package outboard

// Variant selects the evaluation strategy used by ComputePi.
type Variant int

const (
	// VariantScalar evaluates the series one term at a time.
	VariantScalar Variant = iota

	// VariantVector evaluates the series with four-lane accumulation.
	VariantVector

	// VariantAuto picks the vector path on hardware with wide
	// floating-point SIMD units and the scalar path otherwise.
	VariantAuto
)

// ComputePi approximates π with the first n Leibniz-series terms using the
// requested evaluation variant. Every variant targets the same limit; they
// differ only in floating-point accumulation order. See Pi and PiVector for
// the exact per-variant semantics.
func ComputePi(n uint64, v Variant) float64 {
	switch v {
	case VariantVector:
		return PiVector(n)
	case VariantAuto:
		if hasVectorUnit {
			return PiVector(n)
		}
		return Pi(n)
	default:
		return Pi(n)
	}
}

// VectorAccel reports the floating-point SIMD capability available to the
// vectorized evaluator on this host, e.g. "AVX2 (amd64)" or
// "none (scalar fallback)".
func VectorAccel() string {
	return vectorAccel
}
