//go:build !amd64 && !arm64

package outboard

// No vector unit detection on this platform; the lane loop still runs, it
// just relies on whatever the compiler emits.
var (
	hasVectorUnit = false
	vectorAccel   = "none (scalar fallback)"
)
