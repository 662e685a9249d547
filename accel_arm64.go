//go:build arm64

package outboard

import "golang.org/x/sys/cpu"

var hasVectorUnit = cpu.ARM64.HasASIMD

var vectorAccel = func() string {
	if cpu.ARM64.HasASIMD {
		return "NEON (arm64)"
	}
	return "none (scalar fallback)"
}()
