//go:build amd64

package outboard

import "golang.org/x/sys/cpu"

var hasVectorUnit = cpu.X86.HasAVX2

var vectorAccel = func() string {
	if cpu.X86.HasAVX2 {
		return "AVX2 (amd64)"
	}
	return "none (scalar fallback)"
}()
