package outboard

// Add returns a + b. It is the smallest useful kernel: the original
// extension exposed it purely to demonstrate the calling convention end to
// end, and it is registered with KernelService for the same reason.
func Add(a, b int64) int64 {
	return a + b
}
