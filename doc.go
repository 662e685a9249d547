// Package outboard provides native compute kernels for an embedded
// dynamic-language runtime, together with the plumbing to serve them over
// pipes without CGO.
//
// The package grew out of a set of interpreter-extension demos: a slowly
// converging π approximation that is worth computing natively, a trivial
// adder that shows the calling convention end to end, and a small drawing
// surface. The interpreter side of the pipe is deliberately out of scope;
// outboard is the served half of that boundary.
//
// # Compute Kernels
//
// The numeric core is a pair of Leibniz-series evaluators for π:
//
//	pi := outboard.Pi(4_000_000)        // scalar, term by term
//	pi  = outboard.PiVector(4_000_000)  // four-lane vectorized
//
// Both are pure functions of the iteration count. Pi accumulates strictly
// left to right and is bit-reproducible; PiVector runs four interleaved
// partial sums and agrees with Pi to floating-point accumulation tolerance
// (under 1e-6 for counts in the millions) without being bit-identical.
// ComputePi selects between them, and VariantAuto consults the host's CPU
// features:
//
//	pi = outboard.ComputePi(4_000_000, outboard.VariantAuto)
//	fmt.Println(outboard.VectorAccel()) // e.g. "AVX2 (amd64)"
//
// # Kernel Service
//
// KernelService exposes kernels to the runtime over length-prefixed
// MessagePack frames, the same wire format as a queue-style interpreter
// bridge:
//
//	service := outboard.NewKernelService(outboard.NewFrameTransport(in, out))
//	outboard.RegisterComputeKernels(service)
//	service.RegisterKernel("double", func(args []interface{}) (interface{}, error) {
//	    ...
//	})
//	err := service.Serve() // blocks until the peer disconnects
//
// Kernels stay plain functions; there is no process-wide registration step.
//
// # Drawing
//
// Canvas is the capability the drawing demos hold: init, clear, draw text,
// close. ImageCanvas implements it offscreen on the gg 2D library, with an
// optional PNG snapshot on close. Color is a plain immutable four-channel
// value, not a dynamic attribute bag.
//
//	canvas := outboard.NewImageCanvas(outboard.WithSnapshot("out.png"))
//	if err := canvas.Init(800, 450, "pi"); err != nil { ... }
//	canvas.Clear(outboard.NewColor(245, 245, 245, 255))
//	canvas.Close()
package outboard
