package outboard

import (
	"fmt"
	"math"
)

// RegisterComputeKernels binds the built-in demo kernels to their wire
// names on s:
//
//	pi(n)       scalar Leibniz approximation of π
//	pi_simd(n)  four-lane vectorized approximation of π
//	add(a, b)   integer addition
//
// The kernels themselves are the plain functions Pi, PiVector and Add;
// registration only gives them names on this service instance.
func RegisterComputeKernels(s *KernelService) {
	s.RegisterKernel("pi", func(args []interface{}) (interface{}, error) {
		n, err := uintArg(args, 0, "pi")
		if err != nil {
			return nil, err
		}
		return Pi(n), nil
	})

	s.RegisterKernel("pi_simd", func(args []interface{}) (interface{}, error) {
		n, err := uintArg(args, 0, "pi_simd")
		if err != nil {
			return nil, err
		}
		return PiVector(n), nil
	})

	s.RegisterKernel("add", func(args []interface{}) (interface{}, error) {
		a, err := intArg(args, 0, "add")
		if err != nil {
			return nil, err
		}
		b, err := intArg(args, 1, "add")
		if err != nil {
			return nil, err
		}
		return Add(a, b), nil
	})
}

// intArg extracts argument i as an int64. MessagePack decodes integers into
// the narrowest Go type that fits, so every integer width must be accepted;
// floats are accepted only when integral.
func intArg(args []interface{}, i int, kernel string) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument %d", kernel, i)
	}
	switch v := args[i].(type) {
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%s: argument %d out of range: %d", kernel, i, v)
		}
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, fmt.Errorf("%s: argument %d out of range: %d", kernel, i, v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s: argument %d must be an integer, got %v", kernel, i, v)
		}
		return int64(v), nil
	case float32:
		f := float64(v)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%s: argument %d must be an integer, got %v", kernel, i, v)
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("%s: argument %d has unsupported type %T", kernel, i, args[i])
	}
}

// uintArg extracts argument i as a non-negative count.
func uintArg(args []interface{}, i int, kernel string) (uint64, error) {
	v, err := intArg(args, i, kernel)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s: argument %d must be non-negative, got %d", kernel, i, v)
	}
	return uint64(v), nil
}
