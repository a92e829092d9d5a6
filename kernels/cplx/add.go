package cplx

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// AddKernel is the signature shared by all complex-addition implementations:
// dst[i] = a[i] + b[i].
type AddKernel = func(dst, a, b []complex64)

// AddRealKernel adds a real vector to a complex vector:
// dst[i] = a[i] + complex(b[i], 0).
type AddRealKernel = func(dst []complex64, a []complex64, b []float32)

// AddFamily enumerates the registered complex-addition implementations.
var AddFamily = kernel.NewFamily[AddKernel]("add_32fc_x2",
	kernel.Impl[AddKernel]{Name: "add_a_avx", Level: cpu.SIMDAVX, Align: kernel.AlignAligned, Priority: 15, Fn: addAVX},
	kernel.Impl[AddKernel]{Name: "add_u_avx", Level: cpu.SIMDAVX, Align: kernel.AlignUnaligned, Priority: 15, Fn: addAVX},
	kernel.Impl[AddKernel]{Name: "add_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: addSSE2},
	kernel.Impl[AddKernel]{Name: "add_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: addSSE2},
	kernel.Impl[AddKernel]{Name: "add_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: addNEON},
	kernel.Impl[AddKernel]{Name: "add_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: addRVV},
	kernel.Impl[AddKernel]{Name: "add_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: addGeneric},
)

// AddRealFamily enumerates the registered complex-plus-real implementations.
var AddRealFamily = kernel.NewFamily[AddRealKernel]("add_32fc_32f",
	kernel.Impl[AddRealKernel]{Name: "addreal_a_avx", Level: cpu.SIMDAVX, Align: kernel.AlignAligned, Priority: 15, Fn: addRealAVX},
	kernel.Impl[AddRealKernel]{Name: "addreal_u_avx", Level: cpu.SIMDAVX, Align: kernel.AlignUnaligned, Priority: 15, Fn: addRealAVX},
	kernel.Impl[AddRealKernel]{Name: "addreal_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: addRealNEON},
	kernel.Impl[AddRealKernel]{Name: "addreal_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: addRealRVV},
	kernel.Impl[AddRealKernel]{Name: "addreal_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: addRealGeneric},
)

// Add computes dst[i] = a[i] + b[i] elementwise over complex64 buffers.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Add(dst, a, b []complex64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("cplx: slice length mismatch")
	}
	AddFamily.Resolve()(dst, a, b)
}

// AddReal computes dst[i] = a[i] + complex(b[i], 0): the real vector is
// added to the real components, imaginary components pass through.
// Slices must have equal length. Panics if lengths differ.
func AddReal(dst []complex64, a []complex64, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("cplx: slice length mismatch")
	}
	AddRealFamily.Resolve()(dst, a, b)
}

func addGeneric(dst, a, b []complex64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// addBlocked processes width complex lanes per iteration with a scalar tail.
func addBlocked(dst, a, b []complex64, width int) {
	n := len(dst)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = a[i+j] + b[i+j]
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// addSSE2 mirrors the 128-bit path: two complex64 lanes per iteration.
func addSSE2(dst, a, b []complex64) {
	addBlocked(dst, a, b, 2)
}

// addAVX mirrors the 256-bit path: four complex64 lanes per iteration.
func addAVX(dst, a, b []complex64) {
	addBlocked(dst, a, b, 4)
}

// addNEON mirrors the 128-bit Advanced SIMD path.
func addNEON(dst, a, b []complex64) {
	addBlocked(dst, a, b, 2)
}

// addRVV mirrors the vector-length-agnostic path with no scalar tail.
func addRVV(dst, a, b []complex64) {
	addGeneric(dst, a, b)
}

func addRealGeneric(dst []complex64, a []complex64, b []float32) {
	for i := range dst {
		dst[i] = a[i] + complex(b[i], 0)
	}
}

func addRealBlocked(dst []complex64, a []complex64, b []float32, width int) {
	n := len(dst)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = complex(real(a[i+j])+b[i+j], imag(a[i+j]))
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = a[i] + complex(b[i], 0)
	}
}

// addRealAVX mirrors the 256-bit path: the real operand is widened to
// interleaved (b, 0) pairs, four complex lanes per iteration.
func addRealAVX(dst []complex64, a []complex64, b []float32) {
	addRealBlocked(dst, a, b, 4)
}

// addRealNEON mirrors the 128-bit Advanced SIMD path.
func addRealNEON(dst []complex64, a []complex64, b []float32) {
	addRealBlocked(dst, a, b, 2)
}

// addRealRVV mirrors the vector-length-agnostic path with no scalar tail.
func addRealRVV(dst []complex64, a []complex64, b []float32) {
	addRealGeneric(dst, a, b)
}
