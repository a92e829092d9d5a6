package cplx

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// MulKernel is the signature shared by all complex-multiplication
// implementations: dst[i] = a[i] * b[i].
type MulKernel = func(dst, a, b []complex64)

// MulFamily enumerates the registered complex-multiplication implementations.
var MulFamily = kernel.NewFamily[MulKernel]("multiply_32fc_x2",
	kernel.Impl[MulKernel]{Name: "multiply_a_avx", Level: cpu.SIMDAVX, Align: kernel.AlignAligned, Priority: 15, Fn: mulAVX},
	kernel.Impl[MulKernel]{Name: "multiply_u_avx", Level: cpu.SIMDAVX, Align: kernel.AlignUnaligned, Priority: 15, Fn: mulAVX},
	kernel.Impl[MulKernel]{Name: "multiply_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: mulSSE2},
	kernel.Impl[MulKernel]{Name: "multiply_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: mulSSE2},
	kernel.Impl[MulKernel]{Name: "multiply_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: mulNEON},
	kernel.Impl[MulKernel]{Name: "multiply_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: mulRVV},
	kernel.Impl[MulKernel]{Name: "multiply_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: mulGeneric},
)

// Mul computes dst[i] = a[i] * b[i] elementwise over complex64 buffers.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Mul(dst, a, b []complex64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("cplx: slice length mismatch")
	}
	MulFamily.Resolve()(dst, a, b)
}

// mulElem is the shared product formula: (ar*br - ai*bi, ar*bi + ai*br).
// All variants use it so results are bit-identical across the family.
func mulElem(a, b complex64) complex64 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	return complex(ar*br-ai*bi, ar*bi+ai*br)
}

func mulGeneric(dst, a, b []complex64) {
	for i := range dst {
		dst[i] = mulElem(a[i], b[i])
	}
}

func mulBlocked(dst, a, b []complex64, width int) {
	n := len(dst)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = mulElem(a[i+j], b[i+j])
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = mulElem(a[i], b[i])
	}
}

// mulSSE2 mirrors the 128-bit shuffle/multiply path.
func mulSSE2(dst, a, b []complex64) {
	mulBlocked(dst, a, b, 2)
}

// mulAVX mirrors the 256-bit path.
func mulAVX(dst, a, b []complex64) {
	mulBlocked(dst, a, b, 4)
}

// mulNEON mirrors the 128-bit Advanced SIMD path.
func mulNEON(dst, a, b []complex64) {
	mulBlocked(dst, a, b, 2)
}

// mulRVV mirrors the vector-length-agnostic path with no scalar tail.
func mulRVV(dst, a, b []complex64) {
	mulGeneric(dst, a, b)
}
