// Package vec provides elementwise kernels over real float32 buffers.
package vec

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// ScaleKernel is the signature shared by all scaling implementations:
// dst[i] = src[i] * scalar.
type ScaleKernel = func(dst, src []float32, scalar float32)

// ScaleFamily enumerates the registered scaling implementations.
var ScaleFamily = kernel.NewFamily[ScaleKernel]("multiply_32f_s32f",
	kernel.Impl[ScaleKernel]{Name: "scale_a_avx", Level: cpu.SIMDAVX, Align: kernel.AlignAligned, Priority: 15, Fn: scaleAVX},
	kernel.Impl[ScaleKernel]{Name: "scale_u_avx", Level: cpu.SIMDAVX, Align: kernel.AlignUnaligned, Priority: 15, Fn: scaleAVX},
	kernel.Impl[ScaleKernel]{Name: "scale_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: scaleSSE2},
	kernel.Impl[ScaleKernel]{Name: "scale_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: scaleSSE2},
	kernel.Impl[ScaleKernel]{Name: "scale_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: scaleNEON},
	kernel.Impl[ScaleKernel]{Name: "scale_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: scaleRVV},
	kernel.Impl[ScaleKernel]{Name: "scale_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: scaleGeneric},
)

// Scale computes dst[i] = src[i] * scalar elementwise.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Scale(dst, src []float32, scalar float32) {
	if len(dst) != len(src) {
		panic("vec: slice length mismatch")
	}
	ScaleFamily.Resolve()(dst, src, scalar)
}

func scaleGeneric(dst, src []float32, scalar float32) {
	for i := range src {
		dst[i] = src[i] * scalar
	}
}

func scaleBlocked(dst, src []float32, scalar float32, width int) {
	n := len(src)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = src[i+j] * scalar
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = src[i] * scalar
	}
}

// scaleSSE2 mirrors the 128-bit path: four lanes per iteration.
func scaleSSE2(dst, src []float32, scalar float32) {
	scaleBlocked(dst, src, scalar, 4)
}

// scaleAVX mirrors the 256-bit path: eight lanes per iteration.
func scaleAVX(dst, src []float32, scalar float32) {
	scaleBlocked(dst, src, scalar, 8)
}

// scaleNEON mirrors the 128-bit Advanced SIMD path.
func scaleNEON(dst, src []float32, scalar float32) {
	scaleBlocked(dst, src, scalar, 4)
}

// scaleRVV mirrors the vector-length-agnostic path with no scalar tail.
func scaleRVV(dst, src []float32, scalar float32) {
	scaleGeneric(dst, src, scalar)
}
