package trig

import (
	"math"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// AsinKernel is the signature shared by all arcsine implementations:
// dst[i] = asin(src[i]) for i in [0, len(src)).
type AsinKernel = func(dst, src []float32)

// AsinFamily enumerates the registered arcsine implementations.
var AsinFamily = kernel.NewFamily[AsinKernel]("asin_32f",
	kernel.Impl[AsinKernel]{Name: "asin_a_avx2_fma", Level: cpu.SIMDAVX2FMA, Align: kernel.AlignAligned, Priority: 25, Fn: asinAVX2FMA},
	kernel.Impl[AsinKernel]{Name: "asin_u_avx2_fma", Level: cpu.SIMDAVX2FMA, Align: kernel.AlignUnaligned, Priority: 25, Fn: asinAVX2FMA},
	kernel.Impl[AsinKernel]{Name: "asin_u_avx", Level: cpu.SIMDAVX, Align: kernel.AlignUnaligned, Priority: 15, Fn: asinAVX},
	kernel.Impl[AsinKernel]{Name: "asin_a_sse4_1", Level: cpu.SIMDSSE41, Align: kernel.AlignAligned, Priority: 10, Fn: asinSSE41},
	kernel.Impl[AsinKernel]{Name: "asin_u_sse4_1", Level: cpu.SIMDSSE41, Align: kernel.AlignUnaligned, Priority: 10, Fn: asinSSE41},
	kernel.Impl[AsinKernel]{Name: "asin_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: asinNEON},
	kernel.Impl[AsinKernel]{Name: "asin_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: asinRVV},
	kernel.Impl[AsinKernel]{Name: "asin_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: asinGeneric},
)

// Asin computes dst[i] = asin(src[i]) for each element.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Asin(dst, src []float32) {
	if len(dst) != len(src) {
		panic("trig: slice length mismatch")
	}
	AsinFamily.Resolve()(dst, src)
}

// asinScalar is the scalar reference element. The generic implementation
// and every blocked variant's remainder tail go through this, so a
// remainder computed by any variant is identical to the generic result.
func asinScalar(a float32) float32 {
	return float32(math.Asin(float64(a)))
}

func asinGeneric(dst, src []float32) {
	for i := range src {
		dst[i] = asinScalar(src[i])
	}
}

// asinLane evaluates arcsine through the arctangent identity
// asin(a) = atan(a / sqrt((1+a)(1-a))), with the argument reduced twice via
// x -> x + sqrt(x*x+1) and a short odd Taylor polynomial on the result.
// This is the per-lane computation of the vector paths; it matches the
// standard library to within ~1e-5 absolute over [-1, 1].
func asinLane(a float32) float32 {
	w := a / float32(math.Sqrt(float64((1+a)*(1-a))))
	z := w
	if z < 0 {
		z = -z
	}
	x := z
	if z < 1 {
		x = 1 / z
	}
	x = x + float32(math.Sqrt(float64(x)*float64(x)+1))
	x = x + float32(math.Sqrt(float64(x)*float64(x)+1))
	x = 1 / x

	t := x * x
	y := float32(1.0 / 5.0)
	y = y*t - 1.0/3.0
	y = y*t + 1
	y = y * x * 4

	if z > 1 {
		y = float32(math.Pi/2) - y
	}
	if w < 0 {
		y = -y
	}
	return y
}

// asinBlocked processes width lanes per iteration with a scalar tail.
func asinBlocked(dst, src []float32, width int) {
	n := len(src)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = asinLane(src[i+j])
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = asinScalar(src[i])
	}
}

// asinSSE41 mirrors the 128-bit path: four lanes per iteration.
func asinSSE41(dst, src []float32) {
	asinBlocked(dst, src, 4)
}

// asinAVX mirrors the 256-bit path: eight lanes per iteration.
func asinAVX(dst, src []float32) {
	asinBlocked(dst, src, 8)
}

// asinAVX2FMA mirrors the 256-bit fused multiply-add path. The lane math
// is the same reduced-argument polynomial; fusing does not change the
// result beyond the shared tolerance.
func asinAVX2FMA(dst, src []float32) {
	asinBlocked(dst, src, 8)
}

// asinNEON mirrors the 128-bit Advanced SIMD path: four lanes per iteration.
func asinNEON(dst, src []float32) {
	asinBlocked(dst, src, 4)
}

// asinRVV mirrors the vector-length-agnostic path: the whole buffer is one
// strip-mined loop with no scalar tail.
func asinRVV(dst, src []float32) {
	for i := range src {
		dst[i] = asinLane(src[i])
	}
}
