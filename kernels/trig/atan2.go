package trig

import (
	"math"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// Atan2Kernel is the signature shared by all atan2 implementations:
// dst[i] = atan2(imag(src[i]), real(src[i])) / normalizeFactor.
type Atan2Kernel = func(dst []float32, src []complex64, normalizeFactor float32)

// Atan2Family enumerates the registered atan2 implementations. The
// "atan2_polynomial" entry is a second capability-independent body using
// the same rational approximation as the vector paths; it ranks above the
// plain generic entry.
var Atan2Family = kernel.NewFamily[Atan2Kernel]("atan2_32fc_32f",
	kernel.Impl[Atan2Kernel]{Name: "atan2_a_avx2_fma", Level: cpu.SIMDAVX2FMA, Align: kernel.AlignAligned, Priority: 25, Fn: atan2AVX2FMA},
	kernel.Impl[Atan2Kernel]{Name: "atan2_u_avx2_fma", Level: cpu.SIMDAVX2FMA, Align: kernel.AlignUnaligned, Priority: 25, Fn: atan2AVX2FMA},
	kernel.Impl[Atan2Kernel]{Name: "atan2_a_sse4_1", Level: cpu.SIMDSSE41, Align: kernel.AlignAligned, Priority: 10, Fn: atan2SSE41},
	kernel.Impl[Atan2Kernel]{Name: "atan2_u_sse4_1", Level: cpu.SIMDSSE41, Align: kernel.AlignUnaligned, Priority: 10, Fn: atan2SSE41},
	kernel.Impl[Atan2Kernel]{Name: "atan2_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: atan2NEON},
	kernel.Impl[Atan2Kernel]{Name: "atan2_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: atan2RVV},
	kernel.Impl[Atan2Kernel]{Name: "atan2_polynomial", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 1, Fn: atan2Polynomial},
	kernel.Impl[Atan2Kernel]{Name: "atan2_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: atan2Generic},
)

// Atan2 computes dst[i] = atan2(imag(src[i]), real(src[i])) / normalizeFactor
// for each element. Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Atan2(dst []float32, src []complex64, normalizeFactor float32) {
	if len(dst) != len(src) {
		panic("trig: slice length mismatch")
	}
	Atan2Family.Resolve()(dst, src, normalizeFactor)
}

func atan2Scalar(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func atan2Generic(dst []float32, src []complex64, normalizeFactor float32) {
	inv := 1 / normalizeFactor
	for i := range src {
		dst[i] = atan2Scalar(imag(src[i]), real(src[i])) * inv
	}
}

// atanPoly evaluates a minimax polynomial for atan on |x| <= 1.
// Maximum absolute error is below 2e-6 over the interval.
func atanPoly(x float32) float32 {
	t := x * x
	p := float32(-0.0117212)
	p = p*t + 0.0526533
	p = p*t - 0.1164329
	p = p*t + 0.1935435
	p = p*t - 0.3326235
	p = p*t + 0.9999773
	return p * x
}

// atan2Lane computes the full-plane arctangent from the octant-reduced
// polynomial, matching the standard library within the family tolerance.
func atan2Lane(y, x float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	ay := y
	if ay < 0 {
		ay = -ay
	}
	ax := x
	if ax < 0 {
		ax = -ax
	}
	swapped := ay > ax
	var r float32
	if swapped {
		r = x / y
	} else {
		r = y / x
	}
	a := atanPoly(r)
	if swapped {
		// Signbit, not a comparison: r can be negative zero here
		// (e.g. x = 0, y = -1) and must pick the -pi/2 branch.
		if math.Signbit(float64(r)) {
			a = float32(-math.Pi/2) - a
		} else {
			a = float32(math.Pi/2) - a
		}
	}
	if x < 0 {
		if y >= 0 {
			a += float32(math.Pi)
		} else {
			a -= float32(math.Pi)
		}
	}
	return a
}

// atan2Polynomial is the capability-independent polynomial body: same lane
// math as the vector paths, plain loop.
func atan2Polynomial(dst []float32, src []complex64, normalizeFactor float32) {
	inv := 1 / normalizeFactor
	for i := range src {
		dst[i] = atan2Lane(imag(src[i]), real(src[i])) * inv
	}
}

// atan2Blocked processes width lanes per iteration with a scalar tail.
// The tail uses the same scalar element as the generic implementation.
func atan2Blocked(dst []float32, src []complex64, normalizeFactor float32, width int) {
	inv := 1 / normalizeFactor
	n := len(src)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			c := src[i+j]
			dst[i+j] = atan2Lane(imag(c), real(c)) * inv
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = atan2Scalar(imag(src[i]), real(src[i])) * inv
	}
}

// atan2SSE41 mirrors the 128-bit path: four complex lanes per iteration.
func atan2SSE41(dst []float32, src []complex64, normalizeFactor float32) {
	atan2Blocked(dst, src, normalizeFactor, 4)
}

// atan2AVX2FMA mirrors the 256-bit fused multiply-add path.
func atan2AVX2FMA(dst []float32, src []complex64, normalizeFactor float32) {
	atan2Blocked(dst, src, normalizeFactor, 8)
}

// atan2NEON mirrors the 128-bit Advanced SIMD path.
func atan2NEON(dst []float32, src []complex64, normalizeFactor float32) {
	atan2Blocked(dst, src, normalizeFactor, 4)
}

// atan2RVV mirrors the vector-length-agnostic path with no scalar tail.
func atan2RVV(dst []float32, src []complex64, normalizeFactor float32) {
	atan2Polynomial(dst, src, normalizeFactor)
}
