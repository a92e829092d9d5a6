package cplx

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// Complex16 is an interleaved 16-bit integer complex sample (I/Q pair).
type Complex16 struct {
	Re, Im int16
}

// DeinterleaveReal64Kernel extracts real components widened to float64:
// dst[i] = float64(real(src[i])).
type DeinterleaveReal64Kernel = func(dst []float64, src []complex64)

// DeinterleaveInt16Kernel splits interleaved 16-bit I/Q samples into two
// component buffers.
type DeinterleaveInt16Kernel = func(iOut, qOut []int16, src []Complex16)

// DeinterleaveReal64Family enumerates the registered real-component
// extraction implementations.
var DeinterleaveReal64Family = kernel.NewFamily[DeinterleaveReal64Kernel]("deinterleave_real_64f",
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_a_avx2", Level: cpu.SIMDAVX2, Align: kernel.AlignAligned, Priority: 20, Fn: deinterleaveReal64AVX2},
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_u_avx2", Level: cpu.SIMDAVX2, Align: kernel.AlignUnaligned, Priority: 20, Fn: deinterleaveReal64AVX2},
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: deinterleaveReal64SSE2},
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: deinterleaveReal64SSE2},
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: deinterleaveReal64NEON},
	kernel.Impl[DeinterleaveReal64Kernel]{Name: "deinterleave_real_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: deinterleaveReal64Generic},
)

// DeinterleaveInt16Family enumerates the registered 16-bit I/Q split
// implementations.
var DeinterleaveInt16Family = kernel.NewFamily[DeinterleaveInt16Kernel]("deinterleave_16i_x2",
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_a_avx2", Level: cpu.SIMDAVX2, Align: kernel.AlignAligned, Priority: 20, Fn: deinterleaveInt16AVX2},
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_u_avx2", Level: cpu.SIMDAVX2, Align: kernel.AlignUnaligned, Priority: 20, Fn: deinterleaveInt16AVX2},
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: deinterleaveInt16SSE2},
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: deinterleaveInt16SSE2},
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: deinterleaveInt16NEON},
	kernel.Impl[DeinterleaveInt16Kernel]{Name: "deinterleave16_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: deinterleaveInt16Generic},
)

// DeinterleaveReal64 extracts the real component of each complex64 sample,
// widened to float64. Slices must have equal length. Panics if lengths differ.
func DeinterleaveReal64(dst []float64, src []complex64) {
	if len(dst) != len(src) {
		panic("cplx: slice length mismatch")
	}
	DeinterleaveReal64Family.Resolve()(dst, src)
}

// DeinterleaveInt16 splits interleaved 16-bit I/Q samples into separate I
// and Q buffers. Slices must have equal length. Panics if lengths differ.
func DeinterleaveInt16(iOut, qOut []int16, src []Complex16) {
	if len(iOut) != len(src) || len(qOut) != len(src) {
		panic("cplx: slice length mismatch")
	}
	DeinterleaveInt16Family.Resolve()(iOut, qOut, src)
}

func deinterleaveReal64Generic(dst []float64, src []complex64) {
	for i := range src {
		dst[i] = float64(real(src[i]))
	}
}

func deinterleaveReal64Blocked(dst []float64, src []complex64, width int) {
	n := len(src)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			dst[i+j] = float64(real(src[i+j]))
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = float64(real(src[i]))
	}
}

// deinterleaveReal64SSE2 mirrors the 128-bit shuffle/convert path.
func deinterleaveReal64SSE2(dst []float64, src []complex64) {
	deinterleaveReal64Blocked(dst, src, 2)
}

// deinterleaveReal64AVX2 mirrors the 256-bit gather/convert path.
func deinterleaveReal64AVX2(dst []float64, src []complex64) {
	deinterleaveReal64Blocked(dst, src, 4)
}

// deinterleaveReal64NEON mirrors the de-interleaving load path (vld2).
func deinterleaveReal64NEON(dst []float64, src []complex64) {
	deinterleaveReal64Blocked(dst, src, 2)
}

func deinterleaveInt16Generic(iOut, qOut []int16, src []Complex16) {
	for i := range src {
		iOut[i] = src[i].Re
		qOut[i] = src[i].Im
	}
}

func deinterleaveInt16Blocked(iOut, qOut []int16, src []Complex16, width int) {
	n := len(src)
	blocked := n - n%width
	for i := 0; i < blocked; i += width {
		for j := 0; j < width; j++ {
			iOut[i+j] = src[i+j].Re
			qOut[i+j] = src[i+j].Im
		}
	}
	for i := blocked; i < n; i++ {
		iOut[i] = src[i].Re
		qOut[i] = src[i].Im
	}
}

// deinterleaveInt16SSE2 mirrors the 128-bit pack/shuffle path: eight I/Q
// pairs per iteration.
func deinterleaveInt16SSE2(iOut, qOut []int16, src []Complex16) {
	deinterleaveInt16Blocked(iOut, qOut, src, 8)
}

// deinterleaveInt16AVX2 mirrors the 256-bit path: sixteen pairs per iteration.
func deinterleaveInt16AVX2(iOut, qOut []int16, src []Complex16) {
	deinterleaveInt16Blocked(iOut, qOut, src, 16)
}

// deinterleaveInt16NEON mirrors the de-interleaving load path (vld2).
func deinterleaveInt16NEON(iOut, qOut []int16, src []Complex16) {
	deinterleaveInt16Blocked(iOut, qOut, src, 8)
}
