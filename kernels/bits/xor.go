package bits

import (
	"encoding/binary"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// XorKernel is the signature shared by all XOR implementations:
// dst[i] = a[i] ^ b[i].
type XorKernel = func(dst, a, b []byte)

// XorFamily enumerates the registered XOR implementations.
var XorFamily = kernel.NewFamily[XorKernel]("exor_8u_x2",
	kernel.Impl[XorKernel]{Name: "exor_a_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignAligned, Priority: 10, Fn: xorSSE2},
	kernel.Impl[XorKernel]{Name: "exor_u_sse2", Level: cpu.SIMDSSE2, Align: kernel.AlignUnaligned, Priority: 10, Fn: xorSSE2},
	kernel.Impl[XorKernel]{Name: "exor_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: xorNEON},
	kernel.Impl[XorKernel]{Name: "exor_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: xorRVV},
	kernel.Impl[XorKernel]{Name: "exor_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: xorGeneric},
)

// Xor computes dst[i] = a[i] ^ b[i] elementwise over byte buffers.
// Slices must have equal length. Panics if lengths differ.
// Automatically selects the best implementation for the host CPU.
func Xor(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("bits: slice length mismatch")
	}
	XorFamily.Resolve()(dst, a, b)
}

func xorGeneric(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// xorWords XORs the given number of uint64 words per iteration with a
// per-byte tail.
// Byte order is irrelevant for XOR, so word loads are exact.
func xorWords(dst, a, b []byte, words int) {
	n := len(dst)
	stride := 8 * words
	blocked := n - n%stride
	for i := 0; i < blocked; i += stride {
		for w := 0; w < stride; w += 8 {
			x := binary.LittleEndian.Uint64(a[i+w:])
			y := binary.LittleEndian.Uint64(b[i+w:])
			binary.LittleEndian.PutUint64(dst[i+w:], x^y)
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// xorSSE2 mirrors the 128-bit path: 16 bytes per iteration.
func xorSSE2(dst, a, b []byte) {
	xorWords(dst, a, b, 2)
}

// xorNEON mirrors the 128-bit Advanced SIMD path.
func xorNEON(dst, a, b []byte) {
	xorWords(dst, a, b, 2)
}

// xorRVV mirrors the vector-length-agnostic path with no tail.
func xorRVV(dst, a, b []byte) {
	xorGeneric(dst, a, b)
}
