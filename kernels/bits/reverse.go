package bits

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// ReverseKernel reverses the bit order within each byte:
// dst[i] = bit-reverse(src[i]).
type ReverseKernel = func(dst, src []byte)

// ReverseFamily enumerates the registered bit-reversal implementations.
var ReverseFamily = kernel.NewFamily[ReverseKernel]("bit_reverse_8u",
	kernel.Impl[ReverseKernel]{Name: "bit_reverse_u_ssse3", Level: cpu.SIMDSSSE3, Align: kernel.AlignUnaligned, Priority: 10, Fn: reverseSSSE3},
	kernel.Impl[ReverseKernel]{Name: "bit_reverse_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: reverseNEON},
	kernel.Impl[ReverseKernel]{Name: "bit_reverse_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: reverseGeneric},
)

// Reverse reverses the bit order within each byte of src into dst.
// Slices must have equal length. Panics if lengths differ.
// Every element is processed, including any partial trailing block.
func Reverse(dst, src []byte) {
	if len(dst) != len(src) {
		panic("bits: slice length mismatch")
	}
	ReverseFamily.Resolve()(dst, src)
}

// reverseByte swaps bit order with a three-step exchange network.
func reverseByte(b byte) byte {
	b = b>>4 | b<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func reverseGeneric(dst, src []byte) {
	for i := range src {
		dst[i] = reverseByte(src[i])
	}
}

// reverseNibbles is the per-nibble reversal table used by the shuffle path.
var reverseNibbles = [16]byte{
	0x0, 0x8, 0x4, 0xC, 0x2, 0xA, 0x6, 0xE,
	0x1, 0x9, 0x5, 0xD, 0x3, 0xB, 0x7, 0xF,
}

// reverseSSSE3 mirrors the nibble-table shuffle path: 16 bytes per
// iteration, with a scalar tail so every element is processed.
func reverseSSSE3(dst, src []byte) {
	n := len(src)
	blocked := n - n%16
	for i := 0; i < blocked; i += 16 {
		for j := 0; j < 16; j++ {
			b := src[i+j]
			dst[i+j] = reverseNibbles[b&0x0F]<<4 | reverseNibbles[b>>4]
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = reverseByte(src[i])
	}
}

// reverseNEON mirrors the rbit path: 8 bytes per iteration.
func reverseNEON(dst, src []byte) {
	n := len(src)
	blocked := n - n%8
	for i := 0; i < blocked; i += 8 {
		for j := 0; j < 8; j++ {
			b := src[i+j]
			dst[i+j] = reverseNibbles[b&0x0F]<<4 | reverseNibbles[b>>4]
		}
	}
	for i := blocked; i < n; i++ {
		dst[i] = reverseByte(src[i])
	}
}
