package bits

import (
	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// PackKernel packs 8 input bytes into 1 output byte, first input bit to the
// MSB. Only the LSB of each input byte is consumed. nBytes counts OUTPUT
// (packed) bytes: the kernel reads 8*nBytes input bytes.
type PackKernel = func(dst, src []byte, nBytes int)

// UnpackKernel is the inverse: each input byte expands into 8 output bytes
// holding one bit each in the LSB, MSB first. nBytes counts INPUT (packed)
// bytes: the kernel writes 8*nBytes output bytes.
type UnpackKernel = func(dst, src []byte, nBytes int)

// PackFamily enumerates the registered bit-packing implementations.
var PackFamily = kernel.NewFamily[PackKernel]("pack8_8u",
	kernel.Impl[PackKernel]{Name: "pack8_a_ssse3", Level: cpu.SIMDSSSE3, Align: kernel.AlignAligned, Priority: 10, Fn: packSSSE3},
	kernel.Impl[PackKernel]{Name: "pack8_u_ssse3", Level: cpu.SIMDSSSE3, Align: kernel.AlignUnaligned, Priority: 10, Fn: packSSSE3},
	kernel.Impl[PackKernel]{Name: "pack8_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: packNEON},
	kernel.Impl[PackKernel]{Name: "pack8_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: packRVV},
	kernel.Impl[PackKernel]{Name: "pack8_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: packGeneric},
)

// UnpackFamily enumerates the registered bit-unpacking implementations.
var UnpackFamily = kernel.NewFamily[UnpackKernel]("unpack8_8u",
	kernel.Impl[UnpackKernel]{Name: "unpack8_a_ssse3", Level: cpu.SIMDSSSE3, Align: kernel.AlignAligned, Priority: 10, Fn: unpackSSSE3},
	kernel.Impl[UnpackKernel]{Name: "unpack8_u_ssse3", Level: cpu.SIMDSSSE3, Align: kernel.AlignUnaligned, Priority: 10, Fn: unpackSSSE3},
	kernel.Impl[UnpackKernel]{Name: "unpack8_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: unpackNEON},
	kernel.Impl[UnpackKernel]{Name: "unpack8_u_rvv", Level: cpu.SIMDRVV, Align: kernel.AlignUnaligned, Priority: 15, Fn: unpackRVV},
	kernel.Impl[UnpackKernel]{Name: "unpack8_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: unpackGeneric},
)

// Pack packs groups of 8 unpacked bit-bytes into single bytes, first bit to
// MSB. nBytes counts output bytes. Panics if the buffers are too short.
// Automatically selects the best implementation for the host CPU.
func Pack(dst, src []byte, nBytes int) {
	if len(dst) < nBytes || len(src) < 8*nBytes {
		panic("bits: buffer too short")
	}
	PackFamily.Resolve()(dst, src, nBytes)
}

// Unpack expands packed bytes into one bit per output byte, MSB first.
// nBytes counts input (packed) bytes. Panics if the buffers are too short.
func Unpack(dst, src []byte, nBytes int) {
	if len(src) < nBytes || len(dst) < 8*nBytes {
		panic("bits: buffer too short")
	}
	UnpackFamily.Resolve()(dst, src, nBytes)
}

// packByte packs 8 input bytes' LSBs into one byte, first input to MSB.
func packByte(src []byte) byte {
	var out byte
	out |= (src[0] & 0x01) << 7
	out |= (src[1] & 0x01) << 6
	out |= (src[2] & 0x01) << 5
	out |= (src[3] & 0x01) << 4
	out |= (src[4] & 0x01) << 3
	out |= (src[5] & 0x01) << 2
	out |= (src[6] & 0x01) << 1
	out |= src[7] & 0x01
	return out
}

// unpackByte expands one packed byte into 8 output bytes, MSB first.
func unpackByte(dst []byte, b byte) {
	dst[0] = (b & 0x80) >> 7
	dst[1] = (b & 0x40) >> 6
	dst[2] = (b & 0x20) >> 5
	dst[3] = (b & 0x10) >> 4
	dst[4] = (b & 0x08) >> 3
	dst[5] = (b & 0x04) >> 2
	dst[6] = (b & 0x02) >> 1
	dst[7] = b & 0x01
}

func packGeneric(dst, src []byte, nBytes int) {
	for i := 0; i < nBytes; i++ {
		dst[i] = packByte(src[8*i:])
	}
}

// packBlocked emits blockBytes output bytes per iteration with a per-byte
// tail, mirroring the 16- and 64-input-byte vector paths.
func packBlocked(dst, src []byte, nBytes, blockBytes int) {
	blocked := nBytes - nBytes%blockBytes
	for i := 0; i < blocked; i += blockBytes {
		for j := 0; j < blockBytes; j++ {
			dst[i+j] = packByte(src[8*(i+j):])
		}
	}
	for i := blocked; i < nBytes; i++ {
		dst[i] = packByte(src[8*i:])
	}
}

// packSSSE3 mirrors the byte-shuffle path: two output bytes (16 input
// bytes) per iteration.
func packSSSE3(dst, src []byte, nBytes int) {
	packBlocked(dst, src, nBytes, 2)
}

// packNEON mirrors the 128-bit Advanced SIMD path: eight output bytes per
// iteration.
func packNEON(dst, src []byte, nBytes int) {
	packBlocked(dst, src, nBytes, 8)
}

// packRVV mirrors the vector-length-agnostic path with no tail.
func packRVV(dst, src []byte, nBytes int) {
	packGeneric(dst, src, nBytes)
}

func unpackGeneric(dst, src []byte, nBytes int) {
	for i := 0; i < nBytes; i++ {
		unpackByte(dst[8*i:], src[i])
	}
}

func unpackBlocked(dst, src []byte, nBytes, blockBytes int) {
	blocked := nBytes - nBytes%blockBytes
	for i := 0; i < blocked; i += blockBytes {
		for j := 0; j < blockBytes; j++ {
			unpackByte(dst[8*(i+j):], src[i+j])
		}
	}
	for i := blocked; i < nBytes; i++ {
		unpackByte(dst[8*i:], src[i])
	}
}

// unpackSSSE3 mirrors the byte-shuffle path: two input bytes per iteration.
func unpackSSSE3(dst, src []byte, nBytes int) {
	unpackBlocked(dst, src, nBytes, 2)
}

// unpackNEON mirrors the 128-bit Advanced SIMD path.
func unpackNEON(dst, src []byte, nBytes int) {
	unpackBlocked(dst, src, nBytes, 8)
}

// unpackRVV mirrors the vector-length-agnostic path with no tail.
func unpackRVV(dst, src []byte, nBytes int) {
	unpackGeneric(dst, src, nBytes)
}
