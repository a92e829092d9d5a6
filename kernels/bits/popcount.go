package bits

import (
	stdbits "math/bits"

	"github.com/cwbudde/algo-kernels/internal/cpu"
	"github.com/cwbudde/algo-kernels/kernel"
)

// PopcountKernel counts set bits in a 64-bit word.
type PopcountKernel = func(x uint64) uint64

// PopcountFamily enumerates the registered population-count implementations.
var PopcountFamily = kernel.NewFamily[PopcountKernel]("popcnt_64u",
	kernel.Impl[PopcountKernel]{Name: "popcnt_u_sse4_2", Level: cpu.SIMDSSE42, Align: kernel.AlignUnaligned, Priority: 10, Fn: popcountSSE42},
	kernel.Impl[PopcountKernel]{Name: "popcnt_u_neon", Level: cpu.SIMDNEON, Align: kernel.AlignUnaligned, Priority: 15, Fn: popcountNEON},
	kernel.Impl[PopcountKernel]{Name: "popcnt_generic", Level: cpu.SIMDNone, Align: kernel.AlignAgnostic, Priority: 0, Fn: popcountGeneric},
)

// Popcount returns the number of set bits in x.
// Automatically selects the best implementation for the host CPU.
func Popcount(x uint64) uint64 {
	return PopcountFamily.Resolve()(x)
}

// popcountGeneric counts bits with the parallel-sum bit trick, one 32-bit
// half at a time. This is faster than a lookup table.
func popcountGeneric(x uint64) uint64 {
	lo := uint32(x)
	lo = (lo & 0x55555555) + (lo >> 1 & 0x55555555)
	lo = (lo & 0x33333333) + (lo >> 2 & 0x33333333)
	lo = (lo + (lo >> 4)) & 0x0F0F0F0F
	lo = lo + (lo >> 8)
	lo = (lo + (lo >> 16)) & 0x0000003F

	hi := uint32(x >> 32)
	hi = (hi & 0x55555555) + (hi >> 1 & 0x55555555)
	hi = (hi & 0x33333333) + (hi >> 2 & 0x33333333)
	hi = (hi + (hi >> 4)) & 0x0F0F0F0F
	hi = hi + (hi >> 8)
	hi = (hi + (hi >> 16)) & 0x0000003F

	return uint64(lo) + uint64(hi)
}

// popcountSSE42 maps to the hardware POPCNT instruction via math/bits.
func popcountSSE42(x uint64) uint64 {
	return uint64(stdbits.OnesCount64(x))
}

// popcountNEON mirrors the vcnt path: per-byte counts summed across lanes.
func popcountNEON(x uint64) uint64 {
	var sum uint64
	for i := 0; i < 8; i++ {
		sum += uint64(stdbits.OnesCount8(byte(x >> (8 * i))))
	}
	return sum
}
