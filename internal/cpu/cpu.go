// Package cpu provides CPU feature detection for kernel implementation selection.
//
// This package detects SIMD instruction set extensions (SSE4.1, AVX2, FMA, NEON,
// RVV) available on the current processor and caches the results for efficient
// querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"

	"github.com/xyproto/env/v2"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD requirement (pure Go fallback, runs anywhere).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDSSSE3 indicates x86-64 SSSE3 (byte shuffle support).
	SIMDSSSE3

	// SIMDSSE41 indicates x86-64 SSE4.1.
	SIMDSSE41

	// SIMDSSE42 indicates x86-64 SSE4.2 (includes POPCNT).
	SIMDSSE42

	// SIMDAVX indicates x86-64 AVX (Advanced Vector Extensions).
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2 (256-bit integer operations).
	SIMDAVX2

	// SIMDAVX2FMA indicates x86-64 AVX2 with fused multiply-add.
	SIMDAVX2FMA

	// SIMDNEON indicates ARM NEON / Advanced SIMD.
	SIMDNEON

	// SIMDRVV indicates the RISC-V Vector extension.
	SIMDRVV

	// SIMDRVVSeg indicates RISC-V Vector segmented load/store support.
	SIMDRVVSeg
)

// String returns a human-readable name for the SIMD level.
// The names match the arch tags used in implementation names
// (e.g. "asin_u_avx2_fma").
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDSSSE3:
		return "ssse3"
	case SIMDSSE41:
		return "sse4_1"
	case SIMDSSE42:
		return "sse4_2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX2FMA:
		return "avx2_fma"
	case SIMDNEON:
		return "neon"
	case SIMDRVV:
		return "rvv"
	case SIMDRVVSeg:
		return "rvvseg"
	default:
		return "unknown"
	}
}

// Features describes CPU capabilities relevant to kernel implementation selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2  bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasSSSE3 bool // Supplemental SSE3 (byte shuffles)
	HasSSE41 bool // SSE4.1
	HasSSE42 bool // SSE4.2 (POPCNT)
	HasAVX   bool // Advanced Vector Extensions
	HasAVX2  bool // Advanced Vector Extensions 2
	HasFMA   bool // Fused multiply-add

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// RISC-V SIMD features
	HasRVV bool // RISC-V Vector extension

	// Control flags
	ForceGeneric bool // Disable all SIMD-level implementations (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
//
// Setting the ALGOKERNELS_FORCE_GENERIC environment variable to a true value
// forces generic implementations regardless of hardware capabilities.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		if env.Bool("ALGOKERNELS_FORCE_GENERIC") {
			detectedFeatures.ForceGeneric = true
		}
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVX2 returns true if the CPU supports AVX2 instructions.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the kernel registry to determine implementation
// compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDSSSE3:
		return features.HasSSSE3
	case SIMDSSE41:
		return features.HasSSE41
	case SIMDSSE42:
		return features.HasSSE42
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX2FMA:
		return features.HasAVX2 && features.HasFMA
	case SIMDNEON:
		return features.HasNEON
	case SIMDRVV:
		return features.HasRVV
	case SIMDRVVSeg:
		// Segmented load/store detection is not exposed by the runtime yet.
		return false
	default:
		return false
	}
}
