// Package puppet normalizes every kernel family to one fixed
// two-buffer-plus-count shape so a single generic driver can verify and
// benchmark all implementations of all families identically.
//
// Families differ in arity and size semantics: bit packing consumes 8 input
// bytes per output byte, complex addition consumes two input vectors, atan2
// takes a scalar parameter. Each adapter rescales the externally requested
// unit count into whatever the underlying implementation expects and fixes
// auxiliary scalars, so "run n units" means the same amount of visible work
// for every family. Adapters are deterministic and write only the output
// buffer.
package puppet

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"unsafe"

	"github.com/cwbudde/algo-kernels/kernel"
)

// Compare selects how a candidate implementation's output is checked
// against the reference output.
type Compare int

const (
	// BitExact requires identical output bytes. Used by integer and
	// bitwise families, whose variants perform identical operations.
	BitExact Compare = iota

	// Float32Tol interprets outputs as float32 and allows a fixed
	// absolute tolerance, accounting for differing approximation and
	// summation order across variants.
	Float32Tol

	// Float64Tol interprets outputs as float64 with a fixed absolute
	// tolerance.
	Float64Tol
)

// Kernel drives one family through the normalized adapter shape.
type Kernel struct {
	// Name is the family name.
	Name string

	// Ref names the reference implementation all others are compared to.
	Ref string

	// InBytes and OutBytes are the input/output buffer bytes consumed and
	// produced per externally requested unit.
	InBytes, OutBytes int

	// Compare and Tol define the equivalence check.
	Compare Compare
	Tol     float64

	// Impls lists every registered implementation of the family.
	Impls func() []kernel.ImplInfo

	// Fill writes domain-appropriate random input (e.g. values in [-1, 1]
	// for arcsine, 0/1 bytes for bit packing).
	Fill func(rng *rand.Rand, in []byte)

	// Run invokes the named implementation over the normalized buffers.
	// It returns kernel.ErrNotFound (wrapped) for unknown names.
	Run func(implName string, out, in []byte, n int) error
}

// Buffers allocates zeroed input and output buffers for n units.
func (k Kernel) Buffers(n int) (out, in []byte) {
	return make([]byte, n*k.OutBytes), make([]byte, n*k.InBytes)
}

// Verify runs every implementation of the family over one fixed random
// input of n units and checks each output against the reference
// implementation's output. It returns the first discrepancy found.
func (k Kernel) Verify(n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	in := make([]byte, n*k.InBytes)
	k.Fill(rng, in)

	want := make([]byte, n*k.OutBytes)
	if err := k.Run(k.Ref, want, in, n); err != nil {
		return fmt.Errorf("%s: reference %s: %w", k.Name, k.Ref, err)
	}

	for _, info := range k.Impls() {
		got := make([]byte, n*k.OutBytes)
		if err := k.Run(info.Name, got, in, n); err != nil {
			return fmt.Errorf("%s: %s: %w", k.Name, info.Name, err)
		}
		if err := k.compare(got, want); err != nil {
			return fmt.Errorf("%s: %s vs %s: %w", k.Name, info.Name, k.Ref, err)
		}
	}
	return nil
}

func (k Kernel) compare(got, want []byte) error {
	switch k.Compare {
	case BitExact:
		if !bytes.Equal(got, want) {
			for i := range got {
				if got[i] != want[i] {
					return fmt.Errorf("byte %d: got %#02x, want %#02x", i, got[i], want[i])
				}
			}
		}
		return nil
	case Float32Tol:
		g := floats32(got, len(got)/4)
		w := floats32(want, len(want)/4)
		for i := range g {
			if !closeEnough(float64(g[i]), float64(w[i]), k.Tol) {
				return fmt.Errorf("element %d: got %v, want %v (tol %v)", i, g[i], w[i], k.Tol)
			}
		}
		return nil
	case Float64Tol:
		g := floats64(got, len(got)/8)
		w := floats64(want, len(want)/8)
		for i := range g {
			if !closeEnough(g[i], w[i], k.Tol) {
				return fmt.Errorf("element %d: got %v, want %v (tol %v)", i, g[i], w[i], k.Tol)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown compare mode %d", k.Compare)
	}
}

// closeEnough reports whether a and b agree within an absolute tolerance.
// NaN agrees with NaN so out-of-domain inputs compare equal.
func closeEnough(a, b, tol float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) <= tol
}

// Buffer reinterpretation helpers. The byte buffers come from make, whose
// allocations satisfy the element alignments used here.

func floats32(b []byte, n int) []float32 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), n)
}

func floats64(b []byte, n int) []float64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), n)
}

func complexes(b []byte, n int) []complex64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*complex64)(unsafe.Pointer(&b[0])), n)
}

func uints64(b []byte, n int) []uint64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), n)
}

func ints16(b []byte, n int) []int16 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&b[0])), n)
}
