// Package kernel provides the implementation registry and runtime dispatch
// for elementwise kernel families.
//
// A kernel family is one logical operation (e.g. arcsine over float32
// buffers) realized by several interchangeable implementation variants, each
// tied to a SIMD level and an alignment class. Variants register at family
// construction time; at runtime the best variant compatible with the
// detected CPU features is selected once and cached for the remainder of
// the process.
//
// Families are immutable after construction and all methods are safe for
// concurrent use.
package kernel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-kernels/internal/cpu"
)

// ErrNotFound is returned by Lookup when no implementation in the family
// carries the requested name. This usually indicates a typo or an
// implementation that was not registered in this build.
var ErrNotFound = errors.New("kernel: implementation not found")

// Alignment classifies the pointer alignment contract of an implementation.
type Alignment int

const (
	// AlignAgnostic places no alignment requirement on buffers.
	// Generic (scalar) implementations are alignment-agnostic.
	AlignAgnostic Alignment = iota

	// AlignUnaligned tolerates arbitrarily aligned buffers using
	// unaligned vector loads. This is the default resolution class.
	AlignUnaligned

	// AlignAligned requires all buffers to be aligned to the
	// implementation's vector width. Violating this contract is
	// undefined behavior; the entry is only returned by ResolveAligned
	// or by name.
	AlignAligned
)

// String returns the alignment tag used in implementation names.
func (a Alignment) String() string {
	switch a {
	case AlignAgnostic:
		return "any"
	case AlignUnaligned:
		return "u"
	case AlignAligned:
		return "a"
	default:
		return "unknown"
	}
}

// Impl is one registered implementation variant of a kernel family.
//
// Name follows the convention <family>_<alignment-tag>_<arch-tag>, e.g.
// "asin_u_avx2_fma". Priority orders variants of equal compatibility;
// wider vectors rank higher. Suggested priorities:
//   - generic: 0
//   - SSE2/SSSE3/SSE4.x: 10
//   - AVX / NEON / RVV: 15
//   - AVX2: 20
//   - AVX2+FMA: 25
type Impl[F any] struct {
	Name     string
	Level    cpu.SIMDLevel
	Align    Alignment
	Priority int
	Fn       F
}

// ImplInfo describes a registered implementation without its callable.
// It is the answer to the function-description query used by the
// verification and benchmark tooling.
type ImplInfo struct {
	Name     string
	Level    cpu.SIMDLevel
	Align    Alignment
	Priority int
}

// Family owns the ordered implementation list for one kernel operation and
// memoizes runtime resolution.
//
// The implementation list is fixed at construction; resolution happens at
// most once per process for the default (unaligned) and the aligned path
// respectively, guarded by sync.Once so concurrent first use is safe.
type Family[F any] struct {
	name  string
	impls []Impl[F] // sorted by descending priority, stable

	resolveOnce sync.Once
	resolved    *Impl[F]

	alignedOnce sync.Once
	aligned     *Impl[F]
}

// NewFamily constructs a kernel family from its implementation variants.
//
// Every family must carry at least one alignment-agnostic implementation
// requiring no SIMD level; this guarantees resolution succeeds on any host.
// A missing generic entry is a build defect, not a runtime condition, and
// panics immediately.
func NewFamily[F any](name string, impls ...Impl[F]) *Family[F] {
	hasGeneric := false
	for i := range impls {
		if impls[i].Level == cpu.SIMDNone && impls[i].Align == AlignAgnostic {
			hasGeneric = true
			break
		}
	}
	if !hasGeneric {
		panic(fmt.Sprintf("kernel: family %q has no generic implementation", name))
	}

	f := &Family[F]{
		name:  name,
		impls: make([]Impl[F], len(impls)),
	}
	copy(f.impls, impls)
	sortByPriority(f.impls)
	return f
}

// sortByPriority sorts entries by priority in descending order.
// Insertion sort keeps the sort stable so registration order breaks ties
// (the list is small, ~3-8 entries).
func sortByPriority[F any](impls []Impl[F]) {
	for i := 1; i < len(impls); i++ {
		key := impls[i]
		j := i - 1
		for j >= 0 && impls[j].Priority < key.Priority {
			impls[j+1] = impls[j]
			j--
		}
		impls[j+1] = key
	}
}

// Name returns the family name.
func (f *Family[F]) Name() string {
	return f.name
}

// Resolve returns the best implementation compatible with the detected CPU
// features, excluding alignment-requiring entries.
//
// The selection runs once; subsequent calls return the cached callable
// without re-scanning. Concurrent first use is safe and all callers observe
// the same choice.
func (f *Family[F]) Resolve() F {
	f.resolveOnce.Do(func() {
		f.resolved = f.selectImpl(cpu.DetectFeatures(), false)
	})
	return f.resolved.Fn
}

// ResolveAligned returns the best compatible implementation with
// alignment-requiring entries eligible. Callers must guarantee that every
// buffer passed to the returned callable satisfies the implementation's
// alignment contract.
func (f *Family[F]) ResolveAligned() F {
	f.alignedOnce.Do(func() {
		f.aligned = f.selectImpl(cpu.DetectFeatures(), true)
	})
	return f.aligned.Fn
}

// ResolvedInfo reports which implementation Resolve selected (resolving
// first if necessary).
func (f *Family[F]) ResolvedInfo() ImplInfo {
	f.Resolve()
	return info(f.resolved)
}

// selectImpl scans the priority-ordered list and returns the first entry
// whose SIMD level the given features support. The generic entry makes the
// scan total, so the return value is never nil.
func (f *Family[F]) selectImpl(features cpu.Features, allowAligned bool) *Impl[F] {
	for i := range f.impls {
		impl := &f.impls[i]
		if !allowAligned && impl.Align == AlignAligned {
			continue
		}
		if cpu.Supports(features, impl.Level) {
			return impl
		}
	}
	// Unreachable: NewFamily guarantees a generic entry.
	panic(fmt.Sprintf("kernel: family %q resolution failed", f.name))
}

// Lookup returns the implementation with the given name, bypassing both the
// dispatch table and capability checks. Calling an implementation the host
// does not support is the caller's risk; this path exists for verification
// and benchmarking of specific variants.
func (f *Family[F]) Lookup(name string) (F, error) {
	for i := range f.impls {
		if f.impls[i].Name == name {
			return f.impls[i].Fn, nil
		}
	}
	var zero F
	return zero, fmt.Errorf("%w: %q in family %q", ErrNotFound, name, f.name)
}

// Impls returns descriptions of all registered implementations in selection
// order (descending priority, generic last).
func (f *Family[F]) Impls() []ImplInfo {
	infos := make([]ImplInfo, len(f.impls))
	for i := range f.impls {
		infos[i] = info(&f.impls[i])
	}
	return infos
}

func info[F any](impl *Impl[F]) ImplInfo {
	return ImplInfo{
		Name:     impl.Name,
		Level:    impl.Level,
		Align:    impl.Align,
		Priority: impl.Priority,
	}
}
