package trig

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kernels/internal/testutil"
)

// Absolute tolerance for comparing polynomial variants against the
// standard-library reference. Covers differing approximation order, not
// algorithmic divergence.
const tol = 1e-4

func absDiff(a, b float32) float64 {
	return math.Abs(float64(a) - float64(b))
}

func TestAsinScenario(t *testing.T) {
	// asin(0.5) = pi/6
	src := []float32{0.5}
	dst := make([]float32, 1)
	Asin(dst, src)
	if absDiff(dst[0], float32(math.Pi/6)) > tol {
		t.Errorf("Asin(0.5) = %v, want ~%v", dst[0], math.Pi/6)
	}
}

func TestAsinVariantsMatchGeneric(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

	for _, info := range AsinFamily.Impls() {
		fn, err := AsinFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range sizes {
				src := testutil.RandomFloats32(n, 42, 1)
				want := make([]float32, n)
				got := make([]float32, n)

				asinGeneric(want, src)
				fn(got, src)

				testutil.RequireSliceNear(t, got, want, tol)
			}
		})
	}
}

func TestAsinEdgeValues(t *testing.T) {
	src := []float32{-1, -0.5, 0, 0.5, 1}
	want := []float32{float32(-math.Pi / 2), float32(-math.Pi / 6), 0, float32(math.Pi / 6), float32(math.Pi / 2)}

	for _, info := range AsinFamily.Impls() {
		fn, _ := AsinFamily.Lookup(info.Name)
		t.Run(info.Name, func(t *testing.T) {
			dst := make([]float32, len(src))
			fn(dst, src)
			testutil.RequireSliceNear(t, dst, want, tol)
		})
	}
}

func TestAsinOutOfDomain(t *testing.T) {
	for _, info := range AsinFamily.Impls() {
		fn, _ := AsinFamily.Lookup(info.Name)
		t.Run(info.Name, func(t *testing.T) {
			dst := make([]float32, 2)
			fn(dst, []float32{1.5, -2})
			for i, v := range dst {
				if !math.IsNaN(float64(v)) {
					t.Errorf("[%d]: asin outside [-1,1] should be NaN, got %v", i, v)
				}
			}
		})
	}
}

// The scalar remainder of every blocked variant must match the generic
// implementation exactly, since both go through the same scalar element.
func TestAsinRemainderExact(t *testing.T) {
	const n = 13 // 8-lane blocks leave a 5-element tail, 4-lane blocks a 1-element tail
	src := testutil.RandomFloats32(n, 7, 1)
	want := make([]float32, n)
	asinGeneric(want, src)

	for _, name := range []string{"asin_u_sse4_1", "asin_u_avx2_fma", "asin_u_neon"} {
		fn, err := AsinFamily.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		got := make([]float32, n)
		fn(got, src)

		var width int
		switch name {
		case "asin_u_avx2_fma":
			width = 8
		default:
			width = 4
		}
		tail := n - n%width
		t.Run(name, func(t *testing.T) {
			testutil.RequireSliceExact(t, got[tail:], want[tail:])
		})
	}
}

func TestAsinPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Asin should panic on mismatched lengths")
		}
	}()
	Asin(make([]float32, 5), make([]float32, 6))
}

func TestAtan2Scenario(t *testing.T) {
	// atan2(1, 1) = pi/4 with normalize factor 1
	src := []complex64{complex(1, 1)}
	dst := make([]float32, 1)
	Atan2(dst, src, 1.0)
	if absDiff(dst[0], float32(math.Pi/4)) > tol {
		t.Errorf("Atan2(1+1i) = %v, want ~%v", dst[0], math.Pi/4)
	}
}

func TestAtan2VariantsMatchGeneric(t *testing.T) {
	sizes := []int{0, 1, 3, 4, 7, 8, 15, 16, 33, 100, 1000}
	factors := []float32{1, 2, 0.5, float32(math.Pi)}

	for _, info := range Atan2Family.Impls() {
		fn, err := Atan2Family.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range sizes {
				src := testutil.RandomComplex64(n, 99, 10)
				for _, factor := range factors {
					want := make([]float32, n)
					got := make([]float32, n)

					atan2Generic(want, src, factor)
					fn(got, src, factor)

					testutil.RequireSliceNear(t, got, want, tol)
				}
			}
		})
	}
}

func TestAtan2Quadrants(t *testing.T) {
	src := []complex64{
		complex(1, 1),   // pi/4
		complex(-1, 1),  // 3pi/4
		complex(-1, -1), // -3pi/4
		complex(1, -1),  // -pi/4
		complex(0, 1),   // pi/2
		complex(0, -1),  // -pi/2
		complex(-1, 0),  // pi
	}
	want := []float32{
		float32(math.Pi / 4), float32(3 * math.Pi / 4), float32(-3 * math.Pi / 4),
		float32(-math.Pi / 4), float32(math.Pi / 2), float32(-math.Pi / 2), float32(math.Pi),
	}

	for _, info := range Atan2Family.Impls() {
		fn, _ := Atan2Family.Lookup(info.Name)
		t.Run(info.Name, func(t *testing.T) {
			dst := make([]float32, len(src))
			fn(dst, src, 1.0)
			testutil.RequireSliceNear(t, dst, want, tol)
		})
	}
}

func TestAtan2NormalizeFactor(t *testing.T) {
	src := []complex64{complex(1, 1)}
	dst := make([]float32, 1)
	Atan2(dst, src, 2.0)
	if absDiff(dst[0], float32(math.Pi/8)) > tol {
		t.Errorf("Atan2 with factor 2 = %v, want ~%v", dst[0], math.Pi/8)
	}
}
