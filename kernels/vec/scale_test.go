package vec

import (
	"testing"

	"github.com/cwbudde/algo-kernels/internal/testutil"
)

func randomFloats(n int, seed int64) []float32 {
	return testutil.RandomFloats32(n, seed, 10)
}

func TestScaleVariantsMatchGeneric(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 100, 1000}
	scalars := []float32{0, 1, -1, 0.5, 2.5}

	for _, info := range ScaleFamily.Impls() {
		fn, err := ScaleFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range sizes {
				src := randomFloats(n, 21)
				for _, s := range scalars {
					want := make([]float32, n)
					got := make([]float32, n)

					scaleGeneric(want, src, s)
					fn(got, src, s)

					for i := range got {
						if got[i] != want[i] {
							t.Fatalf("n=%d scalar=%v [%d]: got %v, want %v", n, s, i, got[i], want[i])
						}
					}
				}
			}
		})
	}
}

func TestScaleKnownValues(t *testing.T) {
	dst := make([]float32, 3)
	Scale(dst, []float32{1, -2, 0.5}, 2)
	want := []float32{2, -4, 1}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestScalePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Scale should panic on mismatched lengths")
		}
	}()
	Scale(make([]float32, 5), make([]float32, 6), 1)
}

func BenchmarkScale(b *testing.B) {
	for _, info := range ScaleFamily.Impls() {
		fn, err := ScaleFamily.Lookup(info.Name)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(info.Name, func(b *testing.B) {
			src := randomFloats(4096, 1)
			dst := make([]float32, 4096)

			b.SetBytes(4096 * 4 * 2)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				fn(dst, src, 2.5)
			}
		})
	}
}
