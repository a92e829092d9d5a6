package puppet

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernels/bits"
)

var catalogNames = []string{
	"asin_32f",
	"atan2_32fc_32f",
	"add_32fc_x2",
	"add_32fc_32f",
	"multiply_32fc_x2",
	"deinterleave_real_64f",
	"deinterleave_16i_x2",
	"pack8_8u",
	"unpack8_8u",
	"exor_8u_x2",
	"popcnt_64u",
	"bit_reverse_8u",
	"multiply_32f_s32f",
}

func TestCatalogComplete(t *testing.T) {
	cat := Catalog()
	if len(cat) != len(catalogNames) {
		t.Fatalf("catalog has %d kernels, want %d", len(cat), len(catalogNames))
	}

	byName := make(map[string]Kernel, len(cat))
	for _, k := range cat {
		if _, dup := byName[k.Name]; dup {
			t.Errorf("duplicate kernel name %q", k.Name)
		}
		byName[k.Name] = k
	}
	for _, name := range catalogNames {
		if _, ok := byName[name]; !ok {
			t.Errorf("kernel %q missing from catalog", name)
		}
	}
}

func TestCatalogDescriptors(t *testing.T) {
	for _, k := range Catalog() {
		t.Run(k.Name, func(t *testing.T) {
			if k.InBytes <= 0 || k.OutBytes <= 0 {
				t.Errorf("unit sizes must be positive, got in=%d out=%d", k.InBytes, k.OutBytes)
			}
			if k.Compare != BitExact && k.Tol <= 0 {
				t.Error("tolerance-based comparison needs a positive tolerance")
			}

			// The reference must be a registered implementation.
			found := false
			for _, info := range k.Impls() {
				if info.Name == k.Ref {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("reference %q not among registered implementations", k.Ref)
			}
		})
	}
}

// Every implementation of every family must agree with its reference over
// the same input, within the family's comparison class.
func TestEquivalence(t *testing.T) {
	sizes := []int{0, 1, 8, 16, 17, 131, 1024}

	for _, k := range Catalog() {
		t.Run(k.Name, func(t *testing.T) {
			for _, n := range sizes {
				if err := k.Verify(n, 42); err != nil {
					t.Errorf("n=%d: %v", n, err)
				}
			}
		})
	}
}

func TestRunUnknownImplementation(t *testing.T) {
	for _, k := range Catalog() {
		t.Run(k.Name, func(t *testing.T) {
			out, in := k.Buffers(16)
			err := k.Run("nonexistent_impl", out, in, 16)
			if err == nil {
				t.Fatal("expected an error for an unknown implementation name")
			}
			if !errors.Is(err, kernel.ErrNotFound) {
				t.Errorf("error should wrap kernel.ErrNotFound, got %v", err)
			}
		})
	}
}

// The packing adapter counts input bit bytes: running n units consumes n
// bit bytes and produces n/8 packed bytes, matching a direct call.
func TestPackAdapterUnits(t *testing.T) {
	var pack Kernel
	for _, k := range Catalog() {
		if k.Name == "pack8_8u" {
			pack = k
		}
	}
	if pack.Run == nil {
		t.Fatal("pack8_8u missing from catalog")
	}

	const n = 16
	in := []byte{
		1, 0, 1, 1, 0, 0, 0, 1,
		0, 0, 0, 0, 1, 1, 1, 1,
	}
	out := make([]byte, n)
	if err := pack.Run(pack.Ref, out, in, n); err != nil {
		t.Fatal(err)
	}

	want := make([]byte, 2)
	bits.Pack(want, in, 2)
	if out[0] != want[0] || out[1] != want[1] {
		t.Errorf("adapter packed %#02x %#02x, want %#02x %#02x", out[0], out[1], want[0], want[1])
	}
	for i := 2; i < n; i++ {
		if out[i] != 0 {
			t.Errorf("byte %d written beyond the packed region", i)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, k := range Catalog() {
		b.Run(k.Name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := k.Verify(1024, 7); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
