package bits

import (
	"bytes"
	stdbits "math/bits"
	"math/rand"
	"testing"
)

func randomBits(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Intn(2))
	}
	return out
}

func randomBytes(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	rng.Read(out)
	return out
}

func TestPackScenario(t *testing.T) {
	// 10110001 packs to 0xB1, first input bit to MSB.
	src := []byte{1, 0, 1, 1, 0, 0, 0, 1}
	dst := make([]byte, 1)
	Pack(dst, src, 1)
	if dst[0] != 0xB1 {
		t.Errorf("Pack([1 0 1 1 0 0 0 1]) = %#02x, want 0xb1", dst[0])
	}
}

func TestUnpackScenario(t *testing.T) {
	dst := make([]byte, 8)
	Unpack(dst, []byte{0xB1}, 1)
	want := []byte{1, 0, 1, 1, 0, 0, 0, 1}
	if !bytes.Equal(dst, want) {
		t.Errorf("Unpack(0xb1) = %v, want %v", dst, want)
	}
}

func TestPackVariantsMatchGeneric(t *testing.T) {
	counts := []int{0, 1, 2, 3, 7, 8, 9, 16, 17, 100, 1000}

	for _, info := range PackFamily.Impls() {
		fn, err := PackFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range counts {
				src := randomBits(8*n, 11)
				want := make([]byte, n)
				got := make([]byte, n)

				packGeneric(want, src, n)
				fn(got, src, n)

				if !bytes.Equal(got, want) {
					t.Fatalf("n=%d: got %v, want %v", n, got, want)
				}
			}
		})
	}
}

func TestUnpackVariantsMatchGeneric(t *testing.T) {
	counts := []int{0, 1, 2, 3, 7, 8, 9, 16, 17, 100, 1000}

	for _, info := range UnpackFamily.Impls() {
		fn, err := UnpackFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range counts {
				src := randomBytes(n, 12)
				want := make([]byte, 8*n)
				got := make([]byte, 8*n)

				unpackGeneric(want, src, n)
				fn(got, src, n)

				if !bytes.Equal(got, want) {
					t.Fatalf("n=%d: got %v, want %v", n, got, want)
				}
			}
		})
	}
}

// unpack8(pack8(bits)) == bits for any 0/1 sequence with length a multiple
// of 8, across every implementation pairing.
func TestPackUnpackRoundTrip(t *testing.T) {
	const n = 64 // packed bytes
	src := randomBits(8*n, 13)

	for _, packInfo := range PackFamily.Impls() {
		packFn, _ := PackFamily.Lookup(packInfo.Name)
		for _, unpackInfo := range UnpackFamily.Impls() {
			unpackFn, _ := UnpackFamily.Lookup(unpackInfo.Name)
			t.Run(packInfo.Name+"/"+unpackInfo.Name, func(t *testing.T) {
				packed := make([]byte, n)
				unpacked := make([]byte, 8*n)
				packFn(packed, src, n)
				unpackFn(unpacked, packed, n)
				if !bytes.Equal(unpacked, src) {
					t.Error("round trip did not restore original bits")
				}
			})
		}
	}
}

func TestXorVariantsMatchGeneric(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 33, 100, 1000}

	for _, info := range XorFamily.Impls() {
		fn, err := XorFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range sizes {
				a := randomBytes(n, 14)
				b := randomBytes(n, 15)
				want := make([]byte, n)
				got := make([]byte, n)

				xorGeneric(want, a, b)
				fn(got, a, b)

				if !bytes.Equal(got, want) {
					t.Fatalf("n=%d: got %v, want %v", n, got, want)
				}
			}
		})
	}
}

func TestXorProperties(t *testing.T) {
	a := randomBytes(100, 16)
	zero := make([]byte, 100)
	dst := make([]byte, 100)

	// a ^ a = 0
	Xor(dst, a, a)
	if !bytes.Equal(dst, zero) {
		t.Error("a ^ a should be all zero")
	}

	// a ^ 0 = a
	Xor(dst, a, zero)
	if !bytes.Equal(dst, a) {
		t.Error("a ^ 0 should be a")
	}
}

func TestPopcountVariants(t *testing.T) {
	cases := []uint64{
		0, 1, 0x8000000000000000, 0xFFFFFFFFFFFFFFFF,
		0x5555555555555555, 0xAAAAAAAAAAAAAAAA, 0x00000000FFFFFFFF,
		0xFFFFFFFF00000000, 0x0123456789ABCDEF,
	}
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 100; i++ {
		cases = append(cases, rng.Uint64())
	}

	for _, info := range PopcountFamily.Impls() {
		fn, err := PopcountFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, x := range cases {
				want := uint64(stdbits.OnesCount64(x))
				if got := fn(x); got != want {
					t.Errorf("popcount(%#x) = %d, want %d", x, got, want)
				}
			}
		})
	}
}

func TestReverseVariantsMatchReference(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 31, 32, 33, 100, 1000}

	for _, info := range ReverseFamily.Impls() {
		fn, err := ReverseFamily.Lookup(info.Name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", info.Name, err)
		}
		t.Run(info.Name, func(t *testing.T) {
			for _, n := range sizes {
				src := randomBytes(n, 18)
				got := make([]byte, n)
				fn(got, src)

				for i := range src {
					if want := stdbits.Reverse8(src[i]); got[i] != want {
						t.Fatalf("n=%d [%d]: reverse(%#02x) = %#02x, want %#02x",
							n, i, src[i], got[i], want)
					}
				}
			}
		})
	}
}

func TestPackPanicsOnShortBuffer(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Pack should panic when the input buffer is too short")
		}
	}()
	Pack(make([]byte, 2), make([]byte, 8), 2)
}
