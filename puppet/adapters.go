package puppet

import (
	"math/rand"
	"unsafe"

	"github.com/cwbudde/algo-kernels/kernels/bits"
	"github.com/cwbudde/algo-kernels/kernels/cplx"
	"github.com/cwbudde/algo-kernels/kernels/trig"
	"github.com/cwbudde/algo-kernels/kernels/vec"
)

// Fixed auxiliary parameters. Scalar-parameter families cannot vary them
// through the normalized shape, so every run uses the same values.
const (
	atan2NormalizeFactor = 1.0
	scaleFactor          = 2.5
)

// Catalog returns a descriptor for every kernel family, wrapped in the
// normalized adapter shape.
func Catalog() []Kernel {
	return []Kernel{
		{
			Name:    "asin_32f",
			Ref:     "asin_generic",
			InBytes: 4, OutBytes: 4,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: trig.AsinFamily.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 1) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := trig.AsinFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(floats32(out, n), floats32(in, n))
				return nil
			},
		},
		{
			Name:    "atan2_32fc_32f",
			Ref:     "atan2_generic",
			InBytes: 8, OutBytes: 4,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: trig.Atan2Family.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 4) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := trig.Atan2Family.Lookup(name)
				if err != nil {
					return err
				}
				fn(floats32(out, n), complexes(in, n), atan2NormalizeFactor)
				return nil
			},
		},
		{
			// Input holds both operand vectors back to back.
			Name:    "add_32fc_x2",
			Ref:     "add_generic",
			InBytes: 16, OutBytes: 8,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: cplx.AddFamily.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 10) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := cplx.AddFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(complexes(out, n), complexes(in, n), complexes(in[n*8:], n))
				return nil
			},
		},
		{
			// Input holds n complex64 followed by n float32.
			Name:    "add_32fc_32f",
			Ref:     "addreal_generic",
			InBytes: 12, OutBytes: 8,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: cplx.AddRealFamily.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 10) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := cplx.AddRealFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(complexes(out, n), complexes(in, n), floats32(in[n*8:], n))
				return nil
			},
		},
		{
			Name:    "multiply_32fc_x2",
			Ref:     "multiply_generic",
			InBytes: 16, OutBytes: 8,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: cplx.MulFamily.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 4) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := cplx.MulFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(complexes(out, n), complexes(in, n), complexes(in[n*8:], n))
				return nil
			},
		},
		{
			Name:    "deinterleave_real_64f",
			Ref:     "deinterleave_real_generic",
			InBytes: 8, OutBytes: 8,
			Compare: Float64Tol, Tol: 1e-12,
			Impls: cplx.DeinterleaveReal64Family.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 10) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := cplx.DeinterleaveReal64Family.Lookup(name)
				if err != nil {
					return err
				}
				fn(floats64(out, n), complexes(in, n))
				return nil
			},
		},
		{
			// Output holds the I components followed by the Q components.
			Name:    "deinterleave_16i_x2",
			Ref:     "deinterleave16_generic",
			InBytes: 4, OutBytes: 4,
			Compare: BitExact,
			Impls:   cplx.DeinterleaveInt16Family.Impls,
			Fill:    fillBytes,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := cplx.DeinterleaveInt16Family.Lookup(name)
				if err != nil {
					return err
				}
				src := complexes16(in, n)
				fn(ints16(out, n), ints16(out[n*2:], n), src)
				return nil
			},
		},
		{
			// The external unit is one unpacked bit byte; only n/8 packed
			// output bytes are produced.
			Name:    "pack8_8u",
			Ref:     "pack8_generic",
			InBytes: 1, OutBytes: 1,
			Compare: BitExact,
			Impls:   bits.PackFamily.Impls,
			Fill:    fillBits,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := bits.PackFamily.Lookup(name)
				if err != nil {
					return err
				}
				nBytes := n / 8
				fn(out[:nBytes], in[:nBytes*8], nBytes)
				return nil
			},
		},
		{
			// The external unit is one unpacked bit byte; only n/8 packed
			// input bytes are consumed.
			Name:    "unpack8_8u",
			Ref:     "unpack8_generic",
			InBytes: 1, OutBytes: 1,
			Compare: BitExact,
			Impls:   bits.UnpackFamily.Impls,
			Fill:    fillBytes,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := bits.UnpackFamily.Lookup(name)
				if err != nil {
					return err
				}
				nBytes := n / 8
				fn(out[:nBytes*8], in[:nBytes], nBytes)
				return nil
			},
		},
		{
			// Input holds both operand vectors back to back.
			Name:    "exor_8u_x2",
			Ref:     "exor_generic",
			InBytes: 2, OutBytes: 1,
			Compare: BitExact,
			Impls:   bits.XorFamily.Impls,
			Fill:    fillBytes,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := bits.XorFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(out[:n], in[:n], in[n:])
				return nil
			},
		},
		{
			// One unit is one 64-bit word; counts are written as uint64.
			Name:    "popcnt_64u",
			Ref:     "popcnt_generic",
			InBytes: 8, OutBytes: 8,
			Compare: BitExact,
			Impls:   bits.PopcountFamily.Impls,
			Fill:    fillBytes,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := bits.PopcountFamily.Lookup(name)
				if err != nil {
					return err
				}
				words := uints64(in, n)
				counts := uints64(out, n)
				for i := range words {
					counts[i] = fn(words[i])
				}
				return nil
			},
		},
		{
			Name:    "bit_reverse_8u",
			Ref:     "bit_reverse_generic",
			InBytes: 1, OutBytes: 1,
			Compare: BitExact,
			Impls:   bits.ReverseFamily.Impls,
			Fill:    fillBytes,
			Run: func(name string, out, in []byte, n int) error {
				fn, err := bits.ReverseFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(out[:n], in[:n])
				return nil
			},
		},
		{
			Name:    "multiply_32f_s32f",
			Ref:     "scale_generic",
			InBytes: 4, OutBytes: 4,
			Compare: Float32Tol, Tol: 1e-4,
			Impls: vec.ScaleFamily.Impls,
			Fill:  func(rng *rand.Rand, in []byte) { fillFloats(rng, in, 10) },
			Run: func(name string, out, in []byte, n int) error {
				fn, err := vec.ScaleFamily.Lookup(name)
				if err != nil {
					return err
				}
				fn(floats32(out, n), floats32(in, n), scaleFactor)
				return nil
			},
		},
	}
}

// fillFloats writes uniform float32 values in [-scale, scale] across the
// whole buffer. Complex buffers are filled through their component view.
func fillFloats(rng *rand.Rand, b []byte, scale float32) {
	v := floats32(b, len(b)/4)
	for i := range v {
		v[i] = scale * (2*rng.Float32() - 1)
	}
}

func fillBytes(rng *rand.Rand, b []byte) {
	rng.Read(b)
}

// fillBits writes one bit value per byte, the unpacked representation the
// packing kernels consume.
func fillBits(rng *rand.Rand, b []byte) {
	for i := range b {
		b[i] = byte(rng.Intn(2))
	}
}

func complexes16(b []byte, n int) []cplx.Complex16 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*cplx.Complex16)(unsafe.Pointer(&b[0])), n)
}
