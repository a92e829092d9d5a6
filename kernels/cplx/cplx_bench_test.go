package cplx

import "testing"

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}

func BenchmarkAdd(b *testing.B) {
	for _, info := range AddFamily.Impls() {
		fn, err := AddFamily.Lookup(info.Name)
		if err != nil {
			b.Fatal(err)
		}
		for _, tc := range benchSizes {
			b.Run(info.Name+"/"+tc.name, func(b *testing.B) {
				x := randomComplex(tc.size, 1)
				y := randomComplex(tc.size, 2)
				dst := make([]complex64, tc.size)

				b.SetBytes(int64(tc.size * 8 * 3))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					fn(dst, x, y)
				}
			})
		}
	}
}

func BenchmarkMul(b *testing.B) {
	for _, info := range MulFamily.Impls() {
		fn, err := MulFamily.Lookup(info.Name)
		if err != nil {
			b.Fatal(err)
		}
		for _, tc := range benchSizes {
			b.Run(info.Name+"/"+tc.name, func(b *testing.B) {
				x := randomComplex(tc.size, 3)
				y := randomComplex(tc.size, 4)
				dst := make([]complex64, tc.size)

				b.SetBytes(int64(tc.size * 8 * 3))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					fn(dst, x, y)
				}
			})
		}
	}
}
