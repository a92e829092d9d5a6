// Package cplx provides elementwise kernels over interleaved complex
// buffers: complex addition and multiplication, addition of a real vector
// to a complex vector, and deinterleaving into component buffers.
//
// Each operation is a kernel family with generic and SIMD-style blocked
// implementation variants; package-level functions dispatch once per
// process, and the exported family variables expose every variant by name
// for verification and benchmarking. All arithmetic here is exact in the
// sense that every variant performs the same float32 operations in the
// same order, so variants agree bit-for-bit.
package cplx
