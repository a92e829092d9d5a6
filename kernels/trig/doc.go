// Package trig provides elementwise inverse-trigonometric kernels over
// float32 buffers: arcsine and complex-argument atan2.
//
// Each operation is a kernel family with several implementation variants
// (generic scalar, SSE4.1-, AVX-, AVX2+FMA-, NEON- and RVV-style blocked
// loops). Callers normally use the package-level functions, which dispatch
// once per process to the best variant for the host CPU; the exported
// family variables give verification and benchmark tooling access to every
// variant by name.
//
// Variants are not bit-identical: the blocked paths use a reduced-argument
// polynomial where the generic path uses the standard library, so results
// agree within a small absolute tolerance rather than exactly.
package trig
