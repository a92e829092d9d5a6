// Package bits provides elementwise bitwise kernels over byte buffers:
// bit packing/unpacking, XOR, population count and per-byte bit reversal.
//
// Every family here is integer-valued, so all implementation variants of a
// family produce bit-identical output; the variants differ only in their
// loop blocking, mirroring the vector widths of the instruction sets they
// are modeled on.
package bits
