// Package fixed implements the signed Q16.16 fixed-point number used by every
// fxfit kernel.
//
// A Fixed is a 32-bit two's complement integer whose low 16 bits hold the
// fractional part. The format matches an HLS ap_fixed<32, 16, AP_TRN, AP_WRAP>
// value bit for bit:
//
//   - Rounding truncates toward negative infinity (AP_TRN). A product keeps the
//     full 64-bit intermediate and drops the low 16 fractional bits with an
//     arithmetic shift.
//   - Overflow wraps modulo 2^32 (AP_WRAP). Nothing clamps and nothing traps.
//
// # Plain and checked arithmetic
//
// The methods on Fixed never fail. Wraparound is defined behavior, which is what
// hardware does and what bit-exact reproduction needs:
//
//	a := fixed.FromFloat(2856.26)
//	b := fixed.FromInt(2)
//	c := a.Mul(b) // wraps silently past 32767.99998
//
// When a silent wrap would be a correctness bug, run the same operations through
// a Checked accumulator. It returns exactly the same bits but remembers the
// first operation that left the representable range:
//
//	var ck fixed.Checked
//	c := ck.Mul(a, b)
//	if err := ck.Err(); err != nil {
//	    // errors.Is(err, fixed.ErrOverflow) == true
//	}
//
// # Powers of two
//
// Exp2 builds 2^e by placing a single bit at position FracBits+e. It is the
// portable replacement for reinterpreting an integer bit mask as a fixed-point
// value and is how the reciprocal approximator builds its seed.
package fixed
