package fixed

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	// TotalBits is the width of a Fixed in bits.
	TotalBits = 32
	// IntBits is the number of integer bits, sign included.
	IntBits = 16
	// FracBits is the number of fractional bits.
	FracBits = TotalBits - IntBits

	// MinExp2 and MaxExp2 bound the exponents accepted by Exp2.
	// Bit 31 is the sign bit, so the largest positive power of two is 2^14.
	MinExp2 = -FracBits
	MaxExp2 = IntBits - 2
)

// ErrOutOfRange is returned by Exp2 when the requested power of two has no bit
// inside the Q16.16 layout.
var ErrOutOfRange = errors.New("fixed: exponent out of range")

// Fixed is a signed Q16.16 fixed-point number stored as its raw bit pattern.
type Fixed int32

const (
	// Zero is 0.0.
	Zero Fixed = 0
	// One is 1.0.
	One Fixed = 1 << FracBits
	// Two is 2.0.
	Two Fixed = 2 << FracBits
	// Epsilon is the smallest positive value, 2^-16.
	Epsilon Fixed = 1
	// Max is the largest representable value, 32767.9999847...
	Max Fixed = math.MaxInt32
	// Min is the smallest representable value, -32768.
	Min Fixed = math.MinInt32
)

// scale is 2^FracBits as a float64.
const scale = float64(One)

// FromInt converts an integer to Fixed. Integers outside [-32768, 32767] wrap.
func FromInt(v int) Fixed {
	return Fixed(int32(uint32(v) << FracBits))
}

// FromFloat converts a float64 to Fixed, truncating toward negative infinity
// and wrapping out-of-range values. NaN converts to Zero.
func FromFloat(v float64) Fixed {
	if math.IsNaN(v) {
		return Zero
	}

	raw := math.Floor(v * scale)
	if raw >= -(1<<63) && raw < 1<<63 {
		return Fixed(int32(int64(raw)))
	}

	// Too large even for int64: reduce modulo 2^32 first.
	m := math.Mod(raw, 1<<32)
	if m < 0 {
		m += 1 << 32
	}

	return Fixed(int32(uint32(m)))
}

// FromBits reinterprets a raw 32-bit pattern as a Fixed.
func FromBits(bits int32) Fixed {
	return Fixed(bits)
}

// Exp2 returns 2^e composed as a single set bit at position FracBits+e.
//
// Parameters:
//   - e: Exponent in [MinExp2, MaxExp2]
//
// Returns:
//   - Fixed: The power of two
//   - error: ErrOutOfRange if the bit would fall outside the layout or into the sign bit
func Exp2(e int) (Fixed, error) {
	if e < MinExp2 || e > MaxExp2 {
		return Zero, fmt.Errorf("%w: 2^%d", ErrOutOfRange, e)
	}

	return Fixed(int32(1) << uint(FracBits+e)), nil
}

// Bits returns the raw 32-bit pattern.
func (f Fixed) Bits() int32 {
	return int32(f)
}

// Float64 returns the exact value of f as a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / scale
}

// Add returns f+g, wrapping on overflow.
func (f Fixed) Add(g Fixed) Fixed {
	return f + g
}

// Sub returns f-g, wrapping on overflow.
func (f Fixed) Sub(g Fixed) Fixed {
	return f - g
}

// Neg returns -f. Neg(Min) is Min.
func (f Fixed) Neg() Fixed {
	return -f
}

// Mul returns f*g truncated to Q16.16 and wrapped to 32 bits.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed(int32(mulWide(f, g)))
}

// Shl returns f shifted left by n bits. Bits shifted past bit 31 are lost.
func (f Fixed) Shl(n uint) Fixed {
	return Fixed(int32(uint32(f) << n))
}

// Shr returns f shifted right arithmetically by n bits, which halves it n
// times with truncation toward negative infinity.
func (f Fixed) Shr(n uint) Fixed {
	return f >> n
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fixed) Cmp(g Fixed) int {
	switch {
	case f < g:
		return -1
	case f > g:
		return 1
	default:
		return 0
	}
}

// Less reports whether f < g.
func (f Fixed) Less(g Fixed) bool { return f < g }

// LessEq reports whether f <= g.
func (f Fixed) LessEq(g Fixed) bool { return f <= g }

// IsZero reports whether f is exactly zero.
func (f Fixed) IsZero() bool { return f == 0 }

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fixed) Sign() int {
	return f.Cmp(Zero)
}

// String formats f as a decimal with enough digits to round-trip the raw bits.
func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float64(), 'f', -1, 64)
}

// mulWide returns the full product of f and g shifted back to Q16.16 scale,
// before wrapping to 32 bits. The arithmetic shift floors, which is AP_TRN.
func mulWide(f, g Fixed) int64 {
	return (int64(f) * int64(g)) >> FracBits
}
