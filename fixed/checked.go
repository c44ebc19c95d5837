package fixed

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports that an intermediate result left the Q16.16 range and
// would have wrapped.
var ErrOverflow = errors.New("fixed: arithmetic overflow")

// OverflowError describes the first operation that overflowed inside a Checked
// accumulator.
type OverflowError struct {
	Op    string
	Left  Fixed
	Right Fixed
	// Wrapped is the value the plain operation produced.
	Wrapped Fixed
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("fixed: %s(%s, %s) overflows Q16.16 (wrapped to %s)", e.Op, e.Left, e.Right, e.Wrapped)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Checked performs Q16.16 arithmetic with the same bits as the plain Fixed
// methods while recording the first overflow. The zero value is ready to use.
//
// A Checked is not safe for concurrent use; give each goroutine its own.
type Checked struct {
	err *OverflowError
}

// Add returns a+b and records an overflow if the true sum is out of range.
func (c *Checked) Add(a, b Fixed) Fixed {
	wide := int64(a) + int64(b)
	r := Fixed(int32(wide))
	c.check("add", a, b, wide, r)

	return r
}

// Sub returns a-b and records an overflow if the true difference is out of range.
func (c *Checked) Sub(a, b Fixed) Fixed {
	wide := int64(a) - int64(b)
	r := Fixed(int32(wide))
	c.check("sub", a, b, wide, r)

	return r
}

// Mul returns a*b truncated to Q16.16 and records an overflow if the truncated
// product does not fit in 32 bits.
func (c *Checked) Mul(a, b Fixed) Fixed {
	wide := mulWide(a, b)
	r := Fixed(int32(wide))
	c.check("mul", a, b, wide, r)

	return r
}

// Neg returns -a. Negating Min overflows.
func (c *Checked) Neg(a Fixed) Fixed {
	wide := -int64(a)
	r := Fixed(int32(wide))
	c.check("neg", a, Zero, wide, r)

	return r
}

// Shl returns a<<n and records an overflow if any significant bit, sign
// included, is shifted out.
func (c *Checked) Shl(a Fixed, n uint) Fixed {
	r := a.Shl(n)
	if c.err == nil && a != 0 && (n >= TotalBits || Fixed(int32(r)>>n) != a) {
		c.err = &OverflowError{Op: "shl", Left: a, Right: FromInt(int(n)), Wrapped: r}
	}

	return r
}

// Err returns nil if no operation overflowed, or an *OverflowError describing
// the first one.
func (c *Checked) Err() error {
	if c.err == nil {
		return nil
	}

	return c.err
}

// Overflowed reports whether any operation has overflowed.
func (c *Checked) Overflowed() bool {
	return c.err != nil
}

// Reset clears the recorded overflow.
func (c *Checked) Reset() {
	c.err = nil
}

func (c *Checked) check(op string, a, b Fixed, wide int64, r Fixed) {
	if c.err != nil {
		return
	}
	if wide < math.MinInt32 || wide > math.MaxInt32 {
		c.err = &OverflowError{Op: op, Left: a, Right: b, Wrapped: r}
	}
}
