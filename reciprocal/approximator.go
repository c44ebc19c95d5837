package reciprocal

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/internal/options"
)

const (
	// MaxExponent is the largest k the scan can report. 2^15 is not
	// representable (it is the sign bit), but every positive Q16.16 value is
	// below it, so reaching 2^14 <= D ends the scan at k = 15.
	MaxExponent = fixed.IntBits - 1
	// MinExponent is the smallest k accepted for 0 < D < 1. It keeps 1/D at
	// or below 2^14.
	MinExponent = -(fixed.IntBits - 3)
)

// Result describes one approximation.
type Result struct {
	// D is the input.
	D fixed.Fixed
	// Exponent is k, the exponent of the smallest power of two above D.
	Exponent int
	// Seed is 2^-k.
	Seed fixed.Fixed
	// Steps holds the estimate after each refinement step.
	Steps []fixed.Fixed
	// Value is the final estimate of 1/D.
	Value fixed.Fixed
}

// Approximate returns an estimate of 1/d.
//
// Parameters:
//   - d: Strictly positive value with 2^-14 <= d < 2^15
//   - opts: Optional settings (WithIterations, WithLogger)
//
// Returns:
//   - fixed.Fixed: Estimate of 1/d, never above 1/d by more than one ulp
//   - error: ErrOutOfDomain (as *DomainError) for unsupported d, fixed.ErrOverflow
//     if a refinement step wrapped, or an option error
//
// Example:
//
//	s, err := reciprocal.Approximate(fixed.FromFloat(2856.26))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.Float64()) // ~0.000336
func Approximate(d fixed.Fixed, opts ...Option) (fixed.Fixed, error) {
	r, err := Trace(d, opts...)
	if err != nil {
		return fixed.Zero, err
	}

	return r.Value, nil
}

// Trace is Approximate with the intermediate values exposed.
func Trace(d fixed.Fixed, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	k, err := Exponent(d)
	if err != nil {
		return Result{}, err
	}

	seed, err := Seed(k)
	if err != nil {
		return Result{}, err
	}

	var ck fixed.Checked
	x, steps := refine(&ck, d, seed, cfg.Iterations)
	if err := ck.Err(); err != nil {
		return Result{}, fmt.Errorf("reciprocal: refining 1/%s: %w", d, err)
	}

	cfg.Logger.Debug("reciprocal approximated",
		slog.String("d", d.String()),
		slog.Int("k", k),
		slog.String("seed", seed.String()),
		slog.Int("iterations", cfg.Iterations),
		slog.String("value", x.String()),
	)

	return Result{D: d, Exponent: k, Seed: seed, Steps: steps, Value: x}, nil
}

// Exponent returns the smallest k with 2^k > d, so that 2^(k-1) <= d < 2^k.
//
// For d >= 1 a unit value is shifted left until it exceeds d. For 0 < d < 1 it
// is shifted right while the next lower power of two still exceeds d.
func Exponent(d fixed.Fixed) (int, error) {
	if d.Sign() <= 0 {
		return 0, &DomainError{D: d, Reason: "D must be strictly positive"}
	}

	k := 0
	unit := fixed.One

	if unit.LessEq(d) {
		for unit.LessEq(d) {
			if k == MaxExponent-1 {
				// The next shift would land on the sign bit.
				return MaxExponent, nil
			}
			unit = unit.Shl(1)
			k++
		}

		return k, nil
	}

	for half := unit.Shr(1); d.Less(half); half = unit.Shr(1) {
		if k == MinExponent {
			return k, &DomainError{D: d, Exponent: k, Reason: "reciprocal exceeds the Q16.16 range"}
		}
		unit = half
		k--
	}

	return k, nil
}

// Seed returns the initial guess 2^-k, built as the single bit FracBits-k.
func Seed(k int) (fixed.Fixed, error) {
	if k < MinExponent || k > MaxExponent {
		return fixed.Zero, &DomainError{Exponent: k, Reason: "seed exponent outside the fractional range"}
	}

	seed, err := fixed.Exp2(-k)
	if err != nil {
		return fixed.Zero, &DomainError{Exponent: k, Reason: err.Error()}
	}

	return seed, nil
}

// ApproximateUnchecked runs the unchecked hardware kernel: upward scan only,
// DefaultIterations steps, wrapping arithmetic, no errors.
//
// For d <= 0 or d < 1 the scan stops at k = 0 and the seed is 1.0, so the
// result is meaningless. For d >= 2^14 the kernel would shift into the sign
// bit and never terminate; here the scan stops at MaxExponent instead.
func ApproximateUnchecked(d fixed.Fixed) fixed.Fixed {
	k := 0
	unit := fixed.One
	for unit.LessEq(d) && k < MaxExponent {
		unit = unit.Shl(1)
		k++
	}

	seed := fixed.One.Shr(uint(k))

	var ck fixed.Checked
	x, _ := refine(&ck, d, seed, DefaultIterations)

	return x
}

// refine applies n Newton-Raphson steps x = x*(2 - d*x) starting at x.
func refine(ck *fixed.Checked, d, x fixed.Fixed, n int) (fixed.Fixed, []fixed.Fixed) {
	steps := make([]fixed.Fixed, 0, n)
	for range n {
		x = ck.Mul(x, ck.Sub(fixed.Two, ck.Mul(d, x)))
		steps = append(steps, x)
	}

	return x, steps
}
