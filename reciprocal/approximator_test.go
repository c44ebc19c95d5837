package reciprocal

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/fxfit/fixed"
)

const ulp = 1.0 / 65536

// withinBudget checks the error bound of three refinement steps from a seed
// with seed*D in [0.5, 1): relative error at most 2^-8, plus truncation.
func withinBudget(t *testing.T, d, s fixed.Fixed) {
	t.Helper()

	want := 1 / d.Float64()
	got := s.Float64()
	tol := want/128 + 4*want*ulp + 4*ulp

	require.InDelta(t, want, got, tol, "D=%s", d)
	require.LessOrEqual(t, got, want+want*ulp+ulp, "estimate above 1/D, D=%s", d)
}

func TestApproximateKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		d     fixed.Fixed
		k     int
		steps []int32
	}{
		{"one", fixed.One, 1, []int32{49152, 61440, 65280}},
		{"sixteen", fixed.FromInt(16), 5, []int32{3072, 3840, 4080}},
		{"large determinant", fixed.FromFloat(2856.26), 12, []int32{20, 22, 22}},
		{"just below 4096", fixed.FromFloat(4095.9), 12, []int32{16, 16, 16}},
		{"linear fit determinant", fixed.FromInt(336), 9, []int32{172, 192, 195}},
		{"top of range", fixed.Max, 15, []int32{2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Trace(tt.d)
			require.NoError(t, err)
			require.Equal(t, tt.d, r.D)
			require.Equal(t, tt.k, r.Exponent)
			require.Len(t, r.Steps, DefaultIterations)
			for i, want := range tt.steps {
				assert.Equal(t, want, r.Steps[i].Bits(), "step %d", i)
			}
			require.Equal(t, r.Steps[len(r.Steps)-1], r.Value)

			s, err := Approximate(tt.d)
			require.NoError(t, err)
			require.Equal(t, r.Value, s)
			withinBudget(t, tt.d, s)
		})
	}
}

func TestApproximateSweep(t *testing.T) {
	var checked int
	for raw := int64(4); raw <= math.MaxInt32; raw += 104729 {
		d := fixed.FromBits(int32(raw))
		s, err := Approximate(d)
		require.NoError(t, err, "D=%s", d)
		withinBudget(t, d, s)
		checked++
	}
	require.Greater(t, checked, 20000)
}

func TestSeedWithinFactorTwo(t *testing.T) {
	for raw := int64(4); raw <= math.MaxInt32; raw += 7919 * 13 {
		d := fixed.FromBits(int32(raw))
		r, err := Trace(d)
		require.NoError(t, err)

		product := r.Seed.Float64() * d.Float64()
		require.GreaterOrEqual(t, product, 0.5, "D=%s", d)
		require.Less(t, product, 1.0, "D=%s", d)
		require.LessOrEqual(t, product, 2.0)
	}
}

func TestExponent(t *testing.T) {
	tests := []struct {
		name string
		d    fixed.Fixed
		k    int
	}{
		{"one ulp above one", fixed.One + fixed.Epsilon, 1},
		{"just below one", fixed.One - fixed.Epsilon, 0},
		{"one", fixed.One, 1},
		{"half", fixed.FromFloat(0.5), 0},
		{"just below half", fixed.FromFloat(0.5) - fixed.Epsilon, -1},
		{"three", fixed.FromInt(3), 2},
		{"4096", fixed.FromInt(4096), 13},
		{"largest below 2^14", fixed.FromInt(16384) - fixed.Epsilon, 14},
		{"2^14", fixed.FromInt(16384), 15},
		{"max", fixed.Max, 15},
		{"smallest in domain", fixed.FromBits(4), MinExponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Exponent(tt.d)
			require.NoError(t, err)
			require.Equal(t, tt.k, k)

			lo, hi := math.Ldexp(1, k-1), math.Ldexp(1, k)
			require.GreaterOrEqual(t, tt.d.Float64(), lo)
			require.Less(t, tt.d.Float64(), hi)
		})
	}
}

func TestOutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		d    fixed.Fixed
	}{
		{"zero", fixed.Zero},
		{"negative", fixed.FromInt(-5)},
		{"min", fixed.Min},
		{"too small", fixed.FromBits(3)},
		{"epsilon", fixed.Epsilon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Approximate(tt.d)
			require.ErrorIs(t, err, ErrOutOfDomain)

			var de *DomainError
			require.True(t, errors.As(err, &de))
			require.Equal(t, tt.d, de.D)
			require.Contains(t, err.Error(), "out of domain")
		})
	}
}

func TestSmallInputs(t *testing.T) {
	for _, f := range []float64{0.75, 0.5, 0.1, 0.01, 0.001, 0.0001} {
		d := fixed.FromFloat(f)
		s, err := Approximate(d)
		require.NoError(t, err, "D=%v", f)
		withinBudget(t, d, s)
	}
}

func TestSeed(t *testing.T) {
	s, err := Seed(12)
	require.NoError(t, err)
	require.Equal(t, int32(1<<4), s.Bits())

	s, err = Seed(MinExponent)
	require.NoError(t, err)
	require.Equal(t, fixed.FromInt(1<<13), s)

	_, err = Seed(MaxExponent + 1)
	require.ErrorIs(t, err, ErrOutOfDomain)
	_, err = Seed(MinExponent - 1)
	require.ErrorIs(t, err, ErrOutOfDomain)
}

func TestIterationsOption(t *testing.T) {
	d := fixed.FromFloat(2856.26)

	r, err := Trace(d, WithIterations(0))
	require.NoError(t, err)
	require.Empty(t, r.Steps)
	require.Equal(t, r.Seed, r.Value)

	r, err = Trace(fixed.One, WithIterations(5))
	require.NoError(t, err)
	require.Len(t, r.Steps, 5)
	// From 0.99609375 two more steps reach 1 - 2^-16 at Q16.16 precision.
	require.InDelta(t, 1.0, r.Value.Float64(), 2*ulp)

	_, err = Approximate(d, WithIterations(-1))
	require.Error(t, err)
	_, err = Approximate(d, WithIterations(MaxIterations+1))
	require.Error(t, err)
}

func TestIdempotent(t *testing.T) {
	d := fixed.FromFloat(311.16)
	a, err := Approximate(d)
	require.NoError(t, err)
	b, err := Approximate(d)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestApproximateUnchecked(t *testing.T) {
	for _, f := range []float64{1, 16, 336, 2856.26, 4095.9, 16383.5} {
		d := fixed.FromFloat(f)
		want, err := Approximate(d)
		require.NoError(t, err)
		require.Equal(t, want, ApproximateUnchecked(d), "D=%v", f)
	}

	// 2^14 and above would hang the kernel; the scan is capped instead.
	require.Equal(t, int32(3), ApproximateUnchecked(fixed.FromInt(16384)).Bits())

	// Out-of-domain inputs produce a value rather than an error.
	require.NotPanics(t, func() {
		ApproximateUnchecked(fixed.Zero)
		ApproximateUnchecked(fixed.FromInt(-3))
		ApproximateUnchecked(fixed.FromFloat(0.25))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Approximate(fixed.FromInt(16), WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "reciprocal approximated")
	require.Contains(t, buf.String(), "k=5")

	_, err = Approximate(fixed.FromInt(16), WithLogger(nil))
	require.NoError(t, err)
}

func BenchmarkApproximate(b *testing.B) {
	d := fixed.FromFloat(2856.26)
	for b.Loop() {
		_, _ = Approximate(d)
	}
}
