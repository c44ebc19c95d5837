package regression

import (
	"fmt"
	"slices"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/internal/hash"
)

const (
	// DefaultSampleCount is the lane count of the unrolled hardware kernel.
	DefaultSampleCount = 8
	// MinSampleCount is the smallest sample set with a defined line.
	MinSampleCount = 2
	// MaxSampleCount is the largest count n that is representable as a
	// Q16.16 integer.
	MaxSampleCount = 1<<(fixed.IntBits-1) - 1
)

// Samples is an ordered set of (x, y) pairs. X[i] pairs with Y[i].
type Samples struct {
	X []fixed.Fixed
	Y []fixed.Fixed
}

// NewSamples validates x and y and returns a Samples holding copies of them.
func NewSamples(x, y []fixed.Fixed) (Samples, error) {
	s := Samples{X: slices.Clone(x), Y: slices.Clone(y)}
	if err := s.Validate(); err != nil {
		return Samples{}, err
	}

	return s, nil
}

// SamplesFromFloats converts float64 pairs with fixed.FromFloat.
func SamplesFromFloats(x, y []float64) (Samples, error) {
	s := Samples{X: fromFloats(x), Y: fromFloats(y)}
	if err := s.Validate(); err != nil {
		return Samples{}, err
	}

	return s, nil
}

// Len returns the number of pairs.
func (s Samples) Len() int {
	return len(s.X)
}

// Validate checks the shape of the sample set.
func (s Samples) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d x values vs %d y values", ErrInvalidSamples, len(s.X), len(s.Y))
	}
	if len(s.X) < MinSampleCount {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidSamples, MinSampleCount, len(s.X))
	}
	if len(s.X) > MaxSampleCount {
		return fmt.Errorf("%w: at most %d samples, got %d", ErrInvalidSamples, MaxSampleCount, len(s.X))
	}

	return nil
}

// ID returns the xxHash64 identity of the raw X and Y bit patterns.
func (s Samples) ID() uint64 {
	return hash.Columns(rawBits(s.X), rawBits(s.Y))
}

func fromFloats(values []float64) []fixed.Fixed {
	out := make([]fixed.Fixed, len(values))
	for i, v := range values {
		out[i] = fixed.FromFloat(v)
	}

	return out
}

func rawBits(values []fixed.Fixed) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = v.Bits()
	}

	return out
}
