package regression

import (
	"errors"
	"fmt"

	"github.com/arloliu/fxfit/fixed"
)

var (
	// ErrInvalidSamples is returned for sample sets the solver cannot accept.
	ErrInvalidSamples = errors.New("regression: invalid samples")
	// ErrDegenerateFit is returned when the determinant is not positive enough
	// for the normal equations to have a unique solution.
	ErrDegenerateFit = errors.New("regression: degenerate fit")
)

// DegenerateFitError reports the determinant that failed the threshold.
type DegenerateFitError struct {
	Determinant fixed.Fixed
	Threshold   fixed.Fixed
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("regression: degenerate fit: determinant %s <= threshold %s", e.Determinant, e.Threshold)
}

func (e *DegenerateFitError) Unwrap() error { return ErrDegenerateFit }
