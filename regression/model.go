package regression

import (
	"fmt"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/reciprocal"
)

// Coefficients are the fitted line y = Theta1·x + Theta0.
type Coefficients struct {
	// Theta0 is the intercept.
	Theta0 fixed.Fixed
	// Theta1 is the slope.
	Theta1 fixed.Fixed
}

// Trace records the intermediate values of one fit.
type Trace struct {
	// N is the sample count as a fixed-point value.
	N fixed.Fixed
	// SumX is Σx.
	SumX fixed.Fixed
	// SumX2 is Σx².
	SumX2 fixed.Fixed
	// Determinant is n·Σx² − (Σx)².
	Determinant fixed.Fixed
	// Reciprocal is the approximation of 1/Determinant.
	Reciprocal reciprocal.Result
	// C is Σx²·s.
	C fixed.Fixed
	// D is −Σx·s.
	D fixed.Fixed
	// E is n·s.
	E fixed.Fixed
}

// Result is the outcome of Fit.
//
// A Result is immutable once returned and safe for concurrent reads. Fit
// copies the sample columns, so later changes to the caller's slices do not
// reach it.
type Result struct {
	Coefficients Coefficients
	Trace        Trace
	// Samples are the inputs the line was fitted to.
	Samples Samples

	wrapping bool
}

// Predict returns Theta1·x + Theta0. Unless the fit ran with WithWrapping,
// a wrapped prediction is reported as fixed.ErrOverflow.
func (r *Result) Predict(x fixed.Fixed) (fixed.Fixed, error) {
	var ck fixed.Checked
	y := predict(&ck, r.Coefficients, x)
	if !r.wrapping {
		if err := ck.Err(); err != nil {
			return y, fmt.Errorf("regression: predicting at %s: %w", x, err)
		}
	}

	return y, nil
}

// Predictions returns the prediction for every fitted sample, in input order.
func (r *Result) Predictions() ([]fixed.Fixed, error) {
	out := make([]fixed.Fixed, r.Samples.Len())
	for i, x := range r.Samples.X {
		y, err := r.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}

// Estimator returns a stand-alone estimator for the fitted line.
func (r *Result) Estimator() *LinearEstimator {
	return NewLinearEstimator(r.Coefficients)
}

// Formula returns a human-readable form of the line.
func (r *Result) Formula() string {
	return formula(r.Coefficients)
}

// String returns a summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Theta0: %s, Theta1: %s, D: %s, k: %d, s: %s}",
		r.Coefficients.Theta0, r.Coefficients.Theta1,
		r.Trace.Determinant, r.Trace.Reciprocal.Exponent, r.Trace.Reciprocal.Value)
}

// Estimator evaluates a fitted line.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x fixed.Fixed) fixed.Fixed
	// Coefficients returns the line.
	Coefficients() Coefficients
}

// LinearEstimator evaluates y = Theta1·x + Theta0 with wrapping Q16.16
// arithmetic, the way the hardware output stage does.
type LinearEstimator struct {
	coeffs Coefficients
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates an estimator for the given coefficients.
func NewLinearEstimator(coeffs Coefficients) *LinearEstimator {
	return &LinearEstimator{coeffs: coeffs}
}

// Estimate returns Theta1·x + Theta0, wrapping on overflow.
func (e *LinearEstimator) Estimate(x fixed.Fixed) fixed.Fixed {
	return e.coeffs.Theta1.Mul(x).Add(e.coeffs.Theta0)
}

// Coefficients returns the line.
func (e *LinearEstimator) Coefficients() Coefficients {
	return e.coeffs
}

// String returns the formula of the line.
func (e *LinearEstimator) String() string {
	return formula(e.coeffs)
}

func predict(ck *fixed.Checked, c Coefficients, x fixed.Fixed) fixed.Fixed {
	return ck.Add(ck.Mul(c.Theta1, x), c.Theta0)
}

func formula(c Coefficients) string {
	return fmt.Sprintf("y = %.4f + %.4f*x", c.Theta0.Float64(), c.Theta1.Float64())
}
