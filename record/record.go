package record

import (
	"context"
	"fmt"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/regression"
)

// Record is the decoded content of an encoded record.
type Record struct {
	Samples regression.Samples
	// Fit is nil when the record carries samples only.
	Fit *Fit
}

// Fit is the stored outcome of a least-squares fit.
type Fit struct {
	Coefficients regression.Coefficients
	// Determinant is D = n·Σx² − (Σx)².
	Determinant fixed.Fixed
	// Reciprocal is the approximation s of 1/D.
	Reciprocal fixed.Fixed
}

// FromResult builds a record holding the samples and fit of result.
func FromResult(result *regression.Result) Record {
	return Record{
		Samples: result.Samples,
		Fit: &Fit{
			Coefficients: result.Coefficients,
			Determinant:  result.Trace.Determinant,
			Reciprocal:   result.Trace.Reciprocal.Value,
		},
	}
}

// ID returns the sample-set identity stored in the header.
func (r Record) ID() uint64 {
	return r.Samples.ID()
}

// Verify refits the samples with opts and checks that the stored fit is
// reproduced bit for bit.
func (r Record) Verify(ctx context.Context, opts ...regression.Option) error {
	if r.Fit == nil {
		return ErrNoFit
	}

	result, err := regression.Fit(ctx, r.Samples, opts...)
	if err != nil {
		return fmt.Errorf("record: refitting samples: %w", err)
	}

	got := Fit{
		Coefficients: result.Coefficients,
		Determinant:  result.Trace.Determinant,
		Reciprocal:   result.Trace.Reciprocal.Value,
	}
	if got != *r.Fit {
		return fmt.Errorf("%w: stored θ0=%s θ1=%s, refit θ0=%s θ1=%s", ErrFitMismatch,
			r.Fit.Coefficients.Theta0, r.Fit.Coefficients.Theta1,
			got.Coefficients.Theta0, got.Coefficients.Theta1)
	}

	return nil
}
