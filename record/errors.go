package record

import "errors"

var (
	// ErrCorruptRecord is returned when a record fails any structural or
	// identity check during decoding.
	ErrCorruptRecord = errors.New("record: corrupt record")
	// ErrFitMismatch is returned by Verify when refitting the samples does
	// not reproduce the stored coefficients.
	ErrFitMismatch = errors.New("record: stored fit does not match samples")
	// ErrNoFit is returned by Verify for records without a fit.
	ErrNoFit = errors.New("record: record carries no fit")
)
