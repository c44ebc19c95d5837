// Package fxfit fits straight lines to sample data using only Q16.16
// fixed-point arithmetic and no hardware division.
//
// The least-squares solution y = θ1·x + θ0 needs one division by the
// determinant D = n·Σx² − (Σx)². fxfit replaces it with a Newton-Raphson
// reciprocal seeded from a power of two, which makes the whole computation
// expressible with adds, multiplies and shifts, and makes every result bit
// exact and reproducible.
//
// # Core Features
//
//   - Q16.16 arithmetic with truncation and optional overflow tracking (fixed)
//   - Division-free reciprocal 1/D (reciprocal)
//   - Least-squares solver with a configurable lane reduction schedule and
//     optional parallel lanes (regression)
//   - Self-checking binary records for sample sets and fits, with optional
//     Zstd, S2 or LZ4 compression (record)
//
// # Basic Usage
//
//	import "github.com/arloliu/fxfit"
//
//	result, err := fxfit.FitFloats(ctx,
//	    []float64{0, 1, 2, 3, 4, 5, 6, 7},
//	    []float64{1, 3, 5, 7, 9, 11, 13, 15},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Formula()) // y = 0.9998 + 1.9995*x
//
// Computing a reciprocal directly:
//
//	s, err := fxfit.Reciprocal(fixed.FromFloat(2856.26))
//
// Storing a fit:
//
//	data, err := fxfit.EncodeResult(result, record.WithCompression(format.CompressionS2))
//
// # Package Structure
//
// This package provides top-level wrappers for the most common calls. Use
// the fixed, reciprocal, regression and record packages directly for
// options and intermediate values.
package fxfit

import (
	"context"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/reciprocal"
	"github.com/arloliu/fxfit/record"
	"github.com/arloliu/fxfit/regression"
)

// Fit computes the least-squares line through the paired x and y values.
//
// Example:
//
//	result, err := fxfit.Fit(ctx, x, y, regression.WithParallelism(4))
func Fit(ctx context.Context, x, y []fixed.Fixed, opts ...regression.Option) (*regression.Result, error) {
	return regression.Fit(ctx, regression.Samples{X: x, Y: y}, opts...)
}

// FitFloats converts x and y with fixed.FromFloat and fits them.
func FitFloats(ctx context.Context, x, y []float64, opts ...regression.Option) (*regression.Result, error) {
	samples, err := regression.SamplesFromFloats(x, y)
	if err != nil {
		return nil, err
	}

	return regression.Fit(ctx, samples, opts...)
}

// Predict fits the samples and returns θ1·x_i + θ0 for each x_i.
func Predict(ctx context.Context, x, y []fixed.Fixed, opts ...regression.Option) ([]fixed.Fixed, error) {
	return regression.Predict(ctx, regression.Samples{X: x, Y: y}, opts...)
}

// Reciprocal approximates 1/d with three Newton-Raphson refinements.
// d must lie in [2^-14, 2^15); see reciprocal.Approximate.
func Reciprocal(d fixed.Fixed, opts ...reciprocal.Option) (fixed.Fixed, error) {
	return reciprocal.Approximate(d, opts...)
}

// EncodeResult stores the samples and fit of result as a binary record.
func EncodeResult(result *regression.Result, opts ...record.EncoderOption) ([]byte, error) {
	return record.Encode(record.FromResult(result), opts...)
}

// DecodeRecord parses a binary record.
func DecodeRecord(data []byte) (record.Record, error) {
	return record.Decode(data)
}
