// Package regression fits a straight line y = θ1·x + θ0 to a sample set using
// only Q16.16 fixed-point arithmetic and no division.
//
// The solver evaluates the closed-form least-squares solution
//
//	D  = n·Σx² − (Σx)²
//	s  ≈ 1/D                     (reciprocal.Approximate)
//	θ0 = Σ (Σx²·s − Σx·s·x_i)·y_i
//	θ1 = Σ (−Σx·s + n·s·x_i)·y_i
//
// replacing the single division by the Newton-Raphson reciprocal.
//
// # Pipeline
//
//  1. Lane stage: x_i and x_i² for every sample.
//  2. Reduction: Σx and Σx² with a fixed pairing schedule (pairwise tree by
//     default, identical to the unrolled eight-lane hardware kernel).
//  3. Determinant and reciprocal.
//  4. Scaled coefficients c = Σx²·s, d = −Σx·s, e = n·s.
//  5. Lane stage: (c + d·x_i)·y_i and (d + e·x_i)·y_i, reduced like step 2.
//
// Lane stages may run in parallel (WithParallelism). Reductions always run in
// schedule order, so the parallelism setting never changes the result bits.
//
// # Basic Usage
//
//	samples, err := regression.SamplesFromFloats(
//	    []float64{0, 1, 2, 3, 4, 5, 6, 7},
//	    []float64{1, 3, 5, 7, 9, 11, 13, 15},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := regression.Fit(ctx, samples)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Formula()) // y = 0.9998 + 1.9995*x
//
// # Errors
//
// Fit is strict by default:
//
//   - ErrInvalidSamples: mismatched lengths, fewer than two samples, or more
//     than MaxSampleCount.
//   - ErrDegenerateFit: the determinant is at or below the degenerate
//     threshold, for example when every x is identical.
//   - fixed.ErrOverflow: an intermediate wrapped. WithWrapping turns this
//     check off and reproduces the wrapping hardware semantics.
//   - reciprocal.ErrOutOfDomain: the determinant cannot be inverted in Q16.16.
//
// # Goodness of fit
//
// Result.Stats reports residuals, RMSE and R² in float64, together with the
// exact float64 least-squares line for comparison.
package regression
