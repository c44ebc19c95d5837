// Package reciprocal approximates 1/D for a positive Q16.16 value without a
// division instruction.
//
// The approximation runs in three stages:
//
//  1. Exponent discovery: a unit value is shifted left until it is strictly
//     greater than D, counting the shifts k. For 0 < D < 1 the scan runs the
//     other way, so k may be negative.
//  2. Seed: 2^-k, built by setting the single bit FracBits-k. Because
//     2^(k-1) <= D < 2^k, the seed satisfies 0.5 <= seed*D < 1.
//  3. Refinement: a fixed number of Newton-Raphson steps x = x*(2 - D*x),
//     three by default. Each step roughly doubles the number of correct bits;
//     there is no convergence test.
//
// Starting below 1/D, every step stays below 1/D (up to one ulp of truncation),
// so no intermediate can overflow for an in-domain D.
//
// # Domain
//
// D must satisfy 2^-14 <= D < 2^15. D <= 0 or D below the lower bound is
// reported as ErrOutOfDomain, wrapped in a *DomainError that records the input
// and the exponent reached by the scan.
//
// ApproximateUnchecked reproduces the unchecked hardware kernel for
// bit-compatibility work: it never returns an error and lets an out-of-domain
// input produce whatever the wrapping arithmetic yields.
package reciprocal
