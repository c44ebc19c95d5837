package regression

import (
	"fmt"
	"math"
)

// Stats compares a fixed-point fit with the data and with the exact float64
// least-squares line. It is host-side reporting; nothing in the solver
// depends on it.
type Stats struct {
	// Predictions are the fixed-point predictions converted to float64.
	Predictions []float64
	// Residuals are y_i − prediction_i.
	Residuals []float64
	// RSquared is the coefficient of determination of the fixed-point line.
	RSquared float64
	// RMSE is the root mean square of the residuals.
	RMSE float64
	// Reference is the exact float64 least-squares line [θ0, θ1].
	Reference [2]float64
	// CoefficientError is max(|θ0 − ref θ0|, |θ1 − ref θ1|).
	CoefficientError float64
}

// String returns a one-line summary of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{R²: %.4f, RMSE: %.4f, Reference: y = %.4f + %.4f*x, CoefficientError: %.6f}",
		s.RSquared, s.RMSE, s.Reference[0], s.Reference[1], s.CoefficientError)
}

// Stats computes goodness-of-fit statistics for r. Predictions use wrapping
// arithmetic, so Stats never fails.
func (r *Result) Stats() Stats {
	x := make([]float64, r.Samples.Len())
	y := make([]float64, r.Samples.Len())
	pred := make([]float64, r.Samples.Len())

	est := r.Estimator()
	for i := range r.Samples.X {
		x[i] = r.Samples.X[i].Float64()
		y[i] = r.Samples.Y[i].Float64()
		pred[i] = est.Estimate(r.Samples.X[i]).Float64()
	}

	residuals := make([]float64, len(y))
	for i := range y {
		residuals[i] = y[i] - pred[i]
	}

	ref0, ref1 := fitLinear(x, y)
	theta0, theta1 := r.Coefficients.Theta0.Float64(), r.Coefficients.Theta1.Float64()

	return Stats{
		Predictions:      pred,
		Residuals:        residuals,
		RSquared:         calculateRSquared(y, pred),
		RMSE:             calculateRMSE(y, pred),
		Reference:        [2]float64{ref0, ref1},
		CoefficientError: math.Max(math.Abs(theta0-ref0), math.Abs(theta1-ref1)),
	}
}

// fitLinear returns the float64 least-squares line y = a + b*x.
// A degenerate x column yields a horizontal line through the mean of y.
func fitLinear(x, y []float64) (a, b float64) {
	n := len(x)
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range n {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)
	den := sumX2 - float64(n)*meanX*meanX
	if den == 0 {
		return meanY, 0
	}

	b = (sumXY - float64(n)*meanX*meanY) / den
	a = meanY - b*meanX

	return a, b
}

// calculateRSquared returns 1 − SS_res/SS_tot, or 0 when y is constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE returns √(Σ(observed − predicted)² / n).
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
