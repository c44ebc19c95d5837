package regression_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/regression"
)

// ExampleFit demonstrates fitting a line to eight exact samples.
func ExampleFit() {
	samples, err := regression.SamplesFromFloats(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
		[]float64{1, 3, 5, 7, 9, 11, 13, 15},
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := regression.Fit(context.Background(), samples)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Formula())
	fmt.Printf("D=%s k=%d s=%d ulp\n",
		result.Trace.Determinant, result.Trace.Reciprocal.Exponent, result.Trace.Reciprocal.Value.Bits())

	// Output:
	// y = 0.9998 + 1.9995*x
	// D=336 k=9 s=195 ulp
}

// ExamplePredict demonstrates the prediction view of a fit.
func ExamplePredict() {
	samples, err := regression.SamplesFromFloats(
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
		[]float64{1, 3, 5, 7, 9, 11, 13, 15},
	)
	if err != nil {
		log.Fatal(err)
	}

	preds, err := regression.Predict(context.Background(), samples)
	if err != nil {
		log.Fatal(err)
	}

	for i, p := range preds {
		fmt.Printf("x=%d y=%.4f\n", i, p.Float64())
	}

	// Output:
	// x=0 y=0.9998
	// x=1 y=2.9993
	// x=2 y=4.9988
	// x=3 y=6.9983
	// x=4 y=8.9978
	// x=5 y=10.9973
	// x=6 y=12.9968
	// x=7 y=14.9963
}

// ExampleResult_Stats compares a noisy fit with the float64 reference line.
func ExampleResult_Stats() {
	samples, err := regression.SamplesFromFloats(
		[]float64{-1.1, 0.1, 1.2, 2.3, 3.1, 4.1, 4.8, 5.7},
		[]float64{-1.7, 2.4, 5.0, 7.3, 10.9, 12.5, 16.2, 19.7},
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := regression.Fit(context.Background(), samples)
	if err != nil {
		log.Fatal(err)
	}

	stats := result.Stats()
	fmt.Println("fixed:    ", result.Formula())
	fmt.Printf("reference: y = %.4f + %.4f*x\n", stats.Reference[0], stats.Reference[1])
	fmt.Printf("R²: %.3f\n", stats.RSquared)

	// Output:
	// fixed:     y = 1.4080 + 3.0092*x
	// reference: y = 1.4140 + 3.0192*x
	// R²: 0.987
}

// ExampleNewLinearEstimator demonstrates evaluating known coefficients.
func ExampleNewLinearEstimator() {
	est := regression.NewLinearEstimator(regression.Coefficients{
		Theta0: fixed.FromInt(1),
		Theta1: fixed.FromInt(2),
	})

	fmt.Println(est)
	for _, x := range []float64{-1, 0.5, 2.5} {
		fmt.Printf("f(%.1f) = %s\n", x, est.Estimate(fixed.FromFloat(x)))
	}

	// Output:
	// y = 1.0000 + 2.0000*x
	// f(-1.0) = -1
	// f(0.5) = 2
	// f(2.5) = 6
}

// ExampleFit_degenerate shows the error for samples that share one x.
func ExampleFit_degenerate() {
	samples, err := regression.SamplesFromFloats(
		[]float64{3, 3, 3, 3},
		[]float64{1, 2, 3, 4},
	)
	if err != nil {
		log.Fatal(err)
	}

	_, err = regression.Fit(context.Background(), samples)
	fmt.Println(errors.Is(err, regression.ErrDegenerateFit))
	fmt.Println(err)

	// Output:
	// true
	// regression: degenerate fit: determinant 0 <= threshold 0
}
