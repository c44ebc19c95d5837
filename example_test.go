package fxfit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/arloliu/fxfit"
	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/format"
	"github.com/arloliu/fxfit/record"
)

func ExampleFitFloats() {
	result, err := fxfit.FitFloats(context.Background(),
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
		[]float64{1, 3, 5, 7, 9, 11, 13, 15},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Formula())
	// Output: y = 0.9998 + 1.9995*x
}

func ExampleReciprocal() {
	for _, d := range []float64{1, 16, 336} {
		s, err := fxfit.Reciprocal(fixed.FromFloat(d))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("1/%v ≈ %.6f (%d ulp)\n", d, s.Float64(), s.Bits())
	}

	// Output:
	// 1/1 ≈ 0.996094 (65280 ulp)
	// 1/16 ≈ 0.062256 (4080 ulp)
	// 1/336 ≈ 0.002975 (195 ulp)
}

func ExampleEncodeResult() {
	result, err := fxfit.FitFloats(context.Background(),
		[]float64{0, 1, 2, 3, 4, 5, 6, 7},
		[]float64{1, 3, 5, 7, 9, 11, 13, 15},
	)
	if err != nil {
		log.Fatal(err)
	}

	data, err := fxfit.EncodeResult(result, record.WithCompression(format.CompressionNone))
	if err != nil {
		log.Fatal(err)
	}

	rec, err := fxfit.DecodeRecord(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(data), rec.Samples.Len(), rec.Fit.Coefficients == result.Coefficients)
	// Output: 104 8 true
}
