package regression

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/internal/options"
	"github.com/arloliu/fxfit/internal/reduce"
	"github.com/arloliu/fxfit/reciprocal"
)

// Fit computes the least-squares line through samples.
//
// Parameters:
//   - ctx: Checked between stages and between lanes
//   - samples: Sample set, see Samples.Validate
//   - opts: Optional solver settings
//
// Returns:
//   - *Result: Coefficients and the intermediate trace
//   - error: ErrInvalidSamples, ErrDegenerateFit, fixed.ErrOverflow,
//     reciprocal.ErrOutOfDomain, an option error or the context error
//
// Example:
//
//	result, err := regression.Fit(ctx, samples)
//	if errors.Is(err, regression.ErrDegenerateFit) {
//	    // every x is the same
//	}
func Fit(ctx context.Context, samples Samples, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := samples.Validate(); err != nil {
		return nil, err
	}

	f := &fitter{cfg: cfg, x: slices.Clone(samples.X), y: slices.Clone(samples.Y)}

	return f.run(ctx)
}

// FitXY is Fit with a background context and raw columns.
func FitXY(x, y []fixed.Fixed, opts ...Option) (*Result, error) {
	return Fit(context.Background(), Samples{X: x, Y: y}, opts...)
}

// Predict fits samples and returns θ1·x_i + θ0 for every sample, in input
// order. It is the prediction-shaped view of Fit.
func Predict(ctx context.Context, samples Samples, opts ...Option) ([]fixed.Fixed, error) {
	result, err := Fit(ctx, samples, opts...)
	if err != nil {
		return nil, err
	}

	return result.Predictions()
}

// fitter holds the per-call state. Nothing in it outlives Fit.
type fitter struct {
	cfg Config
	x   []fixed.Fixed
	y   []fixed.Fixed
	ck  fixed.Checked
}

func (f *fitter) run(ctx context.Context) (*Result, error) {
	n := len(f.x)
	count := fixed.FromInt(n)

	// Σx and Σx².
	a := make([]fixed.Fixed, n)
	b := make([]fixed.Fixed, n)
	err := f.lanes(ctx, "moments", func(i int, ck *fixed.Checked) {
		a[i] = f.x[i]
		b[i] = ck.Mul(f.x[i], f.x[i])
	})
	if err != nil {
		return nil, err
	}

	sumX := f.sum(a)
	sumX2 := f.sum(b)
	if err := f.checkpoint("sums"); err != nil {
		return nil, err
	}

	det := f.ck.Sub(f.ck.Mul(count, sumX2), f.ck.Mul(sumX, sumX))
	if err := f.checkpoint("determinant"); err != nil {
		return nil, err
	}

	if det.LessEq(f.cfg.DegenerateThreshold) {
		return nil, &DegenerateFitError{Determinant: det, Threshold: f.cfg.DegenerateThreshold}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv, err := reciprocal.Trace(det,
		reciprocal.WithIterations(f.cfg.Iterations),
		reciprocal.WithLogger(f.cfg.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("regression: inverting determinant: %w", err)
	}
	s := inv.Value

	c := f.ck.Mul(sumX2, s)
	d := f.ck.Mul(f.ck.Neg(sumX), s)
	e := f.ck.Mul(count, s)
	if err := f.checkpoint("scaled coefficients"); err != nil {
		return nil, err
	}

	th0 := make([]fixed.Fixed, n)
	th1 := make([]fixed.Fixed, n)
	err = f.lanes(ctx, "coefficients", func(i int, ck *fixed.Checked) {
		xi, yi := f.x[i], f.y[i]
		th0[i] = ck.Mul(ck.Add(c, ck.Mul(d, xi)), yi)
		th1[i] = ck.Mul(ck.Add(d, ck.Mul(e, xi)), yi)
	})
	if err != nil {
		return nil, err
	}

	coeffs := Coefficients{Theta0: f.sum(th0), Theta1: f.sum(th1)}
	if err := f.checkpoint("coefficient sums"); err != nil {
		return nil, err
	}

	trace := Trace{
		N:           count,
		SumX:        sumX,
		SumX2:       sumX2,
		Determinant: det,
		Reciprocal:  inv,
		C:           c,
		D:           d,
		E:           e,
	}

	f.cfg.Logger.Debug("least-squares fit",
		slog.Int("n", n),
		slog.String("reduction", f.cfg.Reduction.String()),
		slog.String("sum_x", sumX.String()),
		slog.String("sum_x2", sumX2.String()),
		slog.String("determinant", det.String()),
		slog.String("reciprocal", s.String()),
		slog.String("theta0", coeffs.Theta0.String()),
		slog.String("theta1", coeffs.Theta1.String()),
	)

	return &Result{
		Coefficients: coeffs,
		Trace:        trace,
		Samples:      Samples{X: f.x, Y: f.y},
		wrapping:     f.cfg.Wrapping,
	}, nil
}

// lanes runs fn for every sample. Each lane gets its own overflow tracker;
// the lowest overflowing lane is reported so the error does not depend on
// scheduling.
func (f *fitter) lanes(ctx context.Context, stage string, fn func(i int, ck *fixed.Checked)) error {
	errs := make([]error, len(f.x))
	err := reduce.Map(ctx, len(f.x), f.cfg.Parallelism, func(i int) error {
		var ck fixed.Checked
		fn(i, &ck)
		errs[i] = ck.Err()

		return nil
	})
	if err != nil {
		return err
	}

	if f.cfg.Wrapping {
		return nil
	}
	for i, laneErr := range errs {
		if laneErr != nil {
			return fmt.Errorf("regression: %s lane %d: %w", stage, i, laneErr)
		}
	}

	return nil
}

// sum reduces lanes in place with the configured schedule.
func (f *fitter) sum(lanes []fixed.Fixed) fixed.Fixed {
	return reduce.Reduce(lanes, f.cfg.Reduction, f.ck.Add)
}

// checkpoint reports an overflow recorded by the scalar tracker.
func (f *fitter) checkpoint(stage string) error {
	if f.cfg.Wrapping {
		return nil
	}
	if err := f.ck.Err(); err != nil {
		return fmt.Errorf("regression: %s: %w", stage, err)
	}

	return nil
}
