package regression

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/fxfit/fixed"
	"github.com/arloliu/fxfit/internal/options"
	"github.com/arloliu/fxfit/internal/reduce"
	"github.com/arloliu/fxfit/reciprocal"
)

// Reduction selects the pairing schedule used to sum lanes.
type Reduction = reduce.Order

const (
	// ReductionPairwise is the stride-doubling tree of the hardware kernel.
	ReductionPairwise Reduction = reduce.Pairwise
	// ReductionSequential folds lanes left to right.
	ReductionSequential Reduction = reduce.Sequential
)

// Config holds solver settings.
type Config struct {
	// Reduction is the lane pairing schedule.
	Reduction Reduction
	// Parallelism is the maximum number of goroutines per lane stage.
	// Values <= 1 run lanes on the calling goroutine.
	Parallelism int
	// Wrapping disables overflow detection.
	Wrapping bool
	// DegenerateThreshold is the largest determinant treated as degenerate.
	DegenerateThreshold fixed.Fixed
	// Iterations is the Newton-Raphson budget of the reciprocal.
	Iterations int
	// Logger receives debug traces.
	Logger *slog.Logger
}

// defaultConfig uses the pairwise schedule of the hardware kernel with serial
// lanes and strict overflow checks.
func defaultConfig() Config {
	return Config{
		Reduction:           ReductionPairwise,
		Parallelism:         1,
		DegenerateThreshold: fixed.Zero,
		Iterations:          reciprocal.DefaultIterations,
		Logger:              slog.New(slog.DiscardHandler),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithReduction sets the lane pairing schedule.
func WithReduction(order Reduction) Option {
	return options.New(func(cfg *Config) error {
		if !order.Valid() {
			return fmt.Errorf("regression: unknown reduction %s", order)
		}
		cfg.Reduction = order

		return nil
	})
}

// WithParallelism sets the maximum number of goroutines used per lane stage.
func WithParallelism(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("regression: parallelism must not be negative, got %d", n)
		}
		cfg.Parallelism = n

		return nil
	})
}

// WithWrapping disables overflow detection so intermediates wrap silently,
// as in the hardware kernel. Degenerate and domain checks stay active.
func WithWrapping() Option {
	return options.NoError(func(cfg *Config) {
		cfg.Wrapping = true
	})
}

// WithDegenerateThreshold treats any determinant <= threshold as degenerate.
func WithDegenerateThreshold(threshold fixed.Fixed) Option {
	return options.New(func(cfg *Config) error {
		if threshold.Sign() < 0 {
			return fmt.Errorf("regression: degenerate threshold must not be negative, got %s", threshold)
		}
		cfg.DegenerateThreshold = threshold

		return nil
	})
}

// WithIterations sets the Newton-Raphson budget passed to the reciprocal.
func WithIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 || n > reciprocal.MaxIterations {
			return fmt.Errorf("regression: iterations must be in [0, %d], got %d", reciprocal.MaxIterations, n)
		}
		cfg.Iterations = n

		return nil
	})
}

// WithLogger sets the debug logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = logger
	})
}
