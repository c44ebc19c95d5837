package reciprocal

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/fxfit/internal/options"
)

// DefaultIterations is the Newton-Raphson budget of the hardware kernel.
const DefaultIterations = 3

// MaxIterations bounds WithIterations. Convergence is complete long before it.
const MaxIterations = 16

// Config holds approximator settings.
type Config struct {
	Iterations int
	Logger     *slog.Logger
}

func defaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Option configures the approximator.
type Option = options.Option[*Config]

// WithIterations sets the fixed number of refinement steps.
func WithIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 || n > MaxIterations {
			return fmt.Errorf("reciprocal: iterations must be in [0, %d], got %d", MaxIterations, n)
		}
		cfg.Iterations = n

		return nil
	})
}

// WithLogger sets the logger used for debug tracing. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = logger
	})
}
