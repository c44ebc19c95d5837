// Package options implements the functional option pattern shared by the
// fxfit packages.
package options

// Option configures a target of type T. Options are applied in order and the
// first error stops the chain.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an Option. Use it for options that validate their argument.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a setter that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
