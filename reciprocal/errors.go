package reciprocal

import (
	"errors"
	"fmt"

	"github.com/arloliu/fxfit/fixed"
)

// ErrOutOfDomain is returned when D is not strictly positive or its reciprocal
// cannot be seeded inside the Q16.16 layout.
var ErrOutOfDomain = errors.New("reciprocal: input out of domain")

// DomainError carries the rejected input. Exponent is the scan position
// reached before the input was rejected (zero for non-positive input).
type DomainError struct {
	D        fixed.Fixed
	Exponent int
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("reciprocal: D=%s out of domain (k=%d): %s", e.D, e.Exponent, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }
