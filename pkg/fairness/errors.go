package fairness

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when the input is too small or out of range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivision is returned when a denominator degenerates to zero.
	ErrDivision = errors.New("division by zero")

	// ErrType is returned for non-integer scores where integers are required
	// and for containers of the wrong type.
	ErrType = errors.New("type error")
)
