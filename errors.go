package frac

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDivisionByZero is returned when a value reduces to 0/0.
	ErrDivisionByZero = errors.New("frac: division by zero")

	// ErrOverflow is returned when a reduced result does not fit in int64.
	ErrOverflow = errors.New("frac: overflow")
)

// OverflowError reports which operation overflowed and on which side of the bar.
type OverflowError struct {
	Op   string // "new", "add", "mul" or "float"
	Part string // "numerator" or "denominator"
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("frac: %s: %s overflows int64", e.Op, e.Part)
}

// Unwrap returns ErrOverflow for errors.Is() support.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
