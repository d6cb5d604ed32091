package bank

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a session cannot be built from
// the requested options, e.g. more rounds than questions in the bank.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// LoadError indicates a bank file could not be read, parsed or validated.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load question bank: %v", e.Err)
	}
	return fmt.Sprintf("load question bank %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
