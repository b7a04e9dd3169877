package grammar

import (
	"errors"
	"fmt"
)

// ErrValidation matches every sequence validation failure via errors.Is.
var ErrValidation = errors.New("sequence validation")

// ValidationError carries a message meant for the person who submitted the sequence.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalidf builds a *ValidationError.
func Invalidf(format string, a ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, a...)}
}
