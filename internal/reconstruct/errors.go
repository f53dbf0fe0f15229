package reconstruct

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed input: bad tokens or a sum count that does not match n.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentSums marks a sum multiset that no sequence could have produced.
	ErrInconsistentSums = errors.New("inconsistent sums")

	// ErrMismatch marks an answer whose pairwise minimums differ from the input.
	ErrMismatch = errors.New("answer does not match input")
)

// InvalidInputError describes why an input was rejected.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Invalidf builds an InvalidInputError with a formatted reason.
func Invalidf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// InconsistentSumsError reports the extraction step at which the multiset ran short.
type InconsistentSumsError struct {
	Step  int   // 1-based extraction step
	Value int64 // current minimum
	Want  int   // occurrences the step must consume
	Have  int   // occurrences present
}

func (e *InconsistentSumsError) Error() string {
	return fmt.Sprintf("inconsistent sums: step %d needs %d occurrences of %d, have %d",
		e.Step, e.Want, e.Value, e.Have)
}

// Is lets errors.Is match ErrInconsistentSums.
func (e *InconsistentSumsError) Is(target error) bool { return target == ErrInconsistentSums }
