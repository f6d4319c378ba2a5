package ask

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrEOF is returned when the input stream is exhausted (Ctrl+D or a
	// closed pipe). It is fatal: the ask loop never retries after EOF.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")

	// ErrNotValid is returned when the normalized answer fails the
	// configured validator. Recoverable: the ask loop re-prompts.
	ErrNotValid = errors.New("answer not valid")
	// ErrNotInRange is returned when the converted answer falls outside the
	// configured Above/Below/In bounds. Recoverable.
	ErrNotInRange = errors.New("answer not in range")
	// ErrInvalidType is returned when the answer cannot be converted to the
	// question's Kind. Recoverable. Conversion failures carry detail via
	// ConvertError, which wraps this sentinel.
	ErrInvalidType = errors.New("answer has invalid type")
	// ErrNoCompletion is returned when an answer matches none of the
	// question's choices. Recoverable.
	ErrNoCompletion = errors.New("no completion for answer")
	// ErrAmbiguousCompletion is returned when an answer is a prefix of more
	// than one choice. Recoverable.
	ErrAmbiguousCompletion = errors.New("ambiguous completion for answer")
	// ErrMismatch is returned when gathered answers disagree under
	// verify-match. Recoverable: the whole gather restarts.
	ErrMismatch = errors.New("gathered answers do not match")
)

// ConvertError reports a failed conversion of an answer string to the
// question's target kind. It wraps ErrInvalidType so callers can test with
// errors.Is(err, ErrInvalidType).
type ConvertError struct {
	Kind  Kind   // target kind the answer failed to satisfy
	Input string // the offending (normalized) answer string
	Err   error  // underlying parse error, may be nil
}

func (e *ConvertError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %q to %s: %v", e.Input, e.Kind, e.Err)
	}
	return fmt.Sprintf("cannot convert %q to %s", e.Input, e.Kind)
}

// Unwrap reports this error as an ErrInvalidType.
func (e *ConvertError) Unwrap() error { return ErrInvalidType }

// recoverable reports whether the ask loop should re-prompt after err.
func recoverable(err error) bool {
	switch {
	case errors.Is(err, ErrNotValid),
		errors.Is(err, ErrNotInRange),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrNoCompletion),
		errors.Is(err, ErrAmbiguousCompletion),
		errors.Is(err, ErrMismatch):
		return true
	}
	return false
}
