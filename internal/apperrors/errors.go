package apperrors

import (
	"errors"
	"fmt"
)

// Domain outcomes surfaced to storefront callers as success:false JSON
// bodies. None of these is a server fault.
var (
	ErrAlreadyVoted  = errors.New("Already voted")
	ErrPollClosed    = errors.New("Poll closed")
	ErrInvalidOption = errors.New("Invalid option")
	ErrThreadClosed  = errors.New("Thread is closed")
	ErrNotFound      = errors.New("Not found")
	ErrAnonymousOff  = errors.New("Anonymous posting is disabled")
)

// ValidationError marks a missing or malformed required field. The
// message is user-facing and must not carry internal detail.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDomain reports whether err is one of the expected domain outcomes,
// as opposed to a transient persistence failure.
func IsDomain(err error) bool {
	return errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrPollClosed) ||
		errors.Is(err, ErrInvalidOption) ||
		errors.Is(err, ErrThreadClosed) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAnonymousOff) ||
		IsValidation(err)
}
