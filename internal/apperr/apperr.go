// Package apperr holds the errors the service reports back to callers.
//
// Validation and not-found errors are expected outcomes: their Error() text is
// what the client sees. Anything else is an internal failure.
package apperr

import "errors"

// ValidationError is caller-correctable bad or missing input.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
	Msg  string
}

func (e *NotFoundError) Error() string { return e.Msg }

// Is lets errors.Is match any NotFoundError of the same kind.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Kind == e.Kind
}

var (
	ErrUsernameRequired   = &ValidationError{Msg: "Username is required"}
	ErrExerciseFields     = &ValidationError{Msg: "Description and duration are required"}
	ErrDurationNotANumber = &ValidationError{Msg: "Duration must be a number"}
	ErrInvalidDate        = &ValidationError{Msg: "Invalid date format"}
	ErrUserNotFound       = &NotFoundError{Kind: "user", Msg: "User not found"}
)

// UserNotFound returns a NotFoundError for id that still matches ErrUserNotFound.
func UserNotFound(id string) error {
	return &NotFoundError{Kind: "user", ID: id, Msg: ErrUserNotFound.Msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Expected reports whether err should be shown to the caller as-is.
func Expected(err error) bool { return IsValidation(err) || IsNotFound(err) }
