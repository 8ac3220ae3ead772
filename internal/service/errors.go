// internal/service/errors.go
package service

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned by Authenticate for an unknown
	// username or a wrong password alike; callers must not learn which.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTaskNotFound is returned when a task does not exist or is not
	// owned by the caller.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports user input that failed a registration or task
// rule. The message is safe to show to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
