package apperror

import "errors"

// AppError is a custom error type that carries an HTTP status code and a
// stable machine-readable code alongside the user-facing message.
type AppError struct {
	Status  int    // HTTP status code (e.g., 404, 409)
	Code    string // Stable identifier for API clients (e.g., "share_expired")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf returns the machine-readable code of err if it is an AppError,
// otherwise an empty string.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
