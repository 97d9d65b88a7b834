package apperror

// AppError is a custom error type that carries an HTTP status code alongside
// the user-facing message.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to the user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
