package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrHasRelations     = errors.New("resource has dependent records and cannot be deleted")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
)

// Entity errors. Each wraps one of the common kinds above so callers can
// match either the specific error or its kind with errors.Is.
var (
	ErrCollegeNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "college not found"}
	ErrCollegeAlreadyExists = &CustomError{Err: ErrConflict, Message: "college with this code already exists"}
	ErrCollegeHasPrograms   = &CustomError{Err: ErrHasRelations, Message: "college has associated programs and cannot be deleted"}

	ErrProgramNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "program not found"}
	ErrProgramAlreadyExists = &CustomError{Err: ErrConflict, Message: "program with this code already exists"}
	ErrProgramHasStudents   = &CustomError{Err: ErrHasRelations, Message: "program has associated students and cannot be deleted"}

	ErrStudentNotFound      = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrStudentAlreadyExists = &CustomError{Err: ErrConflict, Message: "student with this ID already exists"}

	ErrUserNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
	ErrUsernameTaken   = &CustomError{Err: ErrConflict, Message: "username already taken"}
	ErrEmailRegistered = &CustomError{Err: ErrConflict, Message: "email already registered"}
)

// CustomError carries an error kind plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}
