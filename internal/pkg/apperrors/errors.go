package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Entity names used in error messages
const (
	EntityStudent  = "Student"
	EntityCourse   = "Course"
	EntitySemester = "Semester"
	EntityLecturer = "Lecturer"
)

// NewNotFoundError reports a missing entity by kind and ID
func NewNotFoundError(entity string, id int64) error {
	err := &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf("%s with ID '%d' not found.", entity, id),
	}
	return err.WithDetails(map[string]interface{}{"entity": entity, "id": id})
}

// NewAlreadyExistsError creates a new custom error for duplicate resources or memberships
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
