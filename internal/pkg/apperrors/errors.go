package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Storage errors
	ErrFileMissing          = errors.New("no file provided")
	ErrFileNotImage         = errors.New("file is not an image")
	ErrFileTooLarge         = errors.New("file exceeds the maximum allowed size")
	ErrFileTypeUnsupported  = errors.New("unsupported file extension")
	ErrUploadFailed         = errors.New("upload rejected by storage backend")
	ErrPublicURLUnavailable = errors.New("public URL could not be resolved")
	ErrInvalidStoragePath   = errors.New("invalid storage path")

	// Backend errors
	ErrStoreUnavailable = errors.New("store backend unavailable")
)

// Hostel errors
var (
	ErrHostelNotFound = errors.New("hostel not found")
)

// News errors
var (
	ErrNewsItemNotFound = errors.New("news item not found")
)

// Event errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// Job errors
var (
	ErrJobNotFound = errors.New("job not found")
)

// Roommate errors
var (
	ErrRoommateProfileNotFound = errors.New("roommate profile not found")
)

// Spotlight errors
var (
	ErrNomineeNotFound = errors.New("spotlight nominee not found")
)

// Catalog errors
var (
	ErrUniversityNotFound = errors.New("university not found")
	ErrServiceNotFound    = errors.New("service not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed validation with a message
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
