package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can branch on kind instead of
// matching message text.
type Code string

const (
	// CodeUnknown indicates an uncategorized error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller supplied a bad argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodePrecondition indicates an action was refused before any state changed
	// (unconscious actor, not in roleplay mode, ability not owned)
	CodePrecondition Code = "precondition"

	// CodeValidation indicates a request shape problem the caller can correct,
	// e.g. an opposed check invoked without a primary target
	CodeValidation Code = "validation"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Error is the application error type carrying a code and optional metadata.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context, preserving the code if the
// wrapped error is already an *Error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return &Error{
			Code:    rpgErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(rpgErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Helper constructors for the codes the engine uses

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Precondition creates a precondition error
func Precondition(message string) *Error {
	return New(CodePrecondition, message)
}

// Preconditionf creates a formatted precondition error
func Preconditionf(format string, args ...any) *Error {
	return Newf(CodePrecondition, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsPrecondition checks if the error is a precondition error
func IsPrecondition(err error) bool {
	return Is(err, CodePrecondition)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// GetCode returns the error code, CodeUnknown for foreign errors
func GetCode(err error) Code {
	var rpgErr *Error
	if errors.As(err, &rpgErr) {
		return rpgErr.Code
	}
	return CodeUnknown
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
