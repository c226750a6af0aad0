package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors
type ErrorCode string

const (
	// Generic error codes
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Catalog error codes
	CodeUnknownPattern ErrorCode = "UNKNOWN_PATTERN"
	CodeUnimplemented  ErrorCode = "UNIMPLEMENTED"
	CodeRemoteThrottle ErrorCode = "REMOTE_THROTTLED"
)

// Sentinel errors for errors.Is() checks. They carry no context; wrap them
// in an AppError when context is needed.
var (
	// ErrUnknownPattern no demonstration registered under the given name
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrUnimplemented an operation was invoked without an implementation
	// bound to it (e.g. a payment processor with no strategy assigned)
	ErrUnimplemented = errors.New("unimplemented operation")

	// ErrRemoteThrottled the simulated remote rejected a fetch
	ErrRemoteThrottled = errors.New("remote throttled")
)

// AppError Application error with a stable code and optional cause
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 常用错误构造函数

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func UnknownPattern(name string) *AppError {
	return Wrap(ErrUnknownPattern, CodeUnknownPattern, fmt.Sprintf("no demonstration registered for %q", name))
}

func Unimplemented(op string) *AppError {
	return Wrap(ErrUnimplemented, CodeUnimplemented, fmt.Sprintf("%s has no implementation bound", op))
}

func RemoteThrottled(key string) *AppError {
	return Wrap(ErrRemoteThrottled, CodeRemoteThrottle, fmt.Sprintf("fetch for %q rejected by rate limit", key))
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need both this package and stdlib errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
