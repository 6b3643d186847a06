package criteria

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeInvalidOperator indicates an unrecognized operator spelling.
	ErrCodeInvalidOperator ErrorCode = "INVALID_OPERATOR"

	// ErrCodeInvalidFilter indicates a missing or malformed field or value.
	ErrCodeInvalidFilter ErrorCode = "INVALID_FILTER"

	// ErrCodeInvalidOrder indicates an unrecognized order direction.
	ErrCodeInvalidOrder ErrorCode = "INVALID_ORDER"

	// ErrCodeInvalidPagination indicates a half-specified or non-positive page.
	ErrCodeInvalidPagination ErrorCode = "INVALID_PAGINATION"

	// ErrCodeTooDeep indicates a Filters tree nested beyond the allowed depth.
	ErrCodeTooDeep ErrorCode = "CRITERIA_TOO_DEEP"
)

// Sentinel errors, one per code. Every *Error matches the sentinel of its
// code with errors.Is.
var (
	ErrInvalidOperator   = &Error{Code: ErrCodeInvalidOperator, Message: "invalid operator"}
	ErrInvalidFilter     = &Error{Code: ErrCodeInvalidFilter, Message: "invalid filter"}
	ErrInvalidOrder      = &Error{Code: ErrCodeInvalidOrder, Message: "invalid order"}
	ErrInvalidPagination = &Error{Code: ErrCodeInvalidPagination, Message: "invalid pagination"}
	ErrTooDeep           = &Error{Code: ErrCodeTooDeep, Message: "criteria too deep"}
)

// Error is a construction error.
//
// Construction errors are raised eagerly, before a Criteria value exists.
// Field names the offending input (a field name, "operator", "page_size").
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Field names the offending input, if known.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field=%s)", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
// This makes every construction error match its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsCode returns true if err is (or wraps) an *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newError(code ErrorCode, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Field:   field,
	}
}
