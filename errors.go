package parameterx

import (
	"errors"
	"fmt"
)

// ErrBuilderConsumed is returned by Builder.Build when the builder has
// already produced its Params.
var ErrBuilderConsumed = errors.New("parameterx: builder already built")

// ErrorCode categorizes parameter errors.
type ErrorCode string

const (
	// ErrCodeKeyNotFound indicates no entry exists for the key.
	ErrCodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// ErrCodeTypeMismatch indicates the entry exists with a different type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeConversionFailed indicates the entry could not be converted
	// from its text form.
	ErrCodeConversionFailed ErrorCode = "CONVERSION_FAILED"
)

// Error is returned by the error-reporting accessors (Required, Parse).
// Get and GetString report absence with a boolean instead.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Key is the parameter key that was looked up.
	Key string

	// Expected and Actual are type names, set for TYPE_MISMATCH.
	Expected string
	Actual   string

	// Err is the underlying conversion error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeKeyNotFound:
		return fmt.Sprintf("%s: parameter not found: %s", e.Code, e.Key)
	case ErrCodeTypeMismatch:
		return fmt.Sprintf("%s: parameter %s: expected %s, found %s", e.Code, e.Key, e.Expected, e.Actual)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: parameter %s: %v", e.Code, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: parameter %s", e.Code, e.Key)
}

// Unwrap returns the underlying conversion error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is a KEY_NOT_FOUND error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeKeyNotFound)
}

// IsTypeMismatch returns true if err is a TYPE_MISMATCH error.
func IsTypeMismatch(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

// IsConversionFailed returns true if err is a CONVERSION_FAILED error.
func IsConversionFailed(err error) bool {
	return hasCode(err, ErrCodeConversionFailed)
}

func hasCode(err error, code ErrorCode) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

func newNotFoundError(key string) *Error {
	return &Error{Code: ErrCodeKeyNotFound, Key: key}
}

func newTypeMismatchError(key, expected, actual string) *Error {
	return &Error{
		Code:     ErrCodeTypeMismatch,
		Key:      key,
		Expected: expected,
		Actual:   actual,
	}
}

func newConversionError(key string, err error) *Error {
	return &Error{Code: ErrCodeConversionFailed, Key: key, Err: err}
}
