package sampling

import (
	"errors"
	"fmt"
)

// ErrorType groups error codes into the coarse classes the transport layer
// maps to status codes.
type ErrorType string

const (
	TypeValidation ErrorType = "VALIDATION_ERROR"
	TypeConstraint ErrorType = "CONSTRAINT_ERROR"
	TypeInternal   ErrorType = "INTERNAL_ERROR"
)

// ErrorCode identifies a specific blocking failure.
type ErrorCode string

const (
	// CodeValidation covers malformed or out-of-range input rejected before
	// any engine runs (wafer spec, process limits, tool profile).
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeInvalidStrategyConfig is a configuration-validator rejection:
	// unknown field, wrong type, out-of-range value, or a cross-field rule.
	CodeInvalidStrategyConfig ErrorCode = "INVALID_STRATEGY_CONFIG"
	// CodeDisallowedStrategy means the identifier is unregistered or not in
	// the process context's allowed set.
	CodeDisallowedStrategy ErrorCode = "DISALLOWED_STRATEGY"
	// CodeConstraint means the minimum point count cannot be satisfied.
	CodeConstraint ErrorCode = "CONSTRAINT_ERROR"
	// CodeUnsupportedCoordinateSystem is a translation-stage mismatch between
	// the wafer's coordinate system and the tool's supported set.
	CodeUnsupportedCoordinateSystem ErrorCode = "UNSUPPORTED_COORDINATE_SYSTEM"
	// CodeInternal covers unexpected engine failures.
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is a blocking pipeline failure. When an operation returns an *Error,
// no result is produced and nothing is retried inside the core.
type Error struct {
	Code    ErrorCode `json:"code"`
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a blocking validation-class error.
func NewValidationError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Type: TypeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewConstraintError builds a blocking constraint-class error.
func NewConstraintError(format string, args ...any) *Error {
	return &Error{Code: CodeConstraint, Type: TypeConstraint, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Type: TypeInternal, Message: fmt.Sprintf(format, args...)}
}

// NewConfigError builds an INVALID_STRATEGY_CONFIG error carrying the
// offending field and a human-readable reason.
func NewConfigError(field, reason string) *Error {
	return &Error{
		Code:    CodeInvalidStrategyConfig,
		Type:    TypeValidation,
		Message: fmt.Sprintf("invalid strategy config: field %q: %s", field, reason),
	}
}

// AsError unwraps err into a *Error when possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the error code of err, or CodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return CodeInternal
}
