package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. These are wrapped by the concrete
// error structs and can be matched with errors.Is.
var (
	// ErrObjectNotFound is the sentinel for ObjectNotFoundError.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for ValueIsInvalidError.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for ValueIsOutOfRangeError.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for ValueIsRequiredError.
	ErrValueIsRequired = errors.New("value is required")
	// ErrIllegalTransition is the sentinel for IllegalTransitionError.
	ErrIllegalTransition = errors.New("illegal transition")
	// ErrConflict is the sentinel for ConflictError.
	ErrConflict = errors.New("conflict")
	// ErrRoleNotAllowed is the sentinel for RoleNotAllowedError.
	ErrRoleNotAllowed = errors.New("role not allowed")
)

// sanitize flattens newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
//
// It records the parameter name that identified the object and the ID that
// was looked up, and optionally the underlying cause.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

// Error implements the error interface.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

// Unwrap returns the sentinel so errors.Is(err, ErrObjectNotFound) matches.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or
// otherwise fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error implements the error interface.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsInvalid) matches.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside the
// permitted interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

// Error implements the error interface.
func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsOutOfRange) matches.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

// Error implements the error interface.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

// Unwrap returns the sentinel so errors.Is(err, ErrValueIsRequired) matches.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IllegalTransitionError indicates a state change that is not the defined
// successor of the current state, or a station action attempted on an order
// that is not in the required upstream status.
type IllegalTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewIllegalTransitionError creates an IllegalTransitionError without a cause.
func NewIllegalTransitionError(paramName, from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{ParamName: paramName, From: from, To: to}
}

// NewIllegalTransitionErrorWithCause creates an IllegalTransitionError wrapping a cause.
func NewIllegalTransitionErrorWithCause(paramName, from, to string, cause error) *IllegalTransitionError {
	return &IllegalTransitionError{ParamName: paramName, From: from, To: to, Cause: cause}
}

// Error implements the error interface.
func (e *IllegalTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrIllegalTransition, e.ParamName, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot go from %s to %s",
		ErrIllegalTransition, e.ParamName, e.From, e.To))
}

// Unwrap returns the sentinel so errors.Is(err, ErrIllegalTransition) matches.
func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ConflictError indicates that an operation collides with existing in-flight
// state, such as a second login while a session is active or starting a
// duplicate sub-process for an order already being worked.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s (cause: %s)", ErrConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s", ErrConflict, e.ParamName, e.ID))
}

// Unwrap returns the sentinel so errors.Is(err, ErrConflict) matches.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// RoleNotAllowedError indicates that a command was issued by a caller whose
// role is not permitted to perform it. The gate lives in the core so the
// rejection holds regardless of the caller.
type RoleNotAllowedError struct {
	Required string
	Actual   string
	Cause    error
}

// NewRoleNotAllowedError creates a RoleNotAllowedError without a cause.
func NewRoleNotAllowedError(required, actual string) *RoleNotAllowedError {
	return &RoleNotAllowedError{Required: required, Actual: actual}
}

// NewRoleNotAllowedErrorWithCause creates a RoleNotAllowedError wrapping a cause.
func NewRoleNotAllowedErrorWithCause(required, actual string, cause error) *RoleNotAllowedError {
	return &RoleNotAllowedError{Required: required, Actual: actual, Cause: cause}
}

// Error implements the error interface.
func (e *RoleNotAllowedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: requires %s, caller is %s (cause: %s)",
			ErrRoleNotAllowed, e.Required, e.Actual, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: requires %s, caller is %s",
		ErrRoleNotAllowed, e.Required, e.Actual))
}

// Unwrap returns the sentinel so errors.Is(err, ErrRoleNotAllowed) matches.
func (e *RoleNotAllowedError) Unwrap() error {
	return ErrRoleNotAllowed
}
