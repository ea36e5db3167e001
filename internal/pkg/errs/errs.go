package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	errUnknownRuleProvided = errors.New("unknown rule")
)

// ObjectNotFoundError reports a missing entity identified by ParamName and ID.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that does not satisfy its format or enum.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeValue(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError reports that the requested change collides with state another
// writer (or an earlier request) already produced. Rule is the domain sentinel.
type ConflictError struct {
	Rule   error
	Detail string
}

func NewConflictError(rule error) *ConflictError {
	return &ConflictError{Rule: ruleOrUnknown(rule)}
}

func NewConflictErrorWithDetail(rule error, detail string) *ConflictError {
	return &ConflictError{Rule: ruleOrUnknown(rule), Detail: detail}
}

func (e *ConflictError) Error() string {
	return formatRule(ErrConflict, e.Rule, e.Detail)
}

func (e *ConflictError) Unwrap() []error {
	return []error{ErrConflict, e.Rule}
}

// PreconditionFailedError reports a business rule that rejects the request in the
// current state. Callers need to act before retrying. Rule is the domain sentinel.
type PreconditionFailedError struct {
	Rule   error
	Detail string
}

func NewPreconditionFailedError(rule error) *PreconditionFailedError {
	return &PreconditionFailedError{Rule: ruleOrUnknown(rule)}
}

func NewPreconditionFailedErrorWithDetail(rule error, detail string) *PreconditionFailedError {
	return &PreconditionFailedError{Rule: ruleOrUnknown(rule), Detail: detail}
}

func (e *PreconditionFailedError) Error() string {
	return formatRule(ErrPreconditionFailed, e.Rule, e.Detail)
}

func (e *PreconditionFailedError) Unwrap() []error {
	return []error{ErrPreconditionFailed, e.Rule}
}

func formatRule(family, rule error, detail string) string {
	if detail != "" {
		return fmt.Sprintf("%s: %s: %s", family, rule, sanitize(detail))
	}
	return fmt.Sprintf("%s: %s", family, rule)
}

func ruleOrUnknown(rule error) error {
	if rule == nil {
		return errUnknownRuleProvided
	}
	return rule
}

func sanitize(v any) string {
	return flatten(fmt.Sprintf("%s", v))
}

func sanitizeValue(v any) string {
	return flatten(fmt.Sprintf("%v", v))
}

func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
