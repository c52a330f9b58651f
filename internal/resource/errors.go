package resource

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so transports can map it to a status
// without parsing error strings.
type Kind int

const (
	// KindInternal covers unexpected failures (storage errors, bad state).
	KindInternal Kind = iota
	// KindValidation covers blank required fields and malformed input.
	KindValidation
	// KindNotFound covers operations referencing an unknown record id.
	KindNotFound
	// KindConflict covers creation with an id that is already taken.
	KindConflict
	// KindPathNotFound covers dotted-path mutations into a missing branch.
	KindPathNotFound
)

// Error is the typed failure returned by every resource service. The code is
// a dotted operation identifier such as "leads.create.missing_field".
type Error struct {
	kind Kind
	code string
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the dotted operation code.
func (e *Error) Code() string {
	return e.code
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	return e.kind
}

func newError(kind Kind, operation, reason string, cause error) *Error {
	return &Error{kind: kind, code: fmt.Sprintf("%s.%s", operation, reason), err: cause}
}

// NewValidationError reports blank or malformed caller input.
func NewValidationError(operation, reason string, cause error) *Error {
	return newError(KindValidation, operation, reason, cause)
}

// NewNotFoundError reports an unknown record id.
func NewNotFoundError(operation, reason string, cause error) *Error {
	return newError(KindNotFound, operation, reason, cause)
}

// NewConflictError reports a caller-supplied id that already exists.
func NewConflictError(operation, reason string, cause error) *Error {
	return newError(KindConflict, operation, reason, cause)
}

// NewPathError reports a dotted-path mutation that addressed a missing
// segment, a non-container, or an out-of-range index.
func NewPathError(operation, reason string, cause error) *Error {
	return newError(KindPathNotFound, operation, reason, cause)
}

// NewInternalError reports an unexpected failure.
func NewInternalError(operation, reason string, cause error) *Error {
	return newError(KindInternal, operation, reason, cause)
}

// KindOf extracts the failure classification from any error. Errors that are
// not resource errors classify as internal.
func KindOf(err error) Kind {
	var resourceErr *Error
	if errors.As(err, &resourceErr) {
		return resourceErr.Kind()
	}
	return KindInternal
}

// CodeOf extracts the dotted operation code, or an empty string for errors
// produced outside the resource services.
func CodeOf(err error) string {
	var resourceErr *Error
	if errors.As(err, &resourceErr) {
		return resourceErr.Code()
	}
	return ""
}
