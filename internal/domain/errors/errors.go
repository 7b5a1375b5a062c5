// Package errors defines storage sentinels and the closed set of API-visible
// domain errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Storage level conditions. Repositories return these; the use case layer
// translates them into *Error values.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Kind enumerates every domain error variant the API can report.
type Kind int

const (
	KindValidationFailed Kind = iota + 1
	KindUserNotFound
	KindUserDataDuplicated
)

// Status returns the HTTP status code bound to the variant.
func (k Kind) Status() int {
	switch k {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindUserNotFound:
		return http.StatusNotFound
	case KindUserDataDuplicated:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the errorCode tag written in error responses.
func (k Kind) Code() string {
	switch k {
	case KindValidationFailed:
		return "BadRequest"
	case KindUserNotFound:
		return "UserNotFound"
	case KindUserDataDuplicated:
		return "UserDataDuplicated"
	default:
		return "InternalServerError"
	}
}

func (k Kind) String() string { return k.Code() }

// FieldViolation describes a single rejected request field.
type FieldViolation struct {
	ObjectName     string
	Field          string
	RejectedValue  any
	DefaultMessage string
	Code           string
}

// Error is a domain error carrying its variant and a human readable message.
type Error struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
}

func (e *Error) Error() string { return e.Message }

// Is reports whether target is a domain error of the same kind, so that
// errors.Is(err, ErrUserNotFound) matches any not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Reference values for errors.Is checks.
var (
	ErrValidationFailed   = &Error{Kind: KindValidationFailed, Message: "validation failed"}
	ErrUserNotFound       = &Error{Kind: KindUserNotFound, Message: "user not found"}
	ErrUserDataDuplicated = &Error{Kind: KindUserDataDuplicated, Message: duplicatedMessage}
)

const duplicatedMessage = "username and/or email already exists"

// UserNotFound builds a not-found error with a formatted message.
func UserNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindUserNotFound, Message: fmt.Sprintf(format, args...)}
}

// UserDataDuplicated builds the error returned when a save violates the
// username or email uniqueness.
func UserDataDuplicated() *Error {
	return &Error{Kind: KindUserDataDuplicated, Message: duplicatedMessage}
}

// ValidationFailed builds a validation error for the named request object.
func ValidationFailed(objectName string, violations []FieldViolation) *Error {
	return &Error{
		Kind:       KindValidationFailed,
		Message:    fmt.Sprintf("Validation failed for object='%s'. Error count: %d", objectName, len(violations)),
		Violations: violations,
	}
}

// As extracts the domain error from err, if any.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}
