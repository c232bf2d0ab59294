// Package apperr classifies failures so the HTTP boundary can answer with a
// status code and a stable error code instead of a bare message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindUnavailable
)

var kindInfo = map[Kind]struct {
	code   string
	status int
}{
	KindInternal:     {"INTERNAL_ERROR", http.StatusInternalServerError},
	KindValidation:   {"INVALID_INPUT", http.StatusBadRequest},
	KindNotFound:     {"NOT_FOUND", http.StatusNotFound},
	KindConflict:     {"CONFLICT", http.StatusConflict},
	KindUnauthorized: {"UNAUTHORIZED", http.StatusUnauthorized},
	KindForbidden:    {"FORBIDDEN", http.StatusForbidden},
	KindUnavailable:  {"STORE_UNAVAILABLE", http.StatusServiceUnavailable},
}

func (k Kind) Code() string { return kindInfo[k].code }

func (k Kind) Status() int { return kindInfo[k].status }

func (k Kind) String() string { return k.Code() }

// Error is a classified failure. Message is safe to show to callers; Err
// keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-facing message for err. Unclassified errors get
// a generic message so driver details do not leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
