package service

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is; the transport layer maps each
// one to an HTTP status.
var (
	// ErrNotFound: the id (or the precondition "something exists") is absent.
	ErrNotFound = errors.New("not found")
	// ErrNoData: a query legitimately matched zero rows.
	ErrNoData = errors.New("no data available")
	// ErrDuplicateEmail: the email is already taken.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// Error is a business-rule rejection. Error() is the message shown to
// the client; Unwrap() exposes the kind.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}
