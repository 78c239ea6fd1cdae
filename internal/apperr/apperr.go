// Package apperr defines the error taxonomy shared by storage, actions,
// services and handlers. Handlers translate a Kind into an HTTP status.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified application error. Code identifies a named outcome
// such as "duplicate_email" and is what errors.Is compares.
type Error struct {
	Kind Kind
	Code string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error carrying the same non-empty Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

var (
	ErrNotFound           = &Error{Kind: KindNotFound, Code: "not_found", Msg: "not found"}
	ErrDuplicateEmail     = &Error{Kind: KindConflict, Code: "duplicate_email", Msg: "Email already exists"}
	ErrInvalidCredentials = &Error{Kind: KindValidation, Code: "invalid_credentials", Msg: "Invalid credentials"}
	ErrInvalidToken       = &Error{Kind: KindAuth, Code: "invalid_token", Msg: "Invalid or expired token"}
	ErrNoBudgetForMonth   = &Error{Kind: KindValidation, Code: "no_budget_for_month", Msg: "No budget set for month"}
)

// Validation returns a validation error with the given message.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Code: "invalid_input", Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns a not-found error naming the missing record.
func NotFound(what string) error {
	return &Error{Kind: KindNotFound, Code: ErrNotFound.Code, Msg: what + " not found"}
}

// NoBudgetForMonth reports that an expense was dated in a month without a budget.
func NoBudgetForMonth(month string) error {
	return &Error{Kind: KindValidation, Code: ErrNoBudgetForMonth.Code, Msg: "No budget set for month " + month}
}

// Conflict wraps a storage uniqueness failure.
func Conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Code: "conflict", Msg: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Message returns the public message of the first *Error in err's chain.
func Message(err error) (string, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Msg, true
	}
	return "", false
}
