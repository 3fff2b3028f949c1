// Package domain holds the ticketing aggregates and the error
// vocabulary shared by services, repositories and handlers.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is a stable machine-readable error category. Handlers map kinds
// to HTTP statuses; clients branch on them.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindForbidden        Kind = "forbidden"
	KindValidation       Kind = "validation_error"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindConflict         Kind = "conflict"
	KindInvalidCode      Kind = "invalid_code"
	KindAlreadyUsed      Kind = "already_used"
	KindInternal         Kind = "internal_error"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Invalid(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func CapacityExceeded(msg string) *Error {
	return &Error{Kind: KindCapacityExceeded, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func InvalidCode(msg string) *Error {
	return &Error{Kind: KindInvalidCode, Message: msg}
}

func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// AlreadyUsedError rejects a check-in for a ticket that was already
// redeemed, carrying the prior redemption so gate staff can tell a
// stale rescan from a forged code.
type AlreadyUsedError struct {
	CheckedInAt time.Time
	CheckedInBy uuid.UUID
}

func (e *AlreadyUsedError) Error() string {
	return fmt.Sprintf("%s: ticket was checked in at %s", KindAlreadyUsed, e.CheckedInAt.Format(time.RFC3339))
}

// ErrDuplicateCode signals a ticket code collision against the unique
// constraint. Issuance retries with fresh codes; it never reaches the API.
var ErrDuplicateCode = errors.New("duplicate ticket code")

// KindOf classifies any error into a Kind, defaulting to internal.
func KindOf(err error) Kind {
	var used *AlreadyUsedError
	if errors.As(err, &used) {
		return KindAlreadyUsed
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
