package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so the boundary layer can translate it.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindIntegrity
	KindAttestation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity"
	case KindAttestation:
		return "attestation"
	default:
		return "internal"
	}
}

// Error is the typed error returned by every core operation.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the bare sentinels below by kind, so errors.Is(err, ErrConflict)
// holds for any conflict.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Msg != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound    = &Error{Kind: KindNotFound}
	ErrConflict    = &Error{Kind: KindConflict}
	ErrValidation  = &Error{Kind: KindValidation}
	ErrIntegrity   = &Error{Kind: KindIntegrity}
	ErrAttestation = &Error{Kind: KindAttestation}
	ErrInternal    = &Error{Kind: KindInternal}
)

func newError(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error    { return newError(KindNotFound, format, args...) }
func Conflict(format string, args ...any) error    { return newError(KindConflict, format, args...) }
func Invalid(format string, args ...any) error     { return newError(KindValidation, format, args...) }
func Integrity(format string, args ...any) error   { return newError(KindIntegrity, format, args...) }
func Attestation(format string, args ...any) error { return newError(KindAttestation, format, args...) }

// Internal wraps a failure of a subsystem (signing, storage) whose detail must
// not reach the caller.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf reports the kind of err, KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
