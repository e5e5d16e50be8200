// Package apperr defines the closed set of error kinds the HTTP layer knows
// how to translate. Anything outside this set is treated as an internal error.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindInvalidCredentials
	KindConflict
	KindForbidden
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) error         { return &Error{Kind: KindValidation, Msg: msg} }
func Authentication(msg string) error     { return &Error{Kind: KindAuthentication, Msg: msg} }
func InvalidCredentials(msg string) error { return &Error{Kind: KindInvalidCredentials, Msg: msg} }
func Conflict(msg string) error           { return &Error{Kind: KindConflict, Msg: msg} }
func Forbidden(msg string) error          { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error           { return &Error{Kind: KindNotFound, Msg: msg} }

// KindOf reports the kind of err, or KindUnknown when err does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
