package homework

import (
	"errors"
	"fmt"
)

// Kind classifies recoverable failures of a poll cycle.
type Kind int

const (
	KindFetch Kind = iota + 1
	KindShape
	KindMissingField
	KindEmptyResult
	KindUnknownStatus
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindShape:
		return "shape"
	case KindMissingField:
		return "missing_field"
	case KindEmptyResult:
		return "empty_result"
	case KindUnknownStatus:
		return "unknown_status"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; matching compares kinds only.
var (
	ErrFetch         = &Error{Kind: KindFetch}
	ErrShape         = &Error{Kind: KindShape}
	ErrMissingField  = &Error{Kind: KindMissingField}
	ErrEmptyResult   = &Error{Kind: KindEmptyResult}
	ErrUnknownStatus = &Error{Kind: KindUnknownStatus}
	ErrDelivery      = &Error{Kind: KindDelivery}
)

// Error is a classified failure. Msg is user-facing and ends up in the chat.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// NewError builds an Error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error around a cause.
func WrapError(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
