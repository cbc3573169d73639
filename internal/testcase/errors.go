package testcase

import (
	"fmt"
)

// Kind classifies a store failure
type Kind int

const (
	KindCreateDir Kind = iota + 1
	KindRemove
	KindConflict
	KindWrite
	KindRead
	KindRename
	KindRegistration
	KindInvalidID
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindCreateDir:
		return "cannot create directory"
	case KindRemove:
		return "cannot remove"
	case KindConflict:
		return "already exists"
	case KindWrite:
		return "cannot write"
	case KindRead:
		return "cannot read"
	case KindRename:
		return "cannot rename"
	case KindRegistration:
		return "cannot update registration file"
	case KindInvalidID:
		return "invalid testcase id"
	case KindNotFound:
		return "testcase not found"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrCreateDir    = &Error{Kind: KindCreateDir}
	ErrRemove       = &Error{Kind: KindRemove}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrWrite        = &Error{Kind: KindWrite}
	ErrRead         = &Error{Kind: KindRead}
	ErrRename       = &Error{Kind: KindRename}
	ErrRegistration = &Error{Kind: KindRegistration}
	ErrInvalidID    = &Error{Kind: KindInvalidID}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

// Error is returned by every Store operation
type Error struct {
	Op   string // Operation, e.g. "addcase"
	Kind Kind
	Path string // Offending path or id
	Err  error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s `%s`", e.Op, e.Kind, e.Path)
	if e.Kind == KindConflict {
		msg = fmt.Sprintf("%s: `%s` %s", e.Op, e.Path, e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Path == "" && t.Err == nil
}

func newError(op string, kind Kind, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}
