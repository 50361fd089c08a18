// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the link-graph protocol. They are structural: each one
// reports a protocol violation, never a data condition.
var (
	// ErrMissingTarget indicates a link was finalized without a target.
	ErrMissingTarget = errors.New("core: link target missing")

	// ErrAlreadyEnded indicates a session was driven after it was finalized.
	ErrAlreadyEnded = errors.New("core: link session already ended")

	// ErrPendingLink indicates End was called while a key or target was set but not built.
	ErrPendingLink = errors.New("core: unfinished link pending")

	// ErrKeyAlreadySet indicates SetKey was called twice for the same link.
	ErrKeyAlreadySet = errors.New("core: link key already set")

	// ErrTargetAlreadySet indicates SetTarget was called twice for the same link.
	ErrTargetAlreadySet = errors.New("core: link target already set")

	// ErrUnsupportedQuery indicates a value's link-offering logic cannot honor a query shape.
	ErrUnsupportedQuery = errors.New("core: unsupported query")

	// ErrOther is matched by every OtherError.
	ErrOther = errors.New("core: other error")
)

// OtherError wraps an arbitrary failure met while producing a value
// (formatting, parsing, I/O of a lazily loaded source…).
type OtherError struct {
	Err error
}

// Wrap returns err as an OtherError, or nil for a nil err.
// Errors that already carry a structural kind are returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{ErrMissingTarget, ErrAlreadyEnded, ErrPendingLink,
		ErrKeyAlreadySet, ErrTargetAlreadySet, ErrUnsupportedQuery, ErrOther} {
		if errors.Is(err, kind) {
			return err
		}
	}

	return &OtherError{Err: err}
}

// Errorf formats a message and wraps it as an OtherError.
func Errorf(format string, args ...any) error {
	return &OtherError{Err: fmt.Errorf(format, args...)}
}

func (e *OtherError) Error() string {
	return "core: " + e.Err.Error()
}

func (e *OtherError) Unwrap() error { return e.Err }

// Is reports ErrOther as matching, so callers can branch on the kind.
func (e *OtherError) Is(target error) bool { return target == ErrOther }
