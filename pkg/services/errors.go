// Package services implements the collaborator façades the state core's
// middleware calls: users, logs, reminders, notifications, and analytics.
package services

import (
	"errors"

	"tableflip.dev/vita/pkg/store"
)

// Reason is a machine-readable tag on a service error. Only not-found is ever
// branched on (a missing remote user record invalidates the local bookmark);
// everything else renders the message.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonNotFound Reason = "not-found"
)

// Error is the single error value services return: a human-readable message,
// an optional wrapped cause, and an optional reason tag.
type Error struct {
	Msg    string
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap converts an arbitrary failure into a service Error, tagging storage
// not-found errors on the way through.
func wrap(msg string, err error) *Error {
	reason := ReasonNone
	if errors.Is(err, store.ErrNotFound) {
		reason = ReasonNotFound
	}
	return &Error{Msg: msg, Reason: reason, Err: err}
}

func notFound(msg string) *Error {
	return &Error{Msg: msg, Reason: ReasonNotFound, Err: store.ErrNotFound}
}

func invalid(msg string, err error) *Error {
	return &Error{Msg: msg, Err: err}
}

// IsNotFound reports whether the error carries the not-found reason.
func IsNotFound(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Reason == ReasonNotFound
	}
	return errors.Is(err, store.ErrNotFound)
}
