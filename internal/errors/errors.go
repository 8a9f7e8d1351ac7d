// Package errors provides the structured error type used across report
// generation. Every error that leaves the pipeline carries a Kind so callers
// can tell a bad project configuration from a bad input file, a layout
// failure or a failed write.
//
// Import it as rerr to avoid shadowing the standard library package.
package errors

import (
	stderrs "errors"
	"fmt"
)

// Kind classifies an error by the stage that produced it.
type Kind uint8

const (
	// KindUnknown is for unclassified errors
	KindUnknown Kind = iota

	// KindConfig is for malformed or contradictory project configuration
	KindConfig

	// KindInput is for unreadable or malformed input rows
	KindInput

	// KindLayout is for workbook layout invariant violations
	KindLayout

	// KindPersistence is for failures writing the output artifact
	KindPersistence
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	case KindLayout:
		return "layout"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// ExitCode maps a Kind to the process exit status used by the CLI.
func ExitCode(k Kind) int {
	switch k {
	case KindConfig:
		return 3
	case KindInput:
		return 4
	case KindLayout:
		return 5
	case KindPersistence:
		return 6
	default:
		return 1
	}
}

// Error is the structured error type.
// msg is human facing; kind is machine facing; field names the offending
// config field or input column; op tags the operation; orig is the cause.
type Error struct {
	orig  error
	msg   string
	kind  Kind
	field string
	op    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Kind returns the error kind
func (e *Error) Kind() Kind { return e.kind }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf extracts the Kind from any error, defaulting to KindUnknown
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.kind
	}
	return KindUnknown
}

// IsKind reports whether err has the given kind
func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error. Foreign errors are returned unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error. Foreign errors are returned unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given kind and message
func New(kind Kind, msg string) error { return &Error{kind: kind, msg: msg} }

// Newf returns a new *Error with kind and formatted message
func Newf(kind Kind, format string, a ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with kind and message
func Wrap(orig error, kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with kind and formatted message
func Wrapf(orig error, kind Kind, format string, a ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil
func WrapIf(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, kind, msg)
}

// Sugar

// Configf returns a configuration error
func Configf(format string, a ...any) error { return Newf(KindConfig, format, a...) }

// Inputf returns an input-data error
func Inputf(format string, a ...any) error { return Newf(KindInput, format, a...) }

// Layoutf returns a layout error
func Layoutf(format string, a ...any) error { return Newf(KindLayout, format, a...) }

// List joins several messages under one error of the given kind.
func List(kind Kind, header string, errs []error) error {
	msg := fmt.Sprintf("%s (%d errors):", header, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &Error{kind: kind, msg: msg}
}
