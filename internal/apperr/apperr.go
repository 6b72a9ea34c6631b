// Package apperr carries typed failures from the core to the request
// boundary, where they are translated once into a structured response.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	InvalidParameter Kind = "invalid_parameter"
	FileNotFound     Kind = "file_not_found"
	SectionNotFound  Kind = "section_not_found"
	ParseError       Kind = "parse_error"
)

// Error is a typed, human-readable failure.
type Error struct {
	Kind Kind
	Msg  string
	IDs  []string // missing section ids, set for SectionNotFound
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// MissingSections aggregates every absent id into a single error.
func MissingSections(ids []string) *Error {
	return &Error{
		Kind: SectionNotFound,
		Msg:  "sections not found: " + strings.Join(ids, ", "),
		IDs:  ids,
	}
}

// KindOf extracts the kind of err; untyped errors count as ParseError.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ParseError
}

// As is a convenience wrapper around errors.As for *Error.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
