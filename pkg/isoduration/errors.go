package isoduration

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports a string that does not follow the duration
	// grammar, including repeated or out-of-order designators.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedUnit reports a year or month designator. Those units have
	// no fixed length and cannot be converted to seconds.
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrOverflow reports a duration whose magnitude does not fit the target
	// type.
	ErrOverflow = errors.New("overflow")
)

type Kind string

const (
	KindMalformedInput  Kind = "malformed_input"
	KindUnsupportedUnit Kind = "unsupported_unit"
	KindOverflow        Kind = "overflow"
)

// KindOf returns the kind of a parse failure, or "" when err is not one.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return KindMalformedInput
	case errors.Is(err, ErrUnsupportedUnit):
		return KindUnsupportedUnit
	case errors.Is(err, ErrOverflow):
		return KindOverflow
	}
	return ""
}

// ErrorOf returns the sentinel error for kind, or nil if kind is unknown.
func ErrorOf(kind Kind) error {
	switch kind {
	case KindMalformedInput:
		return ErrMalformedInput
	case KindUnsupportedUnit:
		return ErrUnsupportedUnit
	case KindOverflow:
		return ErrOverflow
	}
	return nil
}

// ParseError describes why a string could not be parsed as a duration.
type ParseError struct {
	Input  string
	Offset int    // byte offset of Token in Input
	Token  string // offending substring, empty when the whole input is at fault
	Reason string
	Err    error // ErrMalformedInput, ErrUnsupportedUnit or ErrOverflow
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("isoduration: cannot parse %q: %v: %s", e.Input, e.Err, e.Reason)
	if e.Token != "" {
		msg += fmt.Sprintf(" (at %q)", e.Token)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
