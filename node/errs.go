package node

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissing         = errors.New("node not found")
	ErrNotAMap         = errors.New("not a map")
	ErrNotAnArray      = errors.New("not an array")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoSuchValue     = errors.New("no such value")
	ErrConversion      = errors.New("cannot convert value")
	ErrAmbiguousID     = errors.New("ambiguous id")
	ErrMalformedPath   = errors.New("malformed path")
)

// MissingNodeError is returned when a value is demanded from a Missing
// node. It matches both ErrMissing and ErrNoSuchValue.
type MissingNodeError struct {
	Path string
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("node not found: path=%s", e.Path)
}

func (e *MissingNodeError) Unwrap() []error {
	return []error{ErrMissing, ErrNoSuchValue}
}

type NotAMapError struct {
	Path string
	Kind Kind
}

func (e *NotAMapError) Error() string {
	return fmt.Sprintf("not a map: path=%s kind=%s", e.Path, e.Kind)
}

func (e *NotAMapError) Unwrap() error { return ErrNotAMap }

type NotAnArrayError struct {
	Path string
	Kind Kind
}

func (e *NotAnArrayError) Error() string {
	return fmt.Sprintf("not an array: path=%s kind=%s", e.Path, e.Kind)
}

func (e *NotAnArrayError) Unwrap() error { return ErrNotAnArray }

type IndexOutOfRangeError struct {
	Path  string
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: path=%s index=%d size=%d", e.Path, e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// NoSuchValueError is returned by scalar accessors applied to a node that
// is not a primitive.
type NoSuchValueError struct {
	Path string
	Kind Kind
	Want string
}

func (e *NoSuchValueError) Error() string {
	return fmt.Sprintf("no %s value: path=%s kind=%s", e.Want, e.Path, e.Kind)
}

func (e *NoSuchValueError) Unwrap() error { return ErrNoSuchValue }

// ConversionError is returned when a primitive cannot be coerced to the
// requested type, e.g. AsInt on "ten".
type ConversionError struct {
	Path  string
	Want  string
	Value any
	Err   error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %#v to %s: path=%s", e.Value, e.Want, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConversion}
	}
	return []error{ErrConversion, e.Err}
}

type AmbiguousIDError struct {
	Path    string
	ID      string
	Matches []string
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("ambiguous id %q: path=%s matches=[%s]", e.ID, e.Path, strings.Join(e.Matches, ", "))
}

func (e *AmbiguousIDError) Unwrap() error { return ErrAmbiguousID }

type MalformedPathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q at segment %q: %v", e.Path, e.Segment, e.Err)
}

func (e *MalformedPathError) Unwrap() []error {
	return []error{ErrMalformedPath, e.Err}
}
