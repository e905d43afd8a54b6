package node

import (
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

// The ...Or helpers return def when n is Missing and the plain accessor
// result otherwise. A node that is present but of the wrong variant
// still fails: a default covers absence, not a structural mistake.

func IntOr(n Node, def int) (int, error) {
	if n.IsMissing() {
		return def, nil
	}
	return n.AsInt()
}

func Int64Or(n Node, def int64) (int64, error) {
	if n.IsMissing() {
		return def, nil
	}
	return n.AsInt64()
}

func Float64Or(n Node, def float64) (float64, error) {
	if n.IsMissing() {
		return def, nil
	}
	return n.AsFloat64()
}

func BoolOr(n Node, def bool) (bool, error) {
	if n.IsMissing() {
		return def, nil
	}
	return n.AsBool()
}

func StringOr(n Node, def string) (string, error) {
	if n.IsMissing() {
		return def, nil
	}
	return n.AsString()
}

// scalar returns the primitive value of n, failing with the Missing
// node's own error or with NoSuchValueError for maps and arrays.
func scalar(n Node, want string) (any, error) {
	if n.IsMissing() {
		return n.Value()
	}
	if !n.IsPrimitive() {
		return nil, &NoSuchValueError{Path: n.Path(), Kind: n.Kind(), Want: want}
	}
	return n.Value()
}

// Duration reads a primitive as a duration. Numbers are milliseconds,
// strings are parsed by ParseDuration after variable substitution.
func Duration(n Node) (time.Duration, error) {
	v, err := scalar(n, "duration")
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		d, err := intMillis(x)
		if err != nil {
			return 0, &ConversionError{Path: n.Path(), Want: "duration", Value: x, Err: err}
		}
		return d, nil
	case float64:
		d, err := floatMillis(x)
		if err != nil {
			return 0, &ConversionError{Path: n.Path(), Want: "duration", Value: x, Err: err}
		}
		return d, nil
	case string:
		s, err := n.AsString()
		if err != nil {
			return 0, err
		}
		d, err := ParseDuration(s)
		if err != nil {
			return 0, &ConversionError{Path: n.Path(), Want: "duration", Value: x, Err: err}
		}
		return d, nil
	default:
		return 0, &ConversionError{Path: n.Path(), Want: "duration", Value: v}
	}
}

func DurationOr(n Node, def time.Duration) (time.Duration, error) {
	if n.IsMissing() {
		return def, nil
	}
	return Duration(n)
}

// DurationStringOr is DurationOr with the default written as text.
func DurationStringOr(n Node, def string) (time.Duration, error) {
	if n.IsMissing() {
		d, err := ParseDuration(def)
		if err != nil {
			return 0, &ConversionError{Path: n.Path(), Want: "duration", Value: def, Err: err}
		}
		return d, nil
	}
	return Duration(n)
}

// File reads a string primitive as a cleaned file path.
func File(n Node) (string, error) {
	s, err := n.AsString()
	if err != nil {
		return "", err
	}
	return filepath.Clean(s), nil
}

func FileOr(n Node, def string) (string, error) {
	if n.IsMissing() {
		return def, nil
	}
	return File(n)
}

// ByteSize reads a primitive as a number of bytes. Numbers are taken as
// is; strings may carry SI or IEC units ("512KiB", "10 MB").
func ByteSize(n Node) (uint64, error) {
	v, err := scalar(n, "byte size")
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		if x < 0 {
			return 0, &ConversionError{Path: n.Path(), Want: "byte size", Value: v}
		}
		return uint64(x), nil
	case string:
		s, err := n.AsString()
		if err != nil {
			return 0, err
		}
		b, err := humanize.ParseBytes(s)
		if err != nil {
			return 0, &ConversionError{Path: n.Path(), Want: "byte size", Value: x, Err: err}
		}
		return b, nil
	default:
		return 0, &ConversionError{Path: n.Path(), Want: "byte size", Value: v}
	}
}

func ByteSizeOr(n Node, def uint64) (uint64, error) {
	if n.IsMissing() {
		return def, nil
	}
	return ByteSize(n)
}

// Elements returns the elements of an array node.
func Elements(n Node) ([]Node, error) {
	sz, err := n.Size()
	if err != nil {
		return nil, err
	}
	res := make([]Node, sz)
	for i := range res {
		res[i], err = n.Index(i)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func elementsAs[T any](n Node, as func(Node) (T, error)) ([]T, error) {
	elts, err := Elements(n)
	if err != nil {
		return nil, err
	}
	res := make([]T, len(elts))
	for i, e := range elts {
		res[i], err = as(e)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Ints, Int64s, Float64s, Bools and Strings convert every element of an
// array node.

func Ints(n Node) ([]int, error) {
	return elementsAs(n, Node.AsInt)
}

func Int64s(n Node) ([]int64, error) {
	return elementsAs(n, Node.AsInt64)
}

func Float64s(n Node) ([]float64, error) {
	return elementsAs(n, Node.AsFloat64)
}

func Bools(n Node) ([]bool, error) {
	return elementsAs(n, Node.AsBool)
}

func Strings(n Node) ([]string, error) {
	return elementsAs(n, Node.AsString)
}
