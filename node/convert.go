package node

import (
	"math"
	"strconv"
	"strings"
)

// The Conv functions coerce a primitive scalar (string, int64, float64
// or bool, as returned by Value) to a Go type. Node implementations use
// them so every backing store converts the same way. Fractional numbers
// are truncated toward zero when an integer is asked for; strings are
// parsed.

func ConvInt64(path string, v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if math.IsNaN(x) || x >= 1<<63 || x < -(1<<63) {
			return 0, &ConversionError{Path: path, Want: "int64", Value: v}
		}
		return int64(x), nil
	case string:
		s := strings.TrimSpace(x)
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return i, nil
		}
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, &ConversionError{Path: path, Want: "int64", Value: v, Err: err}
		}
		return ConvInt64(path, f)
	default:
		return 0, &ConversionError{Path: path, Want: "int64", Value: v}
	}
}

func ConvInt(path string, v any) (int, error) {
	i, err := ConvInt64(path, v)
	if err != nil {
		return 0, err
	}
	if i > math.MaxInt || i < math.MinInt {
		return 0, &ConversionError{Path: path, Want: "int", Value: v}
	}
	return int(i), nil
}

func ConvFloat64(path string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &ConversionError{Path: path, Want: "float64", Value: v, Err: err}
		}
		return f, nil
	default:
		return 0, &ConversionError{Path: path, Want: "float64", Value: v}
	}
}

func ConvBool(path string, v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, &ConversionError{Path: path, Want: "bool", Value: v, Err: err}
		}
		return b, nil
	default:
		return false, &ConversionError{Path: path, Want: "bool", Value: v}
	}
}

// ConvString renders a scalar as text without variable substitution.
func ConvString(path string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		return "", &ConversionError{Path: path, Want: "string", Value: v}
	}
}
