package node

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var durationUnits = map[string]time.Duration{
	"ns":      time.Nanosecond,
	"us":      time.Microsecond,
	"µs":      time.Microsecond,
	"ms":      time.Millisecond,
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       24 * time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
}

// ParseDuration parses durations such as "500ms", "10s", "1h30m",
// "2 days" or "1.5h". A bare number is a count of milliseconds.
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		d, err := intMillis(ms)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", orig, err)
		}
		return d, nil
	}
	if ms, err := strconv.ParseFloat(s, 64); err == nil {
		d, err := floatMillis(ms)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", orig, err)
		}
		return d, nil
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("invalid duration %q", orig)
	}
	var total float64
	for s != "" {
		i := 0
		for i < len(s) && (s[i] == '.' || ('0' <= s[i] && s[i] <= '9')) {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("invalid duration %q", orig)
		}
		num, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", orig, err)
		}
		s = strings.TrimLeft(s[i:], " \t")
		j := 0
		for j < len(s) && s[j] != '.' && (s[j] < '0' || s[j] > '9') && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		unit, ok := durationUnits[strings.ToLower(s[:j])]
		if !ok {
			return 0, fmt.Errorf("invalid duration %q: unknown unit %q", orig, s[:j])
		}
		total += num * float64(unit)
		s = strings.TrimLeft(s[j:], " \t")
	}
	if total >= 1<<63 {
		return 0, fmt.Errorf("invalid duration %q: overflow", orig)
	}
	if neg {
		total = -total
	}
	return time.Duration(total), nil
}

var errDurationRange = errors.New("duration out of range")

// intMillis and floatMillis convert a count of milliseconds, failing
// when the result does not fit a time.Duration.
func intMillis(ms int64) (time.Duration, error) {
	const lim = math.MaxInt64 / int64(time.Millisecond)
	if ms > lim || ms < -lim {
		return 0, errDurationRange
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func floatMillis(ms float64) (time.Duration, error) {
	ns := ms * float64(time.Millisecond)
	if math.IsNaN(ns) || ns >= 1<<63 || ns < -(1<<63) {
		return 0, errDurationRange
	}
	return time.Duration(ns), nil
}
