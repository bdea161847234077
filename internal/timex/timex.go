// Package timex holds small time helpers shared by configuration and the
// token issuer: a JSON-friendly Duration and the "<n><unit>" lifetime format.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDurationFormat is returned for lifetimes that do not match
// "<integer><unit>" with unit one of s, m, h, d.
var ErrInvalidDurationFormat = errors.New("invalid duration format")

var lifetimePattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseLifetime converts expressions such as "30s", "15m", "12h" or "7d"
// into a time.Duration.
func ParseLifetime(s string) (time.Duration, error) {
	m := lifetimePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationFormat, s)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationFormat, s)
	}

	var unit time.Duration
	switch m[2] {
	case "s":
		unit = time.Second
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	}

	if n > int64(1<<63-1)/int64(unit) {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDurationFormat, s)
	}

	return time.Duration(n) * unit, nil
}

// ExpiryDate returns now plus the parsed lifetime.
func ExpiryDate(now time.Time, lifetime string) (time.Time, error) {
	d, err := ParseLifetime(lifetime)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}

// Duration wraps time.Duration for JSON configuration files. It accepts
// Go duration strings ("90s", "1h30m"), lifetime strings ("7d") and
// integer nanoseconds.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		if parsed, err := time.ParseDuration(value); err == nil {
			d.Duration = parsed
			return nil
		}
		parsed, err := ParseLifetime(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
