// File: clock.go
// Role: Clock value type, wraparound arithmetic and relative ordering.
// Determinism:
//   - All operations are pure; Clock is a comparable value type.

package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerHour is the number of minutes in one hour.
	MinutesPerHour = 60

	// MinutesPerDay is the length of the cycle; every Clock lies in [0, MinutesPerDay).
	MinutesPerDay = 24 * MinutesPerHour
)

// ErrBadFormat indicates a textual clock that is not of the form "HH:MM".
var ErrBadFormat = errors.New("clock: malformed time, want HH:MM")

// Midnight is 00:00.
var Midnight = Clock{}

// Clock is a minute of the day in [0, 1439].
// The zero value is Midnight.
type Clock struct {
	min int
}

// wrap maps any integer onto [0, MinutesPerDay), including negatives.
func wrap(n int) int {
	n %= MinutesPerDay
	if n < 0 {
		n += MinutesPerDay
	}
	return n
}

// New returns hours:minutes wrapped into a single day.
// New(25, 0) is 01:00, New(0, -5) is 23:55.
func New(hours, minutes int) Clock {
	return Clock{min: wrap(hours*MinutesPerHour + minutes)}
}

// FromMinutes returns the clock n minutes after midnight, wrapped into a day.
func FromMinutes(n int) Clock {
	return Clock{min: wrap(n)}
}

// Parse reads "HH:MM" (or "H:MM"). Hours beyond 23 wrap, which lets
// schedules written as "24:10" or "25:30" for after-midnight service parse.
// Minutes must lie in [0, 59].
func Parse(s string) (Clock, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || hs == "" || len(ms) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m >= MinutesPerHour {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	return New(h, m), nil
}

// MustParse is Parse that panics on error. Intended for tests and fixtures.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Minutes returns the minutes since midnight in [0, 1439].
func (c Clock) Minutes() int { return c.min }

// Hour returns the hour component in [0, 23].
func (c Clock) Hour() int { return c.min / MinutesPerHour }

// Minute returns the minute component in [0, 59].
func (c Clock) Minute() int { return c.min % MinutesPerHour }

// MinutesTo returns the cyclic forward distance from c to other in [0, 1439].
// other is treated as occurring at or after c, wrapping past midnight when
// needed; c.MinutesTo(c) == 0.
func (c Clock) MinutesTo(other Clock) int {
	return wrap(other.min - c.min)
}

// Later returns c advanced by the given offset, wrapped modulo a day.
// Negative offsets move backwards.
func (c Clock) Later(hours, minutes int) Clock {
	return Clock{min: wrap(c.min + hours*MinutesPerHour + minutes)}
}

// Compare orders a and b by their forward distance from ref.
// It returns -1, 0 or +1.
func Compare(ref, a, b Clock) int {
	da, db := ref.MinutesTo(a), ref.MinutesTo(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// RelativeOrder returns a comparator sorting clocks by ref.MinutesTo(x)
// ascending. The result is a total order for a fixed ref.
func (ref Clock) RelativeOrder() func(a, b Clock) int {
	return func(a, b Clock) int { return Compare(ref, a, b) }
}

// String formats c as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
