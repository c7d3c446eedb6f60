// Package clock provides a cyclic minute-of-day time value.
//
// A Clock has no date. It wraps past midnight, and every comparison is made
// relative to a caller-supplied reference instant:
//
//	ref := clock.New(23, 50)
//	ref.MinutesTo(clock.New(0, 5)) // 15, not -1425
//
// RelativeOrder(ref) yields a comparator that sorts values by their forward
// distance from ref, so "the next event after ref" is always the minimum even
// when its nominal value is numerically smaller (e.g. just after midnight).
//
// Errors:
//
//	ErrBadFormat - Parse/UnmarshalText received something other than "HH:MM".
package clock
