// Package clock lets pricing and advice rules ask for "now" without reading the wall clock directly.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System reads the wall clock.
func System() Clock { return systemClock{} }

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

// Fixed always returns t.
func Fixed(t time.Time) Clock { return fixedClock(t) }

// FixedYear returns a clock pinned to mid-year of year.
func FixedYear(year int) Clock {
	return fixedClock(time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC))
}

// Year returns the current calendar year of c, falling back to the wall clock when c is nil.
func Year(c Clock) int {
	if c == nil {
		return time.Now().Year()
	}
	return c.Now().Year()
}
