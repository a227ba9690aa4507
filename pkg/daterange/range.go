// Package daterange decides whether months, days, and years fall inside an
// optional inclusive [Min, Max] date window.
package daterange

import (
	"time"

	"tableflip.dev/almanac/pkg/timeutil"
)

// Range is an optional inclusive date window. A zero bound is unbounded on
// that side, so the zero Range admits everything.
type Range struct {
	Min time.Time
	Max time.Time
}

// Unbounded is the range that admits every date.
var Unbounded = Range{}

// HasMin reports whether the lower bound is concrete.
func (r Range) HasMin() bool { return !r.Min.IsZero() }

// HasMax reports whether the upper bound is concrete.
func (r Range) HasMax() bool { return !r.Max.IsZero() }

// ContainsMonth reports whether any day of the candidate month can fall
// inside the range: the month's last day must not precede Min and its first
// day must not follow Max.
func (r Range) ContainsMonth(month time.Time) bool {
	if !timeutil.IsMonth(month) {
		return true
	}
	first := timeutil.Normalize(month)
	last := first.AddDate(0, 1, -1)
	if r.HasMin() && last.Before(timeutil.DateOnly(r.Min)) {
		return false
	}
	if r.HasMax() && first.After(timeutil.DateOnly(r.Max)) {
		return false
	}
	return true
}

// ContainsDay reports whether the given day falls inside the range, ignoring
// time of day.
func (r Range) ContainsDay(day time.Time) bool {
	if day.IsZero() {
		return true
	}
	d := timeutil.DateOnly(day)
	if r.HasMin() && d.Before(timeutil.DateOnly(r.Min)) {
		return false
	}
	if r.HasMax() && d.After(timeutil.DateOnly(r.Max)) {
		return false
	}
	return true
}

// ContainsYear reports whether any month of the given year is in range.
func (r Range) ContainsYear(year int) bool {
	if r.HasMin() && year < r.Min.Year() {
		return false
	}
	if r.HasMax() && year > r.Max.Year() {
		return false
	}
	return true
}

// YearBounds returns the inclusive year span the pickers may offer. Unbounded
// sides fall back to fallback's year widened by span years in that direction.
func (r Range) YearBounds(fallback time.Time, span int) (minYear, maxYear int) {
	minYear = fallback.Year() - span
	maxYear = fallback.Year() + span
	if r.HasMin() {
		minYear = r.Min.Year()
	}
	if r.HasMax() {
		maxYear = r.Max.Year()
	}
	if maxYear < minYear {
		maxYear = minYear
	}
	return minYear, maxYear
}
