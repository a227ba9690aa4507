// Package timeutil provides the calendar month arithmetic shared across the
// planner, pickers, and rendering components.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Columns is the number of weekday columns in a month grid.
const Columns = 7

// MaxRows is the largest number of week rows a month can occupy.
const MaxRows = 6

// Normalize truncates t to the first day of its month.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// IsMonth reports whether t is a usable month value. The zero time is the
// one reserved "no value" marker throughout this module.
func IsMonth(t time.Time) bool {
	return !t.IsZero()
}

// AddMonths returns month advanced by n whole months, normalized to the
// first day.
func AddMonths(month time.Time, n int) time.Time {
	m := Normalize(month)
	return m.AddDate(0, n, 0)
}

// DaysIn returns the number of days in month.
func DaysIn(month time.Time) int {
	first := Normalize(month)
	return first.AddDate(0, 1, -1).Day()
}

// StartWeekday returns the weekday of the first day of month. Grids are laid
// out Sunday-first, so this doubles as the leading pad width.
func StartWeekday(month time.Time) time.Weekday {
	return Normalize(month).Weekday()
}

// Rows returns the number of week rows needed to lay out month with
// Sunday-first columns.
func Rows(month time.Time) int {
	offset := int(StartWeekday(month))
	return (offset + DaysIn(month) + Columns - 1) / Columns
}

// DayAt resolves a (row, col) grid position to a day number within month, or
// 0 when the position is leading/trailing padding.
func DayAt(month time.Time, row, col int) int {
	if row < 0 || col < 0 || col >= Columns {
		return 0
	}
	day := row*Columns + col - int(StartWeekday(month)) + 1
	if day < 1 || day > DaysIn(month) {
		return 0
	}
	return day
}

// PositionOf returns the (row, col) grid position of a day number within
// month. Days outside the month report ok=false.
func PositionOf(month time.Time, day int) (row, col int, ok bool) {
	if day < 1 || day > DaysIn(month) {
		return 0, 0, false
	}
	idx := int(StartWeekday(month)) + day - 1
	return idx / Columns, idx % Columns, true
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DateOnly truncates t to midnight, dropping the clock portion so day
// comparisons ignore time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseMonth accepts "2006-01" or "January 2006" month values.
func ParseMonth(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty month value")
	}
	if t, err := time.Parse("2006-01", trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse("January 2006", trimmed); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid month value %q", trimmed)
}

// ParseDate accepts "2006-01-02" or "January 2, 2006" date values.
func ParseDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	if t, err := time.Parse("2006-01-02", trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse("January 2, 2006", trimmed); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date value %q", trimmed)
}
