// Package level implements the selection granularity state machine of the
// picker: browsing days, choosing a month, or choosing a year.
package level

import "time"

// Level is the active selection granularity. Exactly one level is active at
// a time.
type Level int

const (
	// Date is the day-browsing level showing the month blocks.
	Date Level = iota
	// Month shows the month picker for the year under the cursor.
	Month
	// Year shows the year picker.
	Year
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case Date:
		return "date"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// CommitFunc applies a chosen (year, month) pair back to the focal value
// when the machine drops from Month to Date.
type CommitFunc func(year int, month time.Month)

// Machine drives the level transitions. Transitions outside the table are
// no-ops; the machine has no terminal state.
//
//	date  --RequestLevelUp--> year   (only when allowChange)
//	year  --ChooseYear(y)---> month  (cursor := y)
//	month --ChooseMonth(y,m)-> date  (commit(y, m))
//	month --RequestLevelUp--> year
type Machine struct {
	current     Level
	allowChange bool
	yearCursor  int
	commit      CommitFunc
}

// NewMachine builds a machine starting at initial. The year cursor is seeded
// from seedYear, usually the focal month's year. When allowChange is false
// the machine is locked to the Date level for its whole lifetime.
func NewMachine(initial Level, allowChange bool, seedYear int, commit CommitFunc) *Machine {
	if !allowChange {
		initial = Date
	}
	return &Machine{
		current:     initial,
		allowChange: allowChange,
		yearCursor:  seedYear,
		commit:      commit,
	}
}

// Current returns the active level.
func (m *Machine) Current() Level { return m.current }

// AllowsChange reports whether level transitions are enabled at all.
func (m *Machine) AllowsChange() bool { return m.allowChange }

// YearCursor returns the year pre-seeding the pickers.
func (m *Machine) YearCursor() int { return m.yearCursor }

// SeedYear repositions the year cursor, typically after the focal month
// moved while at the Date level.
func (m *Machine) SeedYear(year int) { m.yearCursor = year }

// RequestLevelUp moves Date→Year or Month→Year. It reports whether the
// level changed.
func (m *Machine) RequestLevelUp() bool {
	switch m.current {
	case Date:
		if !m.allowChange {
			return false
		}
		m.current = Year
		return true
	case Month:
		m.current = Year
		return true
	}
	return false
}

// ChooseYear moves Year→Month, capturing the chosen year in the cursor. It
// reports whether the transition applied.
func (m *Machine) ChooseYear(year int) bool {
	if m.current != Year {
		return false
	}
	m.yearCursor = year
	m.current = Month
	return true
}

// ChooseMonth moves Month→Date and commits the chosen month as the new focal
// value. It reports whether the transition applied.
func (m *Machine) ChooseMonth(year int, month time.Month) bool {
	if m.current != Month {
		return false
	}
	m.yearCursor = year
	m.current = Date
	if m.commit != nil {
		m.commit(year, month)
	}
	return true
}
