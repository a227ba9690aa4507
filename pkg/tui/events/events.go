// Package events defines the cross-component messages of the picker UI.
package events

import (
	"fmt"
	"time"

	"tableflip.dev/almanac/pkg/level"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// MonthChangedMsg announces a new focal month after window navigation or a
// picker commit.
type MonthChangedMsg struct {
	Component ComponentID
	Month     time.Time
}

// Describe renders the change in a human-friendly format for logs.
func (m MonthChangedMsg) Describe() string {
	return fmt.Sprintf("month:%q", m.Month.Format("2006-01"))
}

// DateSelectedMsg is emitted when the user commits a day cell.
type DateSelectedMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe renders the selection in a human-friendly format for logs.
func (m DateSelectedMsg) Describe() string {
	return fmt.Sprintf("date:%q", m.Date.Format("2006-01-02"))
}

// LevelChangedMsg announces a selection level transition.
type LevelChangedMsg struct {
	Component ComponentID
	Level     level.Level
}

// Describe renders the transition in a human-friendly format for logs.
func (m LevelChangedMsg) Describe() string {
	return fmt.Sprintf("level:%q", m.Level)
}

// YearChosenMsg is emitted by the year picker when a year is activated.
type YearChosenMsg struct {
	Component ComponentID
	Year      int
}

// MonthChosenMsg is emitted by the month picker when a month is activated.
type MonthChosenMsg struct {
	Component ComponentID
	Year      int
	Month     time.Month
}
