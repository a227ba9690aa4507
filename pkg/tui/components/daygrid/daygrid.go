// Package daygrid renders one month block of day cells and registers each
// rendered day into the focus grid registry as it lays the block out.
package daygrid

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/focusgrid"
	"tableflip.dev/almanac/pkg/timeutil"
	"tableflip.dev/almanac/pkg/tui/theme"
)

const weekdayHeading = "Su Mo Tu We Th Fr Sa"

// Model renders the day cells of a single month.
type Model struct {
	block  int
	month  time.Time
	rng    daterange.Range
	styles theme.GridTheme
}

// New returns a day grid for the given block index.
func New(block int, th theme.GridTheme) Model {
	return Model{block: block, styles: th}
}

// Block returns the block index this grid renders.
func (m Model) Block() int { return m.block }

// Month returns the rendered month.
func (m Model) Month() time.Time { return m.month }

// SetMonth points the grid at a month.
func (m *Model) SetMonth(month time.Time) {
	m.month = timeutil.Normalize(month)
}

// SetRange supplies the active date window; out-of-range days render
// disabled.
func (m *Model) SetRange(r daterange.Range) { m.rng = r }

// Populate registers every rendered day of the month into reg at its
// (row, col) position. The registry must be sized for this block already.
// Padding positions are never registered.
func (m Model) Populate(reg *focusgrid.Registry) {
	if m.month.IsZero() {
		return
	}
	for day := 1; day <= timeutil.DaysIn(m.month); day++ {
		row, col, ok := timeutil.PositionOf(m.month, day)
		if !ok {
			continue
		}
		reg.Register(
			focusgrid.Position{Block: m.block, Row: row, Col: col},
			focusgrid.Cell{Date: m.month.AddDate(0, 0, day-1)},
		)
	}
}

// Context carries the per-frame state the grid renders against.
type Context struct {
	Focus    focusgrid.Position
	HasFocus bool
	Selected time.Time
	Now      time.Time
}

// View renders the weekday heading and the day rows. Every month renders
// the same number of rows so side-by-side blocks stay aligned.
func (m Model) View(ctx Context) string {
	if m.month.IsZero() {
		return ""
	}

	lines := []string{m.styles.Weekday.Render(weekdayHeading)}

	todayDay := 0
	if timeutil.SameMonth(m.month, ctx.Now) {
		todayDay = ctx.Now.Day()
	}
	selectedDay := 0
	if !ctx.Selected.IsZero() && timeutil.SameMonth(m.month, ctx.Selected) {
		selectedDay = ctx.Selected.Day()
	}

	for row := 0; row < timeutil.MaxRows; row++ {
		var cells []string
		for col := 0; col < timeutil.Columns; col++ {
			day := timeutil.DayAt(m.month, row, col)
			if day == 0 {
				cells = append(cells, m.styles.Padding.Render("  "))
				continue
			}
			cells = append(cells, m.renderDay(day, row, col, todayDay, selectedDay, ctx))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDay(day, row, col, todayDay, selectedDay int, ctx Context) string {
	text := fmt.Sprintf("%2d", day)
	date := m.month.AddDate(0, 0, day-1)

	style := m.styles.Day
	if !m.rng.ContainsDay(date) {
		style = m.styles.Disabled
	}
	if day == todayDay {
		style = style.Inherit(m.styles.Today)
	}
	if day == selectedDay {
		style = style.Inherit(m.styles.Selected)
	}
	if ctx.HasFocus && ctx.Focus.Block == m.block && ctx.Focus.Row == row && ctx.Focus.Col == col {
		style = style.Inherit(m.styles.Focused)
	}
	return style.Render(text)
}
