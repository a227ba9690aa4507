// Package yearpicker is the year selection grid shown at the "year" level.
// It emits a YearChosenMsg when a year is activated; the host decides what a
// chosen year means.
package yearpicker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/tui/events"
	"tableflip.dev/almanac/pkg/tui/theme"
)

const (
	columns = 4
	rows    = 3
	// PageSize is the number of years shown at once.
	PageSize = columns * rows
)

// ID identifies this component in emitted events.
const ID events.ComponentID = "yearpicker"

// Model is the year grid.
type Model struct {
	minYear int
	maxYear int
	cursor  int
	current int
	rng     daterange.Range
	styles  theme.PickerTheme
}

// New returns a picker offering minYear..maxYear inclusive, with the cursor
// on seed. current marks the year of the focal month.
func New(minYear, maxYear, seed int, rng daterange.Range, th theme.PickerTheme) Model {
	if maxYear < minYear {
		maxYear = minYear
	}
	m := Model{minYear: minYear, maxYear: maxYear, current: seed, rng: rng, styles: th}
	m.cursor = clamp(seed, minYear, maxYear)
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cursor returns the year under the cursor.
func (m Model) Cursor() int { return m.cursor }

// Seed repositions the cursor, clamped to the offered span.
func (m *Model) Seed(year int) {
	m.cursor = clamp(year, m.minYear, m.maxYear)
	m.current = year
}

// Update handles key input. Activating an out-of-range year is a no-op.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.cursor = clamp(m.cursor-1, m.minYear, m.maxYear)
	case "right", "l":
		m.cursor = clamp(m.cursor+1, m.minYear, m.maxYear)
	case "up", "k":
		m.cursor = clamp(m.cursor-columns, m.minYear, m.maxYear)
	case "down", "j":
		m.cursor = clamp(m.cursor+columns, m.minYear, m.maxYear)
	case "pgup":
		m.cursor = clamp(m.cursor-PageSize, m.minYear, m.maxYear)
	case "pgdown":
		m.cursor = clamp(m.cursor+PageSize, m.minYear, m.maxYear)
	case "enter", "space":
		if !m.rng.ContainsYear(m.cursor) {
			return m, nil
		}
		chosen := m.cursor
		return m, func() tea.Msg {
			return events.YearChosenMsg{Component: ID, Year: chosen}
		}
	}
	return m, nil
}

// View renders the page of years containing the cursor.
func (m Model) View() string {
	pageStart := m.minYear + ((m.cursor-m.minYear)/PageSize)*PageSize

	lines := []string{m.styles.Title.Render("Select year")}
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < columns; col++ {
			year := pageStart + row*columns + col
			if year > m.maxYear {
				continue
			}
			cells = append(cells, m.renderYear(year))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderYear(year int) string {
	text := fmt.Sprintf("%4d", year)
	switch {
	case year == m.cursor:
		return m.styles.Focused.Render(text)
	case !m.rng.ContainsYear(year):
		return m.styles.Disabled.Render(text)
	case year == m.current:
		return m.styles.Current.Render(text)
	default:
		return m.styles.Cell.Render(text)
	}
}
