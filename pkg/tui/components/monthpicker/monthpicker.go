// Package monthpicker is the month selection grid shown at the "month"
// level. It emits a MonthChosenMsg carrying the (year, month) pair.
package monthpicker

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/label"
	"tableflip.dev/almanac/pkg/tui/events"
	"tableflip.dev/almanac/pkg/tui/theme"
)

const columns = 3

// ID identifies this component in emitted events.
const ID events.ComponentID = "monthpicker"

// Model is the 3x4 month grid for one year.
type Model struct {
	year    int
	cursor  time.Month
	current time.Time
	rng     daterange.Range
	labels  *label.Formatter
	styles  theme.PickerTheme
}

// New returns a picker for the months of year. current is the focal month
// and pre-positions the cursor when it falls in the same year.
func New(year int, current time.Time, rng daterange.Range, labels *label.Formatter, th theme.PickerTheme) Model {
	m := Model{year: year, cursor: time.January, current: current, rng: rng, labels: labels, styles: th}
	if current.Year() == year {
		m.cursor = current.Month()
	}
	return m
}

// Year returns the year whose months are offered.
func (m Model) Year() int { return m.year }

// Cursor returns the month under the cursor.
func (m Model) Cursor() time.Month { return m.cursor }

// SetYear repoints the picker at another year, keeping the cursor month.
func (m *Model) SetYear(year int) { m.year = year }

func (m Model) monthInRange(mo time.Month) bool {
	return m.rng.ContainsMonth(time.Date(m.year, mo, 1, 0, 0, 0, 0, time.UTC))
}

// Update handles key input. Activating an out-of-range month is a no-op.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		if m.cursor > time.January {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < time.December {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > time.March {
			m.cursor -= columns
		}
	case "down", "j":
		if m.cursor <= time.September {
			m.cursor += columns
		}
	case "enter", "space":
		if !m.monthInRange(m.cursor) {
			return m, nil
		}
		year, chosen := m.year, m.cursor
		return m, func() tea.Msg {
			return events.MonthChosenMsg{Component: ID, Year: year, Month: chosen}
		}
	}
	return m, nil
}

// View renders the month grid for the year.
func (m Model) View() string {
	lines := []string{m.styles.Title.Render(m.titleText())}
	for row := 0; row < 4; row++ {
		var cells []string
		for col := 0; col < columns; col++ {
			mo := time.Month(row*columns + col + 1)
			cells = append(cells, m.renderMonth(mo))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) titleText() string {
	return "Select month " + time.Date(m.year, time.January, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func (m Model) renderMonth(mo time.Month) string {
	text := mo.String()[:3]
	if m.labels != nil {
		name := m.labels.MonthName(mo)
		if len([]rune(name)) >= 3 {
			text = string([]rune(name)[:3])
		}
	}
	switch {
	case mo == m.cursor:
		return m.styles.Focused.Render(text)
	case !m.monthInRange(mo):
		return m.styles.Disabled.Render(text)
	case m.current.Year() == m.year && m.current.Month() == mo:
		return m.styles.Current.Render(text)
	default:
		return m.styles.Cell.Render(text)
	}
}
