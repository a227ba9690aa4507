package yearpicker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/tui/events"
	"tableflip.dev/almanac/pkg/tui/theme"
)

func press(key string) tea.Msg {
	return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
}

func TestEnterEmitsChosenYear(t *testing.T) {
	m := New(2020, 2030, 2024, daterange.Unbounded, theme.Default().Picker)

	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from enter")
	}
	msg, ok := cmd().(events.YearChosenMsg)
	if !ok {
		t.Fatalf("expected YearChosenMsg, got %T", cmd())
	}
	if msg.Year != 2024 {
		t.Fatalf("expected year 2024, got %d", msg.Year)
	}
}

func TestCursorClampsAtSpanEdges(t *testing.T) {
	m := New(2020, 2030, 2030, daterange.Unbounded, theme.Default().Picker)

	m, _ = m.Update(press("l"))
	if m.Cursor() != 2030 {
		t.Fatalf("expected cursor to stay at 2030, got %d", m.Cursor())
	}
	m, _ = m.Update(press("j"))
	if m.Cursor() != 2030 {
		t.Fatalf("expected cursor to stay at 2030 after down, got %d", m.Cursor())
	}
}

func TestVerticalMovesByRow(t *testing.T) {
	m := New(2000, 2050, 2024, daterange.Unbounded, theme.Default().Picker)
	m, _ = m.Update(press("j"))
	if m.Cursor() != 2028 {
		t.Fatalf("expected cursor 2028 after down, got %d", m.Cursor())
	}
	m, _ = m.Update(press("k"))
	if m.Cursor() != 2024 {
		t.Fatalf("expected cursor 2024 after up, got %d", m.Cursor())
	}
}

func TestOutOfRangeYearNotChoosable(t *testing.T) {
	rng := daterange.Range{Min: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	m := New(2020, 2030, 2024, rng, theme.Default().Picker)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command for an out-of-range year")
	}
}
