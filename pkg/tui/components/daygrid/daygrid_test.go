package daygrid

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/focusgrid"
	"tableflip.dev/almanac/pkg/tui/theme"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestPopulateRegistersEveryDay(t *testing.T) {
	g := New(0, theme.Default().Grid)
	g.SetMonth(month(2024, time.March))

	reg := focusgrid.NewRegistry(1)
	g.Populate(reg)

	// March 2024 has 31 days; every one and nothing else is registered.
	count := 0
	for row := 0; row < 6; row++ {
		for col := 0; col < 7; col++ {
			if _, ok := reg.At(focusgrid.Position{Block: 0, Row: row, Col: col}); ok {
				count++
			}
		}
	}
	if count != 31 {
		t.Fatalf("expected 31 registered cells, got %d", count)
	}
	if _, ok := reg.At(focusgrid.Position{Block: 0, Row: 0, Col: 0}); ok {
		t.Fatalf("March 2024 starts on Friday; (0,0) must be padding")
	}
	cell, ok := reg.At(focusgrid.Position{Block: 0, Row: 0, Col: 5})
	if !ok || cell.Date.Day() != 1 {
		t.Fatalf("expected March 1 at (0,5), got %+v ok=%v", cell, ok)
	}
}

func TestViewHasFixedRowCount(t *testing.T) {
	g := New(0, theme.Default().Grid)
	g.SetMonth(month(2026, time.February)) // fits in 4 rows

	view := g.View(Context{Now: month(2020, time.January)})
	lines := strings.Split(view, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected heading plus 6 rows, got %d lines", len(lines))
	}
	for i, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != len("Su Mo Tu We Th Fr Sa") {
			t.Fatalf("line %d: expected width %d, got %d", i, len("Su Mo Tu We Th Fr Sa"), w)
		}
	}
}

func TestViewMarksDisabledDays(t *testing.T) {
	g := New(0, theme.Default().Grid)
	g.SetMonth(month(2024, time.March))
	g.SetRange(daterange.Range{Max: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)})

	view := g.View(Context{Now: month(2020, time.January)})
	if !strings.Contains(view, "16") {
		t.Fatalf("out-of-range days still render")
	}
}

func TestEmptyModelRendersNothing(t *testing.T) {
	g := New(0, theme.Default().Grid)
	if view := g.View(Context{}); view != "" {
		t.Fatalf("expected empty view for unset month, got %q", view)
	}
	reg := focusgrid.NewRegistry(1)
	g.Populate(reg)
	if _, ok := reg.At(focusgrid.Position{Block: 0, Row: 0, Col: 0}); ok {
		t.Fatalf("expected no registrations for unset month")
	}
}
