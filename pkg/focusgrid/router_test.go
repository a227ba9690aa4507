package focusgrid

import (
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/timeutil"
)

// populate registers every in-month cell of month into block, the way the
// day grid component does while rendering.
func populate(reg *Registry, block int, month time.Time) {
	for day := 1; day <= timeutil.DaysIn(month); day++ {
		row, col, ok := timeutil.PositionOf(month, day)
		if !ok {
			continue
		}
		reg.Register(Position{Block: block, Row: row, Col: col}, Cell{
			Date: month.AddDate(0, 0, day-1),
		})
	}
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestDownStaysInBlock(t *testing.T) {
	reg := NewRegistry(1)
	populate(reg, 0, month(2024, time.March)) // starts Friday, 31 days

	from := Position{Block: 0, Row: 1, Col: 3}
	to, moved := Route(reg, from, Down)
	if !moved || to != (Position{Block: 0, Row: 2, Col: 3}) {
		t.Fatalf("expected move to (2,3), got %+v moved=%v", to, moved)
	}
}

func TestDownIntoTrailingPaddingIsNoOp(t *testing.T) {
	reg := NewRegistry(1)
	m := month(2024, time.March)
	populate(reg, 0, m)

	// March 31 2024 sits at the start of the last row; one column right of it
	// the final row is padding.
	row, col, ok := timeutil.PositionOf(m, 31)
	if !ok {
		t.Fatalf("expected position for day 31")
	}
	above := Position{Block: 0, Row: row - 1, Col: col + 1}
	if _, present := reg.At(above); !present {
		t.Fatalf("expected cell above the padding to exist")
	}
	to, moved := Route(reg, above, Down)
	if moved {
		t.Fatalf("expected no-op into padding, moved to %+v", to)
	}
	if to != above {
		t.Fatalf("position must be unchanged on no-op, got %+v", to)
	}
}

func TestUpAtFirstRowIsNoOp(t *testing.T) {
	reg := NewRegistry(1)
	populate(reg, 0, month(2024, time.March))

	from := Position{Block: 0, Row: 0, Col: 6}
	if _, moved := Route(reg, from, Up); moved {
		t.Fatalf("expected no-op at first row")
	}
}

func TestRightCrossesBlockBoundary(t *testing.T) {
	reg := NewRegistry(2)
	populate(reg, 0, month(2024, time.August)) // fills (0,6): Aug 3
	populate(reg, 1, month(2024, time.September))

	// September 2024 starts on Sunday, so block 1 has a cell at (0,0).
	from := Position{Block: 0, Row: 0, Col: 6}
	to, moved := Route(reg, from, Right)
	if !moved || to != (Position{Block: 1, Row: 0, Col: 0}) {
		t.Fatalf("expected move to block 1 (0,0), got %+v moved=%v", to, moved)
	}
}

func TestRightAcrossBoundaryIntoPaddingIsNoOp(t *testing.T) {
	reg := NewRegistry(2)
	populate(reg, 0, month(2024, time.February))
	populate(reg, 1, month(2024, time.March)) // starts Friday: (0,0) is padding

	from := Position{Block: 0, Row: 0, Col: 6}
	if _, present := reg.At(from); !present {
		t.Fatalf("expected origin cell to exist")
	}
	to, moved := Route(reg, from, Right)
	if moved {
		t.Fatalf("expected no-op into padding of next block, moved to %+v", to)
	}
}

func TestLeftCrossesIntoPreviousBlock(t *testing.T) {
	reg := NewRegistry(2)
	populate(reg, 0, month(2024, time.August)) // row 1 fully populated
	populate(reg, 1, month(2024, time.September))

	from := Position{Block: 1, Row: 1, Col: 0}
	to, moved := Route(reg, from, Left)
	if !moved || to != (Position{Block: 0, Row: 1, Col: 6}) {
		t.Fatalf("expected move to block 0 (1,6), got %+v moved=%v", to, moved)
	}
}

func TestLeftWithoutPreviousBlockIsNoOp(t *testing.T) {
	reg := NewRegistry(1)
	populate(reg, 0, month(2024, time.March))

	from := Position{Block: 0, Row: 2, Col: 0}
	if _, moved := Route(reg, from, Left); moved {
		t.Fatalf("expected no-op at the left edge of block 0")
	}
}

func TestRightWithinRow(t *testing.T) {
	reg := NewRegistry(1)
	populate(reg, 0, month(2024, time.March))

	from := Position{Block: 0, Row: 1, Col: 2}
	to, moved := Route(reg, from, Right)
	if !moved || to != (Position{Block: 0, Row: 1, Col: 3}) {
		t.Fatalf("expected move to (1,3), got %+v moved=%v", to, moved)
	}
}

func TestRegistryReset(t *testing.T) {
	reg := NewRegistry(2)
	populate(reg, 0, month(2024, time.March))
	reg.Reset(1)
	if reg.Blocks() != 1 {
		t.Fatalf("expected 1 block after reset, got %d", reg.Blocks())
	}
	if _, ok := reg.At(Position{Block: 0, Row: 0, Col: 5}); ok {
		t.Fatalf("expected cells to be dropped on reset")
	}
}

func TestPositionOf(t *testing.T) {
	reg := NewRegistry(2)
	populate(reg, 0, month(2024, time.August))
	populate(reg, 1, month(2024, time.September))

	pos, ok := reg.PositionOf(time.Date(2024, time.September, 15, 10, 0, 0, 0, time.UTC))
	if !ok || pos.Block != 1 {
		t.Fatalf("expected September 15 in block 1, got %+v ok=%v", pos, ok)
	}
	cell, ok := reg.At(pos)
	if !ok || cell.Date.Day() != 15 {
		t.Fatalf("expected day 15 at %+v, got %+v", pos, cell)
	}

	if _, ok := reg.PositionOf(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)); ok {
		t.Fatalf("expected no position for an unrendered date")
	}
}
