package plan

import (
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/focal"
	"tableflip.dev/almanac/pkg/label"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestThreeBlockWindowUnbounded(t *testing.T) {
	p := New(3, daterange.Unbounded, nil)
	blocks := p.Blocks(month(2024, time.March))

	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	want := []time.Month{time.March, time.April, time.May}
	for i, b := range blocks {
		if b.Month.Month() != want[i] || b.Month.Year() != 2024 {
			t.Fatalf("block %d: expected %v 2024, got %v", i, want[i], b.Month)
		}
	}
	if !blocks[0].PreviousEnabled {
		t.Fatalf("block 0 must carry the previous control")
	}
	if blocks[0].NextEnabled {
		t.Fatalf("block 0 must not carry the next control")
	}
	if blocks[1].PreviousEnabled || blocks[1].NextEnabled {
		t.Fatalf("inner blocks carry no controls")
	}
	if !blocks[2].NextEnabled {
		t.Fatalf("last block must carry the next control")
	}
	if blocks[2].PreviousEnabled {
		t.Fatalf("last block must not carry the previous control")
	}
}

func TestSingleBlockWithinYearRange(t *testing.T) {
	r := daterange.Range{
		Min: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	p := New(1, r, label.New("en").Month)
	blocks := p.Blocks(month(2024, time.March))

	if blocks[0].Label != "March 2024" {
		t.Fatalf("expected label March 2024, got %q", blocks[0].Label)
	}
	if !blocks[0].PreviousEnabled {
		t.Fatalf("February 2024 is in range, previous must be enabled")
	}
	if !blocks[0].NextEnabled {
		t.Fatalf("April 2024 is in range, next must be enabled")
	}
}

func TestNextDisabledAtRangeEdge(t *testing.T) {
	r := daterange.Range{
		Min: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	p := New(1, r, nil)
	blocks := p.Blocks(month(2024, time.March))

	if blocks[0].NextEnabled {
		t.Fatalf("April 2024 is out of range, next must be disabled")
	}
	if !blocks[0].PreviousEnabled {
		t.Fatalf("February 2024 is in range, previous must be enabled")
	}
}

func TestNextMovesWindowByCount(t *testing.T) {
	c, err := focal.NewUncontrolled(month(2024, time.March), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := New(3, daterange.Unbounded, nil)

	p.Next(c)
	if got := c.Get(); !got.Equal(month(2024, time.June)) {
		t.Fatalf("expected June 2024 after next, got %v", got)
	}
	p.Previous(c)
	if got := c.Get(); !got.Equal(month(2024, time.March)) {
		t.Fatalf("expected March 2024 after previous, got %v", got)
	}
}

func TestNextActionSetsFocalMonth(t *testing.T) {
	// End to end: March 2024, bounded to 2024, one block.
	c, err := focal.NewUncontrolled(month(2024, time.March), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := daterange.Range{
		Min: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	p := New(1, r, label.New("en").Month)

	blocks := p.Blocks(c.Get())
	if !blocks[0].NextEnabled {
		t.Fatalf("next must be enabled")
	}
	p.Next(c)
	if got := c.Get(); !got.Equal(month(2024, time.April)) {
		t.Fatalf("expected 2024-04-01, got %v", got)
	}
}

func TestCountBelowOneIsClamped(t *testing.T) {
	p := New(0, daterange.Unbounded, nil)
	if p.Count != 1 {
		t.Fatalf("expected count clamped to 1, got %d", p.Count)
	}
	if got := len(p.Blocks(month(2024, time.March))); got != 1 {
		t.Fatalf("expected one block, got %d", got)
	}
}
