// Package plan derives the displayed month blocks from the focal month, the
// configured block count, and the active date range.
package plan

import (
	"time"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/focal"
	"tableflip.dev/almanac/pkg/timeutil"
)

// LabelFunc renders the heading for one block's month.
type LabelFunc func(time.Time) string

// Block describes one displayed month: its value, heading, and whether the
// previous/next window controls attached to it are enabled. Blocks are
// derived output, recomputed whenever the inputs change.
type Block struct {
	Month           time.Time
	Label           string
	PreviousEnabled bool
	NextEnabled     bool
}

// Planner computes the block window and moves it. Navigation always shifts
// the whole window by Count months, never block-by-block, so only the first
// block may carry an enabled "previous" control and only the last an enabled
// "next".
type Planner struct {
	Count int
	Range daterange.Range
	Label LabelFunc
}

// New returns a planner for count side-by-side months. A count below 1 is
// treated as 1.
func New(count int, r daterange.Range, labelFn LabelFunc) Planner {
	if count < 1 {
		count = 1
	}
	return Planner{Count: count, Range: r, Label: labelFn}
}

// Blocks derives the window of Count descriptors starting at focalMonth.
func (p Planner) Blocks(focalMonth time.Time) []Block {
	first := timeutil.Normalize(focalMonth)
	blocks := make([]Block, p.Count)
	for i := range blocks {
		b := Block{Month: timeutil.AddMonths(first, i)}
		if p.Label != nil {
			b.Label = p.Label(b.Month)
		}
		if i == 0 {
			b.PreviousEnabled = p.CanPrevious(first)
		}
		if i == p.Count-1 {
			b.NextEnabled = p.CanNext(first)
		}
		blocks[i] = b
	}
	return blocks
}

// CanPrevious reports whether the month before the window is navigable.
func (p Planner) CanPrevious(focalMonth time.Time) bool {
	return p.Range.ContainsMonth(timeutil.AddMonths(focalMonth, -1))
}

// CanNext reports whether the month after the window is navigable.
func (p Planner) CanNext(focalMonth time.Time) bool {
	return p.Range.ContainsMonth(timeutil.AddMonths(focalMonth, p.Count))
}

// Next shifts the window forward by Count months through the controller.
func (p Planner) Next(c *focal.Controller) {
	c.Set(timeutil.AddMonths(c.Get(), p.Count))
}

// Previous shifts the window backward by Count months through the controller.
func (p Planner) Previous(c *focal.Controller) {
	c.Set(timeutil.AddMonths(c.Get(), -p.Count))
}
