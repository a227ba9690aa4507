// Package printers renders months and window plans to plain terminals, for
// use when the interactive picker is not available or not wanted.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/label"
	"tableflip.dev/almanac/pkg/plan"
	"tableflip.dev/almanac/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// PrettyPrint writes colored month views to stdout.
type PrettyPrint struct {
	Labels *label.Formatter
	Now    func() time.Time
}

// New returns a printer using locale for month headings.
func New(locale string) *PrettyPrint {
	return &PrettyPrint{Labels: label.New(locale), Now: time.Now}
}

// PrintBlocks prints every block of the plan in order, marking out-of-range
// days and today.
func (pp *PrettyPrint) PrintBlocks(blocks []plan.Block, rng daterange.Range) {
	for _, b := range blocks {
		pp.PrintMonth(b.Month, rng)
	}
}

// PrintMonth prints one month as a Sunday-first week grid.
func (pp *PrettyPrint) PrintMonth(month time.Time, rng daterange.Range) {
	first := timeutil.Normalize(month)

	heading := pp.Labels.Month(first)
	tf := color.New(color.FgWhite, color.Italic)
	mid := (width - len(heading)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := width - mid - len(heading)
	if pad < 0 {
		pad = 0
	}
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), heading, strings.Repeat(" ", pad))

	d := timeutil.StartWeekday(first)
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	inRange := color.New(color.Bold, color.FgHiWhite)
	outRange := color.New(color.Faint, color.FgWhite)
	today := color.New(color.Bold, color.Underline)

	now := pp.Now()
	days := timeutil.DaysIn(first)
	for i := 0; i < days; i++ {
		date := first.AddDate(0, 0, i)
		printer := inRange
		if !rng.ContainsDay(date) {
			printer = outRange
		}
		if timeutil.SameMonth(first, now) && now.Day() == i+1 {
			printer = today
		}
		printer.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// PlanTable renders the block window as a table: one row per block with its
// label and control enablement.
func PlanTable(blocks []plan.Block) string {
	table := uitable.New()
	table.AddRow("BLOCK", "MONTH", "LABEL", "PREV", "NEXT")
	for i, b := range blocks {
		table.AddRow(
			fmt.Sprintf("%d", i),
			b.Month.Format("2006-01"),
			b.Label,
			onOff(b.PreviousEnabled),
			onOff(b.NextEnabled),
		)
	}
	return table.String()
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
