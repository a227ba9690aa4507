package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/daterange"
	"tableflip.dev/almanac/pkg/timeutil"
)

// ViewOptions
type ViewOptions struct {
	Months      int
	MonthString string
	Locale      string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().IntVar(&o.Months, "months", 0,
		"Number of months shown side by side.")
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`First displayed month, example: --month="2024-03".`)
	cmd.Flags().StringVar(&o.Locale, "locale", "",
		"Locale for month labels (en, de, es, fr).")
}

func (o *ViewOptions) GetMonth() (time.Time, error) {
	if o.MonthString == "" {
		return time.Time{}, nil
	}
	return timeutil.ParseMonth(o.MonthString)
}

// RangeOptions
type RangeOptions struct {
	MinString string
	MaxString string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.MinString, "min", "",
		`Earliest selectable date, example: --min="2024-01-01".`)
	cmd.Flags().StringVar(&o.MaxString, "max", "",
		`Latest selectable date, example: --max="2024-12-31".`)
}

func (o *RangeOptions) GetRange() (daterange.Range, error) {
	var r daterange.Range
	if o.MinString != "" {
		min, err := timeutil.ParseDate(o.MinString)
		if err != nil {
			return r, err
		}
		r.Min = min
	}
	if o.MaxString != "" {
		max, err := timeutil.ParseDate(o.MaxString)
		if err != nil {
			return r, err
		}
		r.Max = max
	}
	return r, nil
}

// LevelOptions
type LevelOptions struct {
	LockLevel    bool
	InitialLevel string
}

func AddLevelArgs(cmd *cobra.Command, o *LevelOptions) {
	cmd.Flags().BoolVar(&o.LockLevel, "lock-level", false,
		"Lock the picker to date browsing; disables the year/month pickers.")
	cmd.Flags().StringVar(&o.InitialLevel, "level", "date",
		"Starting selection level: date, month, or year.")
}
