package commands

import (
	"fmt"
	"os"
	"strings"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/config"
	"tableflip.dev/almanac/pkg/level"
	"tableflip.dev/almanac/pkg/plan"
	"tableflip.dev/almanac/pkg/printers"
	pickerui "tableflip.dev/almanac/pkg/tui/app"
)

func addPick(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	ro := &options.RangeOptions{}
	lo := &options.LevelOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a date.",
		Example: `
almanac pick
almanac pick --months=3 --min="2024-01-01" --max="2024-12-31"
almanac pick --lock-level --month="2024-03"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts, err := buildOptions(cfg, vo, ro, lo)
			if err != nil {
				return err
			}

			if !isatty.IsTerminal(os.Stdout.Fd()) {
				// No terminal to run the picker in; print the window instead.
				pp := printers.New(localeOf(cfg, vo))
				p := plan.New(opts.Months, opts.Range, pp.Labels.Month)
				month := opts.InitialMonth
				if month.IsZero() {
					month = pp.Now()
				}
				pp.PrintBlocks(p.Blocks(month), opts.Range)
				return nil
			}

			picked, err := pickerui.Run(opts)
			if err != nil {
				return err
			}
			if picked.IsZero() {
				return nil
			}
			fmt.Println(picked.Format("2006-01-02"))
			return nil
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddRangeArgs(cmd, ro)
	options.AddLevelArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func buildOptions(cfg *config.Config, vo *options.ViewOptions, ro *options.RangeOptions, lo *options.LevelOptions) (pickerui.Options, error) {
	opts := pickerui.Options{
		Months: cfg.Months,
		Locale: localeOf(cfg, vo),
		Range:  cfg.Range,
	}
	if vo.Months > 0 {
		opts.Months = vo.Months
	}

	month, err := vo.GetMonth()
	if err != nil {
		return opts, err
	}
	if month.IsZero() {
		month = cfg.Month
	}
	opts.InitialMonth = month

	r, err := ro.GetRange()
	if err != nil {
		return opts, err
	}
	if r.HasMin() || r.HasMax() {
		opts.Range = r
	}

	opts.DisableLevelChange = lo.LockLevel
	switch strings.ToLower(lo.InitialLevel) {
	case "", "date":
		opts.InitialLevel = level.Date
	case "month":
		opts.InitialLevel = level.Month
	case "year":
		opts.InitialLevel = level.Year
	default:
		return opts, fmt.Errorf("unknown level %q", lo.InitialLevel)
	}

	return opts, nil
}

func localeOf(cfg *config.Config, vo *options.ViewOptions) string {
	if vo.Locale != "" {
		return vo.Locale
	}
	return cfg.Locale
}
