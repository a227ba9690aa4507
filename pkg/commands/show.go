package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/config"
	"tableflip.dev/almanac/pkg/plan"
	"tableflip.dev/almanac/pkg/printers"
)

func addShow(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	ro := &options.RangeOptions{}
	showPlan := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the month window without the interactive picker.",
		Example: `
almanac show --months=3
almanac show --month="2024-03" --max="2024-03-31" --plan
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			months := cfg.Months
			if vo.Months > 0 {
				months = vo.Months
			}

			rng := cfg.Range
			if r, err := ro.GetRange(); err != nil {
				return err
			} else if r.HasMin() || r.HasMax() {
				rng = r
			}

			pp := printers.New(localeOf(cfg, vo))
			month, err := vo.GetMonth()
			if err != nil {
				return err
			}
			if month.IsZero() {
				month = cfg.Month
			}
			if month.IsZero() {
				month = pp.Now()
			}

			p := plan.New(months, rng, pp.Labels.Month)
			blocks := p.Blocks(month)

			if showPlan {
				fmt.Println(printers.PlanTable(blocks))
				return nil
			}
			pp.PrintBlocks(blocks, rng)
			return nil
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddRangeArgs(cmd, ro)
	cmd.Flags().BoolVar(&showPlan, "plan", false, "Print the window plan as a table instead of month grids.")

	topLevel.AddCommand(cmd)
}
