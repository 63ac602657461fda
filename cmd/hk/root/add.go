package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newAddCmd() *cobra.Command {
	var period string
	var schedule string

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add an uncompleted habit",
		Long: `Add a habit to a period bucket. The schedule format depends on the period:

  daily     HH:MM              e.g. "07:00"
  weekly    Weekday HH:MM      e.g. "Monday 09:00"
  monthly   DD HH:MM           e.g. "01 09:00"
  yearly    MM-DD HH:MM        e.g. "12-31 10:00"
  once_off  YYYY-MM-DD HH:MM   e.g. "2024-11-01 17:00"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := engine.ParsePeriod(period)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.AddUncompleted(p, args[0], schedule); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q to %s habits\n", ui.Good.Render(ui.IconPlus), args[0], p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|weekly|monthly|yearly|once_off)")
	cmd.Flags().StringVarP(&schedule, "schedule", "s", "", "Schedule string for the period")
	_ = cmd.MarkFlagRequired("schedule")

	return cmd
}
