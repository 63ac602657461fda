package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "done <task>",
		Short: "Mark a habit as completed",
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
			res, err := svc.Complete(p, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Completed %q (%s) at %s\n", ui.Good.Render(ui.IconDone), res.Task, res.Period, ui.Muted.Render(res.CompletedAt))
			if res.Descheduled {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Once-off habit removed from the schedule\n", ui.Muted.Render(ui.IconOnce))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|weekly|monthly|yearly|once_off)")

	return cmd
}
