package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newLogCmd() *cobra.Command {
	var period string
	var at string

	cmd := &cobra.Command{
		Use:   "log <task>",
		Short: "Record a completion manually (backfill)",
		Long:  "Record a completion without requiring an uncompleted entry,\ne.g. for habits done before they were tracked.",
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
			if at == "" {
				at = time.Now().Format(engine.TimestampMinuteLayout)
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.LogCompleted(p, args[0], at); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %q (%s) at %s\n", ui.Good.Render(ui.IconDone), args[0], p, ui.Muted.Render(at))
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|weekly|monthly|yearly|once_off)")
	cmd.Flags().StringVarP(&at, "time", "t", "", "Completion time, YYYY-MM-DD HH:MM (default: now)")

	return cmd
}
