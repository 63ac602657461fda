package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newDueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due [date]",
		Short: "Show habits due on a date (default today)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one date")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(engine.DateLayout)
			if len(args) == 1 {
				date = args[0]
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			due, err := svc.TasksDueOn(date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCal, "Due on "+date))
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing due."))
				return nil
			}
			for _, l := range due {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}

	return cmd
}
