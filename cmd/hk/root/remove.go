package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newRemoveCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:     "remove <task>",
		Aliases: []string{"rm"},
		Short:   "Remove an uncompleted habit",
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
			if err := svc.RemoveUncompleted(p, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %q from %s habits\n", ui.Warn.Render(ui.IconTrash), args[0], p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|weekly|monthly|yearly|once_off)")

	return cmd
}
