package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tracked habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			lines := svc.ListAll()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHabit, "All Tracked Habits"))
			if len(lines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habits tracked yet."))
				return nil
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}

	return cmd
}
