package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the habit file",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("this deletes %s; re-run with --yes to confirm", st.Path())
			}
			if err := st.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", ui.Warn.Render(ui.IconTrash), st.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")

	return cmd
}
