package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/ui"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install predefined habits with four weeks of example history",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.Seed(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Predefined habits and example tracking data installed\n", ui.Good.Render(ui.IconSparkle))
			return nil
		},
	}

	return cmd
}
