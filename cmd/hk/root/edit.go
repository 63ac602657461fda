package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newEditCmd() *cobra.Command {
	var period string
	var newTask string
	var newSchedule string

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Rename or reschedule an uncompleted habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if newTask == "" && newSchedule == "" {
				return errors.New("nothing to change: pass --task and/or --schedule")
			}
			p, err := engine.ParsePeriod(period)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.EditUncompleted(p, args[0], newTask, newSchedule); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Edited %q in %s habits\n", ui.Good.Render(ui.IconPencil), args[0], p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "Period (daily|weekly|monthly|yearly|once_off)")
	cmd.Flags().StringVar(&newTask, "task", "", "New task name")
	cmd.Flags().StringVar(&newSchedule, "schedule", "", "New schedule string")

	return cmd
}
