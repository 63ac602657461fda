package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitkeep/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Analyze habit history (streaks, completion counts)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			a, err := svc.Analyze()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Habit Analysis"))
			if a.LongestStreak.Habit == "" {
				fmt.Fprintln(out, ui.LabelValue("Longest streak", ui.Muted.Render("no completions yet")))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Longest streak",
					fmt.Sprintf("%s %s (%d days)", ui.IconStreak, a.LongestStreak.Habit, a.LongestStreak.Length)))
			}
			if a.MostChallenging.Habit != "" {
				fmt.Fprintln(out, ui.LabelValue("Most completed",
					fmt.Sprintf("%s (%d times)", a.MostChallenging.Habit, a.MostChallenging.Count)))
			}
			fmt.Fprintln(out, ui.H2.Render("Current daily habits:"))
			if len(a.CurrentDailyHabits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  none"))
			}
			for _, h := range a.CurrentDailyHabits {
				fmt.Fprintf(out, "  - %s\n", h)
			}
			return nil
		},
	}

	return cmd
}
