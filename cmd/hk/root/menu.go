package root

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive numbered menu",
		Long:  "Run the classic prompt loop: pick a numbered command, answer the\nprompts, repeat until you exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			return runMenu(svc, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runMenu(svc *engine.Service, out io.Writer) error {
	fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Welcome to Habitkeep!"))

	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("Enter a command").
			Options(
				huh.NewOption("1. Add uncompleted habit", "add"),
				huh.NewOption("2. Remove uncompleted habit", "remove"),
				huh.NewOption("3. Complete a habit", "done"),
				huh.NewOption("4. Add completed habit manually", "log"),
				huh.NewOption("5. Remove completed habit", "unlog"),
				huh.NewOption("6. List all habits", "list"),
				huh.NewOption("7. Tasks for a specific day", "due"),
				huh.NewOption("8. Analyze habits", "stats"),
				huh.NewOption("9. Delete habit file and exit", "reset"),
				huh.NewOption("10. Exit", "exit"),
			).
			Value(&choice).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		done, err := runMenuChoice(svc, out, choice)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			// Soft failures keep the loop alive; only report them.
			fmt.Fprintln(out, ui.Bad.Render(ui.IconError+" "+err.Error()))
			continue
		}
		if done {
			return nil
		}
	}
}

func runMenuChoice(svc *engine.Service, out io.Writer, choice string) (done bool, err error) {
	switch choice {
	case "add":
		period, err := askPeriod()
		if err != nil {
			return false, err
		}
		task, err := askInput("Habit task description")
		if err != nil {
			return false, err
		}
		schedule, err := askInput("Schedule (e.g. '07:00' for daily)")
		if err != nil {
			return false, err
		}
		if err := svc.AddUncompleted(period, task, schedule); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Added %q to %s habits\n", ui.Good.Render(ui.IconPlus), task, period)

	case "remove":
		period, task, err := askPeriodAndTask()
		if err != nil {
			return false, err
		}
		if err := svc.RemoveUncompleted(period, task); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Removed %q from %s habits\n", ui.Warn.Render(ui.IconTrash), task, period)

	case "done":
		period, task, err := askPeriodAndTask()
		if err != nil {
			return false, err
		}
		res, err := svc.Complete(period, task)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Completed %q at %s\n", ui.Good.Render(ui.IconDone), res.Task, ui.Muted.Render(res.CompletedAt))
		if res.Descheduled {
			fmt.Fprintf(out, "%s Once-off habit removed from the schedule\n", ui.Muted.Render(ui.IconOnce))
		}

	case "log":
		period, task, err := askPeriodAndTask()
		if err != nil {
			return false, err
		}
		at, err := askInput("Completion time (YYYY-MM-DD HH:MM)")
		if err != nil {
			return false, err
		}
		if err := svc.LogCompleted(period, task, at); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Logged %q at %s\n", ui.Good.Render(ui.IconDone), task, ui.Muted.Render(at))

	case "unlog":
		period, task, err := askPeriodAndTask()
		if err != nil {
			return false, err
		}
		if err := svc.RemoveCompleted(period, task); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Removed completed record for %q\n", ui.Warn.Render(ui.IconTrash), task)

	case "list":
		fmt.Fprintln(out, ui.Heading(ui.IconHabit, "All Tracked Habits"))
		for _, l := range svc.ListAll() {
			fmt.Fprintln(out, l)
		}

	case "due":
		date, err := askInputDefault("Date (YYYY-MM-DD)", time.Now().Format(engine.DateLayout))
		if err != nil {
			return false, err
		}
		due, err := svc.TasksDueOn(date)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, ui.Heading(ui.IconCal, "Due on "+date))
		for _, l := range due {
			fmt.Fprintln(out, l)
		}

	case "stats":
		a, err := svc.Analyze()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, ui.Heading(ui.IconChart, "Habit Analysis"))
		fmt.Fprintln(out, ui.LabelValue("Longest streak",
			fmt.Sprintf("%s (%d days)", a.LongestStreak.Habit, a.LongestStreak.Length)))
		fmt.Fprintln(out, ui.H2.Render("Current daily habits:"))
		for _, h := range a.CurrentDailyHabits {
			fmt.Fprintf(out, "  - %s\n", h)
		}
		fmt.Fprintln(out, ui.LabelValue("Most completed",
			fmt.Sprintf("%s (%d times)", a.MostChallenging.Habit, a.MostChallenging.Count)))

	case "reset":
		if err := svc.Store().Delete(); err != nil {
			return false, err
		}
		fmt.Fprintf(out, "%s Deleted %s\n", ui.Warn.Render(ui.IconTrash), svc.Store().Path())
		return true, nil

	case "exit":
		fmt.Fprintln(out, "Goodbye!")
		return true, nil
	}

	return false, nil
}

func askPeriod() (engine.Period, error) {
	var period string
	opts := make([]huh.Option[string], 0, len(engine.Periods))
	for _, p := range engine.Periods {
		opts = append(opts, huh.NewOption(p.Capitalized(), string(p)))
	}
	err := huh.NewSelect[string]().
		Title("Period").
		Options(opts...).
		Value(&period).
		Run()
	if err != nil {
		return "", err
	}
	return engine.ParsePeriod(period)
}

func askInput(title string) (string, error) {
	var v string
	err := huh.NewInput().
		Title(title).
		Validate(func(s string) error {
			if s == "" {
				return errors.New("value is required")
			}
			return nil
		}).
		Value(&v).
		Run()
	return v, err
}

func askInputDefault(title, def string) (string, error) {
	v := def
	err := huh.NewInput().
		Title(title).
		Value(&v).
		Run()
	return v, err
}

func askPeriodAndTask() (engine.Period, string, error) {
	period, err := askPeriod()
	if err != nil {
		return "", "", err
	}
	task, err := askInput("Habit task description")
	if err != nil {
		return "", "", err
	}
	return period, task, nil
}
