package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"habitkeep/internal/engine"
	"habitkeep/internal/ui"
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	rows     []habitRow
	analysis *engine.Analysis
	dueToday []string
	selected int

	lastLog string
	err     error
}

// habitRow is one selectable line: either a period header or an uncompleted
// habit entry.
type habitRow struct {
	period   engine.Period
	task     string
	schedule string
	header   bool
}

type refreshedMsg struct {
	rows     []habitRow
	analysis *engine.Analysis
	dueToday []string
	err      error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{svc: svc, lastLog: "Loaded."}
}

func (m boardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		var rows []habitRow
		for _, p := range engine.Periods {
			entries := m.svc.Uncompleted(p)
			if len(entries) == 0 {
				continue
			}
			rows = append(rows, habitRow{period: p, header: true})
			for _, e := range entries {
				rows = append(rows, habitRow{period: p, task: e.Task, schedule: e.Schedule})
			}
		}

		analysis, err := m.svc.Analyze()
		if err != nil {
			return refreshedMsg{err: err}
		}
		due, err := m.svc.TasksDueOn(time.Now().Format(engine.DateLayout))
		if err != nil {
			return refreshedMsg{err: err}
		}
		return refreshedMsg{rows: rows, analysis: analysis, dueToday: due}
	}
}

func (m boardModel) completeCmd(period engine.Period, task string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Complete(period, task)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.rows = msg.rows
		m.analysis = msg.analysis
		m.dueToday = msg.dueToday
		if m.selected >= len(m.rows) {
			m.selected = len(m.rows) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.Descheduled {
			m.lastLog = fmt.Sprintf("Completed %s (once-off, removed from schedule)", msg.res.Task)
		} else {
			m.lastLog = fmt.Sprintf("Completed %s", msg.res.Task)
		}
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.refreshCmd()
		case "up", "k":
			m.selected = prevSelectable(m.rows, m.selected)
			return m, nil
		case "down", "j":
			m.selected = nextSelectable(m.rows, m.selected)
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.rows) {
				return m, nil
			}
			row := m.rows[m.selected]
			if row.header {
				m.lastLog = "Select a habit to complete."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", row.task)
			return m, m.completeCmd(row.period, row.task)
		}
	}
	return m, nil
}

func prevSelectable(rows []habitRow, from int) int {
	for i := from - 1; i >= 0; i-- {
		if !rows[i].header {
			return i
		}
	}
	return from
}

func nextSelectable(rows []habitRow, from int) int {
	for i := from + 1; i < len(rows); i++ {
		if !rows[i].header {
			return i
		}
	}
	return from
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconHabit, "Habitkeep") + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString(ui.Muted.Render("No habits yet. Use 'hk add' to create one.") + "\n")
	}
	for i, row := range m.rows {
		if row.header {
			b.WriteString(ui.H2.Render(ui.PeriodIcon(string(row.period))+" "+row.period.Capitalized()) + "\n")
			continue
		}
		line := fmt.Sprintf("  %s at %s", row.task, row.schedule)
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.renderSidebar() + "\n")
	b.WriteString(ui.Muted.Render("j/k: move  c/space: complete  r: refresh  q: quit") + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog) + "\n")
	return b.String()
}

func (m boardModel) renderSidebar() string {
	if m.analysis == nil {
		return "Loading…"
	}
	lines := []string{ui.H2.Render(ui.IconChart + " Stats")}
	if m.analysis.LongestStreak.Habit != "" {
		lines = append(lines, ui.LabelValue("Longest streak",
			fmt.Sprintf("%s %s (%d days)", ui.IconStreak, m.analysis.LongestStreak.Habit, m.analysis.LongestStreak.Length)))
	}
	if m.analysis.MostChallenging.Habit != "" {
		lines = append(lines, ui.LabelValue("Most completed",
			fmt.Sprintf("%s (%d times)", m.analysis.MostChallenging.Habit, m.analysis.MostChallenging.Count)))
	}
	lines = append(lines, ui.LabelValue("Due today", len(m.dueToday)))
	return strings.Join(lines, "\n")
}
