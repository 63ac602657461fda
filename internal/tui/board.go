package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"habitkeep/internal/engine"
)

func RunBoard(svc *engine.Service, out io.Writer) error {
	m := newBoardModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
