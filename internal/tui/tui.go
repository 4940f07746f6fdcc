package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskwise/internal/store"
)

// Run starts the interactive task session over the given store and blocks
// until the user quits.
func Run(s store.Store) error {
	p := tea.NewProgram(NewListModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
