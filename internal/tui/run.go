package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/duel-chess/internal/config"
)

// Run plays a game in the terminal until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
