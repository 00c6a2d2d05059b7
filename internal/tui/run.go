package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ButyrinIA/postboard/internal/api"
)

// Run takes over the terminal until the user quits.
func Run(client api.Client, userID int) error {
	p := tea.NewProgram(New(client, userID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %v", err)
	}
	return nil
}
