package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thanvi-nagalla/portfolio/internal/config"
)

// Run opens the portfolio in the terminal and blocks until the user quits.
func Run(cfg *config.Config) error {
	if path := os.Getenv("PORTFOLIO_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "tui")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	var opts []tea.ProgramOption
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(New(cfg), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
