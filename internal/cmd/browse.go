package cmd

import (
	"pokedex/internal/browser"
	"pokedex/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runBrowser(cmd *cobra.Command, args []string, e *env) error {
	orch := browser.New(e.client, nil, e.logger.Named("browser"))
	model := ui.NewAppModel(cmd.Context(), orch).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := p.Run()
	return err
}
