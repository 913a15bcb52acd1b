package ui

import (
	"context"

	"pokedex/internal/browser"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchCmd returns a command that runs req off the event loop and reports
// the outcome as a FetchDoneMsg. The state is not touched here.
func fetchCmd(ctx context.Context, o *browser.Orchestrator, req browser.Request) tea.Cmd {
	return func() tea.Msg {
		return FetchDoneMsg{Result: o.Run(ctx, req)}
	}
}
