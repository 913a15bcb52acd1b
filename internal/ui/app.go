package ui

import (
	"context"

	"pokedex/internal/browser"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It owns the browser screen and the quit keys.
type AppModel struct {
	Browser *BrowserView
	Keys    KeyMap
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Browser.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.Keys.Quit) {
		a.Browser.Close()
		return a, tea.Quit
	}
	v, cmd := a.Browser.Update(msg)
	if b, ok := v.(*BrowserView); ok {
		a.Browser = b
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Browser.View() + "\n"
}

// NewAppModel creates the root application model around orch.
func NewAppModel(ctx context.Context, orch *browser.Orchestrator) *AppModel {
	return &AppModel{
		Browser: NewBrowserView(ctx, orch),
		Keys:    DefaultKeyMap(),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
