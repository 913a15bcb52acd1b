package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchForm captures a Pokémon name. Every keystroke updates the query;
// Enter submits it.
type SearchForm struct {
	input textinput.Model
	keys  KeyMap
}

// Ensure SearchForm implements View.
var _ View = (*SearchForm)(nil)

// NewSearchForm creates a focused search form.
func NewSearchForm(keys KeyMap) *SearchForm {
	ti := textinput.New()
	ti.Placeholder = SearchPlaceholder
	ti.Prompt = "Buscar › "
	ti.Width = 40
	ti.CharLimit = 64
	ti.Focus()
	return &SearchForm{input: ti, keys: keys}
}

// Query returns the current input.
func (f *SearchForm) Query() string {
	return f.input.Value()
}

// SetWidth sizes the input to fit width columns.
func (f *SearchForm) SetWidth(width int) {
	w := width - 16 // prompt, border, padding
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	f.input.Width = w
}

// Init implements View.
func (f *SearchForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View. Submitting a blank query does nothing.
func (f *SearchForm) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.keys.Search) {
		query := f.input.Value()
		if strings.TrimSpace(query) == "" {
			return f, nil
		}
		return f, func() tea.Msg { return SearchSubmittedMsg{Query: query} }
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View implements View.
func (f *SearchForm) View() string {
	return Styles.Input.Render(f.input.View())
}
