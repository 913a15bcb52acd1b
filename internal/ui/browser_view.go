package ui

import (
	"context"
	"strings"

	"pokedex/internal/browser"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Default dimensions used before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 96
	defaultHeight = 40
)

// BrowserView is the single screen: title, error region, search form,
// loading indicator and card grid.
type BrowserView struct {
	ctx     context.Context
	orch    *browser.Orchestrator
	form    *SearchForm
	spinner spinner.Model
	cards   viewport.Model
	help    help.Model
	keys    KeyMap
	width   int
	height  int
}

// Ensure BrowserView implements View.
var _ View = (*BrowserView)(nil)

// NewBrowserView creates the browser screen around an orchestrator. ctx is
// passed to every fetch; it is never cancelled by the view itself.
func NewBrowserView(ctx context.Context, orch *browser.Orchestrator) *BrowserView {
	if ctx == nil {
		ctx = context.Background()
	}
	keys := DefaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = keys.ViewportKeyMap()

	h := help.New()
	h.Styles.ShortKey = Styles.Hint
	h.Styles.ShortDesc = Styles.Muted

	return &BrowserView{
		ctx:     ctx,
		orch:    orch,
		form:    NewSearchForm(keys),
		spinner: s,
		cards:   vp,
		help:    h,
		keys:    keys,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// State returns the view state being rendered.
func (v *BrowserView) State() *browser.State {
	return v.orch.State()
}

// Query returns the current search input.
func (v *BrowserView) Query() string {
	return v.form.Query()
}

// Init implements View. It starts the default batch load.
func (v *BrowserView) Init() tea.Cmd {
	return tea.Batch(v.form.Init(), v.loadDefaultBatch())
}

// Close detaches the view from in-flight fetches.
func (v *BrowserView) Close() {
	v.orch.Close()
}

func (v *BrowserView) loadDefaultBatch() tea.Cmd {
	req := v.orch.LoadDefaultBatch()
	return tea.Batch(fetchCmd(v.ctx, v.orch, req), v.spinner.Tick)
}

func (v *BrowserView) loadByName(name string) tea.Cmd {
	req, ok := v.orch.LoadByName(name)
	if !ok {
		return nil
	}
	return tea.Batch(fetchCmd(v.ctx, v.orch, req), v.spinner.Tick)
}

// Update implements View.
func (v *BrowserView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.form.SetWidth(msg.Width)
		v.cards.Width = msg.Width
		v.help.Width = msg.Width
		v.refreshCards()
		return v, nil
	case SearchSubmittedMsg:
		return v, v.loadByName(msg.Query)
	case FetchDoneMsg:
		if v.orch.Apply(msg.Result) {
			v.refreshCards()
			v.cards.GotoTop()
		}
		return v, nil
	case spinner.TickMsg:
		if !v.State().Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmds []tea.Cmd
	_, cmd := v.form.Update(msg)
	cmds = append(cmds, cmd)
	if _, isKey := msg.(tea.KeyMsg); isKey || isMouse(msg) {
		v.cards, cmd = v.cards.Update(msg)
		cmds = append(cmds, cmd)
	}
	return v, tea.Batch(cmds...)
}

func isMouse(msg tea.Msg) bool {
	_, ok := msg.(tea.MouseMsg)
	return ok
}

// refreshCards re-renders the grid into the viewport.
func (v *BrowserView) refreshCards() {
	v.cards.SetContent(RenderGrid(v.State().Records(), v.width))
}

func (v *BrowserView) header() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(ScreenTitle) + "\n")
	if errView := RenderError(v.State()); errView != "" {
		b.WriteString(errView + "\n")
	}
	b.WriteString(v.form.View() + "\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

// View implements View.
func (v *BrowserView) View() string {
	header := v.header()
	if v.State().Loading() {
		return header + "\n\n" + RenderBody(v.State(), v.spinner.View(), v.width)
	}
	v.cards.Height = max(3, v.height-lipgloss.Height(header)-1)
	return header + "\n" + v.cards.View()
}
