package ui

import (
	"fmt"
	"strings"

	"pokedex/internal/browser"
	"pokedex/internal/pokeapi"
	"pokedex/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Fixed screen text.
const (
	ScreenTitle       = "Pokémon"
	SearchPlaceholder = "Ingresa el nombre del Pokémon"
	LoadingText       = "Cargando..."
	labelHeight       = "Altura:"
	labelWeight       = "Peso:"
	labelAbilities    = "Habilidades:"
)

// RenderCard renders one record as a bordered card.
func RenderCard(rec pokeapi.Record) string {
	var b strings.Builder

	id := Styles.CardID.Render(fmt.Sprintf("#%03d", rec.ID))
	nameWidth := cardContent - textutil.VisualWidthStyled(id) - 1
	b.WriteString(Styles.CardTitle.Render(textutil.PadRightVisual(rec.Name, nameWidth)) + " " + id + "\n")

	b.WriteString(Styles.Image.Render(renderImage(rec)) + "\n\n")

	b.WriteString(Styles.Label.Render(labelHeight) + " " + pokeapi.FormatTenths(rec.Height) + " m\n")
	b.WriteString(Styles.Label.Render(labelWeight) + " " + pokeapi.FormatTenths(rec.Weight) + " kg\n")

	b.WriteString(Styles.Section.Render(labelAbilities))
	for _, a := range rec.Abilities {
		b.WriteString("\n" + Styles.Bullet.Render(" •") + " " + textutil.Truncate(a, cardContent-3))
	}

	return Styles.Card.Render(b.String())
}

// renderImage is the terminal stand-in for the sprite: the name as alt text
// and the URL underneath.
func renderImage(rec pokeapi.Record) string {
	alt := "[img: " + rec.Name + "]"
	if rec.SpriteURL == "" {
		return textutil.Truncate(alt, cardContent)
	}
	return textutil.Truncate(alt, cardContent) + "\n" + textutil.Truncate(rec.SpriteURL, cardContent)
}

// GridColumns returns how many cards fit side by side in width columns.
func GridColumns(width int) int {
	cols := (width + CardGap) / (CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// RenderGrid lays cards out in rows that fit width, preserving record order.
func RenderGrid(records []pokeapi.Record, width int) string {
	if len(records) == 0 {
		return ""
	}
	cols := GridColumns(width)
	gap := strings.Repeat(" ", CardGap)

	var rows []string
	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		cells := make([]string, 0, 2*(end-start))
		for i, rec := range records[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, RenderCard(rec))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderError renders the error region, or "" when there is no error.
func RenderError(st *browser.State) string {
	if st.ErrorMessage() == "" {
		return ""
	}
	return Styles.Error.Render(st.ErrorMessage())
}

// RenderBody renders the region under the search form: the loading
// indicator while a fetch is in flight, the card grid otherwise.
func RenderBody(st *browser.State, spinnerView string, width int) string {
	if st.Loading() {
		return Styles.Status.Render(strings.TrimSpace(spinnerView + " " + LoadingText))
	}
	return RenderGrid(st.Records(), width)
}
