package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for card borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for ability bullets
)

// Card geometry. CardWidth is the outer width including border and padding.
const (
	CardWidth   = 30
	CardGap     = 1
	cardContent = CardWidth - 4 // border (2) + padding (2)
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title     lipgloss.Style // Bold accent color - for the screen title
	Error     lipgloss.Style // Error message region
	Input     lipgloss.Style // Box around the search input
	Card      lipgloss.Style // One Pokémon card
	CardTitle lipgloss.Style // Card heading (record name)
	CardID    lipgloss.Style // Record number next to the name
	Label     lipgloss.Style // "Altura:", "Peso:" labels
	Section   lipgloss.Style // "Habilidades:" heading
	Bullet    lipgloss.Style // Ability list bullet
	Muted     lipgloss.Style // Dimmed text (muted color)
	Hint      lipgloss.Style // Help/hint text (muted color)
	Status    lipgloss.Style // Loading indicator (accent color)
	Image     lipgloss.Style // Sprite URL line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Width(cardContent + 2),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	CardID: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Image: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
}
