// Package theme centralizes the Lip Gloss styles for the picker UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme groups the styles used across the picker components.
type Theme struct {
	Grid   GridTheme
	Header HeaderTheme
	Picker PickerTheme
	Footer FooterTheme
}

// GridTheme styles the day cells of a month block.
type GridTheme struct {
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Padding  lipgloss.Style
	Today    lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
}

// HeaderTheme styles a block heading and its window controls.
type HeaderTheme struct {
	Label           lipgloss.Style
	ControlEnabled  lipgloss.Style
	ControlDisabled lipgloss.Style
}

// PickerTheme styles the year and month picker grids.
type PickerTheme struct {
	Cell     lipgloss.Style
	Focused  lipgloss.Style
	Current  lipgloss.Style
	Disabled lipgloss.Style
	Title    lipgloss.Style
}

// FooterTheme styles the help line and the goto prompt.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Prompt lipgloss.Style
}

const accentHex = "#875FFF"

// Default returns the built-in theme, adjusted for the terminal background.
func Default() Theme {
	dark := termenv.HasDarkBackground()

	accent, _ := colorful.Hex(accentHex)
	base, _ := colorful.Hex("#000000")
	if dark {
		base, _ = colorful.Hex("#FFFFFF")
	}
	// A softened accent for the roving focus so it reads apart from the
	// committed selection.
	focusBg := accent.BlendLab(base, 0.35).Hex()

	muted := lipgloss.Color("244")
	faint := lipgloss.Color("240")
	if !dark {
		muted = lipgloss.Color("245")
		faint = lipgloss.Color("250")
	}

	return Theme{
		Grid: GridTheme{
			Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Day:      lipgloss.NewStyle(),
			Padding:  lipgloss.NewStyle().Foreground(faint),
			Today:    lipgloss.NewStyle().Underline(true),
			Focused:  lipgloss.NewStyle().Background(lipgloss.Color(focusBg)).Foreground(lipgloss.Color("0")),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color(accentHex)).Foreground(lipgloss.Color("15")).Bold(true),
			Disabled: lipgloss.NewStyle().Foreground(faint).Strikethrough(true),
		},
		Header: HeaderTheme{
			Label:           lipgloss.NewStyle().Bold(true),
			ControlEnabled:  lipgloss.NewStyle().Foreground(lipgloss.Color(accentHex)).Bold(true),
			ControlDisabled: lipgloss.NewStyle().Foreground(faint),
		},
		Picker: PickerTheme{
			Cell:     lipgloss.NewStyle().Padding(0, 1),
			Focused:  lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color(accentHex)).Foreground(lipgloss.Color("15")),
			Current:  lipgloss.NewStyle().Padding(0, 1).Underline(true),
			Disabled: lipgloss.NewStyle().Padding(0, 1).Foreground(faint),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
