// Package header renders a month block heading with its window controls.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/almanac/pkg/plan"
	"tableflip.dev/almanac/pkg/tui/theme"
)

// Model renders one block's heading line.
type Model struct {
	styles theme.HeaderTheme
	width  int
}

// New returns a header sized to width columns.
func New(th theme.HeaderTheme, width int) Model {
	return Model{styles: th, width: width}
}

// SetWidth adjusts the rendered width.
func (m *Model) SetWidth(width int) { m.width = width }

// View renders the heading for a block: the label centered, with the
// previous/next controls at the outer edges reflecting their enablement.
func (m Model) View(b plan.Block) string {
	prev := m.styles.ControlDisabled.Render("‹")
	if b.PreviousEnabled {
		prev = m.styles.ControlEnabled.Render("‹")
	}
	next := m.styles.ControlDisabled.Render("›")
	if b.NextEnabled {
		next = m.styles.ControlEnabled.Render("›")
	}

	label := m.styles.Label.Render(b.Label)
	inner := m.width - 2
	pad := inner - ansi.PrintableRuneWidth(label)
	if pad < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, prev, " ", label, " ", next)
	}
	left := pad / 2
	return prev + strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left) + next
}
