package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/xala-technologies/xala-cli/internal/palette"
)

const swatchCellWidth = 9

// ScaleSwatch draws every step of a colour scale as a filled cell.
type ScaleSwatch struct {
	BaseComponent
	name    string
	scale   palette.Scale
	showHex bool
}

// NewScaleSwatch creates a swatch row labelled name.
func NewScaleSwatch(name string, scale palette.Scale) *ScaleSwatch {
	return &ScaleSwatch{
		BaseComponent: NewBaseComponent(),
		name:          name,
		scale:         scale,
	}
}

// WithHex prints the hex value under each step label.
func (s *ScaleSwatch) WithHex(show bool) *ScaleSwatch {
	s.showHex = show
	return s
}

// View renders the swatch.
func (s *ScaleSwatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the swatch with the given theme context.
func (s *ScaleSwatch) ViewWithContext(ctx RenderContext) string {
	label := s.ComputeStyle(ctx.Theme).
		Width(11).
		Foreground(ctx.Theme.Text).
		Bold(true).
		Render(s.name)

	cells := []string{label}
	for _, entry := range s.scale.Entries() {
		content := entry.Step.String()
		if s.showHex {
			content += "\n" + ansi.Truncate(entry.Color, swatchCellWidth, "…")
		}
		cell := lipgloss.NewStyle().
			Width(swatchCellWidth).
			Align(lipgloss.Center).
			Background(lipgloss.Color(entry.Color)).
			Foreground(onColour(entry.Color)).
			Render(content)
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
