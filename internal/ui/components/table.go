package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

// TokenTable lists the tokens of a group as a two-column table.
type TokenTable struct {
	BaseComponent
	title string
	group theme.Group
	chips bool
}

// NewTokenTable creates a table titled title.
func NewTokenTable(title string, group theme.Group) *TokenTable {
	return &TokenTable{
		BaseComponent: NewBaseComponent(),
		title:         title,
		group:         group,
	}
}

// WithChips prefixes colour values with a filled chip.
func (t *TokenTable) WithChips(show bool) *TokenTable {
	t.chips = show
	return t
}

// View renders the table.
func (t *TokenTable) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table with the given theme context.
func (t *TokenTable) ViewWithContext(ctx RenderContext) string {
	rows := make([][]string, 0, len(t.group))
	for _, token := range t.group {
		value := token.Value
		if t.chips {
			if _, ok := palette.Parse(token.Value); ok {
				value = lipgloss.NewStyle().Background(lipgloss.Color(token.Value)).Render("  ") + " " + value
			}
		}
		rows = append(rows, []string{token.Key, value})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ctx.Theme.Palette.Primary.Base).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ctx.Theme.Border)).
		Headers(t.title, "value").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if ctx.Width > 0 {
		tbl = tbl.Width(ctx.Width)
	}
	return t.ComputeStyle(ctx.Theme).Render(tbl.Render())
}
