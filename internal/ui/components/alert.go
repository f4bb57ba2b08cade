package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Alert is a bordered message with an optional bullet list.
type Alert struct {
	BaseComponent
	title string
	items []string
	slot  Slot
	icon  string
}

// NewAlert creates an alert coloured by slot.
func NewAlert(title string, slot Slot) *Alert {
	icon := "ℹ"
	switch slot {
	case SlotSuccess:
		icon = "✓"
	case SlotError:
		icon = "✗"
	case SlotWarning:
		icon = "!"
	}
	return &Alert{
		BaseComponent: NewBaseComponent(),
		title:         title,
		slot:          slot,
		icon:          icon,
	}
}

// WithItems lists detail lines under the title.
func (a *Alert) WithItems(items ...string) *Alert {
	a.items = append(a.items, items...)
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	colour := ctx.Theme.Palette.Set(a.slot).Base

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colour).Render(a.icon + " " + a.title))
	for _, item := range a.items {
		b.WriteString("\n  • ")
		b.WriteString(item)
	}

	style := a.ComputeStyle(ctx.Theme).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colour).
		Padding(0, 1)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(b.String())
}
