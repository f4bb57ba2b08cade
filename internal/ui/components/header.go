package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header represents a heading or title component.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.AddAppliers(Bold(), Foreground(SlotPrimary))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	title, subtitle := h.title, h.subtitle
	if ctx.Width > 0 {
		title = ansi.Truncate(title, ctx.Width, "…")
		subtitle = ansi.Truncate(subtitle, ctx.Width, "…")
	}
	if subtitle == "" {
		return style.Render(title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(title),
		lipgloss.NewStyle().Foreground(ctx.Theme.Muted).Render(subtitle),
	)
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}
