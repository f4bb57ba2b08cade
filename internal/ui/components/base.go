package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that can draw itself.
type Renderable interface {
	View() string
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme and the available width.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext renders with DefaultTheme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy using theme.
func (c RenderContext) WithTheme(theme Theme) RenderContext {
	c.Theme = theme
	return c
}

// WithWidth returns a copy limited to width columns. Zero means unlimited.
func (c RenderContext) WithWidth(width int) RenderContext {
	c.Width = width
	return c
}

// StyleFunc applies theme data to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// BaseComponent provides the style plumbing shared by components.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle applies the registered style funcs to the raw style.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style funcs; they run in order after earlier ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Foreground colours text with the base colour of slot.
func Foreground(slot Slot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Palette.Set(slot).Base)
	}
}

// Background fills with the base colour of slot and picks a readable foreground.
func Background(slot Slot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		set := t.Palette.Set(slot)
		return s.Background(set.Base).Foreground(set.OnBase)
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.Bold(true)
	}
}

// Muted renders text in the theme's muted colour.
func Muted() StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(t.Muted)
	}
}
