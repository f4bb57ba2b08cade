package components

// Badge is a small status indicator component.
type Badge struct {
	BaseComponent
	text string
	slot Slot
}

// NewBadge creates a badge filled with the colour of slot.
func NewBadge(text string, slot Slot) *Badge {
	b := &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		slot:          slot,
	}
	b.SetStyle(b.style.Padding(0, 1))
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return Background(b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme).Render(b.text)
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
