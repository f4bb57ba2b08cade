package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

// WithGap sets the blank lines (vertical) or columns (horizontal) between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children)*2)
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if len(views) > 0 && s.gap > 0 {
			views = append(views, s.spacer())
		}
		views = append(views, child.ViewWithContext(ctx))
	}

	var joined string
	if s.direction == DirectionHorizontal {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		joined = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return s.ComputeStyle(ctx.Theme).Render(joined)
}

func (s *Stack) spacer() string {
	if s.direction == DirectionHorizontal {
		return strings.Repeat(" ", s.gap)
	}
	return strings.Repeat("\n", s.gap-1)
}
