package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
	"github.com/sndkit/audiotui/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap. The
// ambient context is propagated to every contextual child unchanged.
type Stack struct {
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical, align: lipgloss.Left}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	s := NewStack(children...)
	s.direction = DirectionHorizontal
	s.align = lipgloss.Top
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap >= 0 {
		s.gap = gap
	}
	return s
}

// WithAlign sets cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(defaultContext())
}

// ViewWithContext renders all children with the given ambient context.
func (s *Stack) ViewWithContext(ctx theme.Context) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		view := ui.Render(child, ctx)
		if view == "" {
			continue
		}
		views = append(views, view)
		if s.gap > 0 {
			views = append(views, gapFiller(s.direction, s.gap))
		}
	}
	if len(views) == 0 {
		return ""
	}
	if s.gap > 0 {
		views = views[:len(views)-1] // no trailing gap
	}
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(s.align, views...)
	}
	return lipgloss.JoinVertical(s.align, views...)
}

func gapFiller(dir Direction, gap int) string {
	if dir == DirectionHorizontal {
		return lipgloss.NewStyle().Width(gap).Render("")
	}
	return lipgloss.NewStyle().Height(gap).Render("")
}
