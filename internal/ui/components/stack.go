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

// Stack arranges children in one direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack aligned to the top.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal).WithAlign(lipgloss.Top)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack. Nil children and empty views are
// skipped so optional sections collapse without leaving gaps.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(s.align, s.interleave(views)...)
	} else {
		content = lipgloss.JoinVertical(s.align, s.interleave(views)...)
	}

	style := s.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 {
		style = style.MaxWidth(ctx.MaxWidth)
	}
	return style.Render(content)
}

// interleave inserts the gap between views. A vertical gap of n blank lines
// is a block of n-1 newlines.
func (s *Stack) interleave(views []string) []string {
	if s.gap == 0 {
		return views
	}
	spacer := strings.Repeat(" ", s.gap)
	if s.direction == DirectionVertical {
		spacer = strings.Repeat("\n", s.gap-1)
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells or lines.
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

// WithAppliers replaces the theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
