package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
	"github.com/sndkit/audiotui/internal/ui"
)

// Panel groups children under an optional title and wraps them with the
// ambient Feel's container decoration.
type Panel struct {
	title    string
	children []ui.Renderable
	layout   *Stack
}

// NewPanel creates a panel around the given children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{children: children, layout: VStack(children...)}
}

// WithTitle sets the panel title.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithGap sets the spacing between children.
func (p *Panel) WithGap(gap int) *Panel {
	p.layout.WithGap(gap)
	return p
}

// Add appends children to the panel.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.children = append(p.children, children...)
	p.layout.Add(children...)
	return p
}

// View renders with the default theme.
func (p *Panel) View() string {
	return p.ViewWithContext(defaultContext())
}

// ViewWithContext renders children, then applies container decoration.
func (p *Panel) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	feel := ctx.Feel()

	content := p.layout.ViewWithContext(ctx)
	if p.title != "" {
		title := lipgloss.NewStyle().
			Foreground(look.Text().Accent).
			Bold(true).
			Render(p.title)
		content = lipgloss.JoinVertical(lipgloss.Left, title, content)
	}
	decorated := feel.ApplyContainer(content, look)
	if ctx.Width > 0 {
		decorated = lipgloss.NewStyle().MaxWidth(ctx.Width).Render(decorated)
	}
	return decorated
}
