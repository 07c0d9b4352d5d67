package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

// Toggle is a latching on/off control, rendered as an indicator plus label
// decorated with the ambient Feel's interactive transform.
type Toggle struct {
	label string
	on    bool
}

// NewToggle creates a toggle with the given label.
func NewToggle(label string) *Toggle {
	return &Toggle{label: label}
}

// WithOn sets the toggle state.
func (t *Toggle) WithOn(on bool) *Toggle {
	t.on = on
	return t
}

// IsOn reports the toggle state.
func (t *Toggle) IsOn() bool { return t.on }

// View renders with the default theme.
func (t *Toggle) View() string {
	return t.ViewWithContext(defaultContext())
}

// ViewWithContext renders the toggle through the ambient Feel.
func (t *Toggle) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	feel := ctx.Feel()

	indicator := "○"
	color := look.Controls().ToggleOff
	if t.on {
		indicator = "●"
		color = look.Controls().ToggleOn
	}
	dot := lipgloss.NewStyle().Foreground(color).Render(indicator)
	label := feel.ApplyInteractive(t.label, look, t.on)
	return dot + " " + label
}
