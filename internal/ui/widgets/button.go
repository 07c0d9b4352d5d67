package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

// Button is a momentary press control. The pressed flag is local widget
// state owned by the caller; the visual transition between the two states is
// the ambient Feel's button transform, animated by the Feel's motion spec.
type Button struct {
	label    string
	pressed  bool
	disabled bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// WithPressed sets the pressed state.
func (b *Button) WithPressed(pressed bool) *Button {
	b.pressed = pressed
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// IsPressed reports the pressed state.
func (b *Button) IsPressed() bool { return b.pressed }

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(defaultContext())
}

// ViewWithContext renders the button through the ambient Feel.
func (b *Button) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	if b.disabled {
		return lipgloss.NewStyle().
			Background(look.Interactive().Disabled).
			Foreground(look.Text().Disabled).
			Padding(0, 1).
			Render(b.label)
	}
	return ctx.Feel().ApplyButton(b.label, look, b.pressed)
}
