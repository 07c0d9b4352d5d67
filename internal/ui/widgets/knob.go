package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

const knobTrackWidth = 9

// Knob is a rotary control rendered as a horizontal travel with a thumb.
// Value is normalized 0..1 and clamped on the way in, so rendering is total.
type Knob struct {
	label string
	value float64
}

// NewKnob creates a knob with the given label.
func NewKnob(label string) *Knob {
	return &Knob{label: label}
}

// WithValue sets the normalized value, clamped to 0..1.
func (k *Knob) WithValue(v float64) *Knob {
	k.value = clamp01(v)
	return k
}

// Value returns the normalized value.
func (k *Knob) Value() float64 { return k.value }

// View renders with the default theme.
func (k *Knob) View() string {
	return k.ViewWithContext(defaultContext())
}

// ViewWithContext renders the knob with the ambient Look's control colors.
func (k *Knob) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	controls := look.Controls()

	thumbPos := int(k.value * float64(knobTrackWidth-1))
	track := lipgloss.NewStyle().Foreground(controls.KnobTrack)
	thumb := lipgloss.NewStyle().Foreground(controls.KnobIndicator).Bold(true)

	var dial strings.Builder
	dial.WriteString(track.Render("("))
	for i := 0; i < knobTrackWidth; i++ {
		if i == thumbPos {
			dial.WriteString(thumb.Render("●"))
		} else {
			dial.WriteString(track.Render("─"))
		}
	}
	dial.WriteString(track.Render(")"))

	label := lipgloss.NewStyle().
		Foreground(look.Text().Secondary).
		Width(knobTrackWidth + 2).
		Align(lipgloss.Center).
		Render(k.label)
	readout := lipgloss.NewStyle().
		Foreground(look.Text().Tertiary).
		Width(knobTrackWidth + 2).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%d%%", int(k.value*100+0.5)))

	return lipgloss.JoinVertical(lipgloss.Left, label, dial.String(), readout)
}
