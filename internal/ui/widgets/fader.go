package widgets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

const defaultFaderHeight = 8

// Fader is a vertical slider, filled from the bottom. Value is normalized
// 0..1 and clamped on the way in.
type Fader struct {
	label  string
	value  float64
	height int
}

// NewFader creates a fader with the given label.
func NewFader(label string) *Fader {
	return &Fader{label: label, height: defaultFaderHeight}
}

// WithValue sets the normalized value, clamped to 0..1.
func (f *Fader) WithValue(v float64) *Fader {
	f.value = clamp01(v)
	return f
}

// WithHeight sets the travel height in rows.
func (f *Fader) WithHeight(h int) *Fader {
	if h > 0 {
		f.height = h
	}
	return f
}

// Value returns the normalized value.
func (f *Fader) Value() float64 { return f.value }

// View renders with the default theme.
func (f *Fader) View() string {
	return f.ViewWithContext(defaultContext())
}

// ViewWithContext renders the fader with the ambient Look's slider colors.
func (f *Fader) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	controls := look.Controls()

	filled := int(f.value*float64(f.height) + 0.5)
	thumbRow := f.height - filled // row index of the thumb, from the top
	if thumbRow >= f.height {
		thumbRow = f.height - 1
	}

	trackStyle := lipgloss.NewStyle().Foreground(controls.SliderTrack)
	fillStyle := lipgloss.NewStyle().Foreground(controls.SliderFill)
	thumbStyle := lipgloss.NewStyle().Foreground(controls.SliderThumb).Bold(true)

	rows := make([]string, 0, f.height+1)
	for row := 0; row < f.height; row++ {
		switch {
		case row == thumbRow:
			rows = append(rows, thumbStyle.Render("▬"))
		case row > thumbRow:
			rows = append(rows, fillStyle.Render("┃"))
		default:
			rows = append(rows, trackStyle.Render("│"))
		}
	}
	label := lipgloss.NewStyle().Foreground(look.Text().Secondary).Render(f.label)
	rows = append(rows, label)

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
