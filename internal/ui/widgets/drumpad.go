package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

// PadState is the interaction state of a single drum pad.
type PadState int

const (
	PadIdle PadState = iota
	PadActive
	PadPressed
)

// DrumPad is a grid of velocity-sensitive pads. Pad states and velocities
// are local state owned by the caller; velocity shades the active color
// toward the Look's velocity color.
type DrumPad struct {
	rows, cols int
	states     []PadState
	velocities []float64
}

// NewDrumPad creates a rows×cols pad grid, all pads idle.
func NewDrumPad(rows, cols int) *DrumPad {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &DrumPad{
		rows:       rows,
		cols:       cols,
		states:     make([]PadState, rows*cols),
		velocities: make([]float64, rows*cols),
	}
}

// WithPad sets one pad's state and velocity. Out-of-range indices are
// ignored so chained setup stays total.
func (d *DrumPad) WithPad(index int, state PadState, velocity float64) *DrumPad {
	if index < 0 || index >= len(d.states) {
		return d
	}
	d.states[index] = state
	d.velocities[index] = clamp01(velocity)
	return d
}

// State returns the state of one pad.
func (d *DrumPad) State(index int) PadState {
	if index < 0 || index >= len(d.states) {
		return PadIdle
	}
	return d.states[index]
}

// View renders with the default theme.
func (d *DrumPad) View() string {
	return d.ViewWithContext(defaultContext())
}

// ViewWithContext renders the grid with the ambient Look's pad colors.
func (d *DrumPad) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	pads := look.Pads()

	rows := make([]string, 0, d.rows)
	for r := 0; r < d.rows; r++ {
		cells := make([]string, 0, d.cols)
		for c := 0; c < d.cols; c++ {
			i := r*d.cols + c
			cells = append(cells, d.renderPad(i, pads, look))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (d *DrumPad) renderPad(i int, pads theme.PadColors, look theme.Look) string {
	var bg lipgloss.Color
	switch d.states[i] {
	case PadPressed:
		bg = pads.Pressed
	case PadActive:
		bg = theme.Blend(pads.Active, pads.Velocity, d.velocities[i])
	default:
		bg = pads.Idle
	}

	fg := look.Text().Primary
	if d.states[i] != PadIdle {
		fg = look.Text().Inverse
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(pads.Rim).
		Width(4).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%d", i+1))
}
