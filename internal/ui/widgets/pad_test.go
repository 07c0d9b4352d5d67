package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestXYPadCursor(t *testing.T) {
	out := NewXYPad(13, 5).WithPosition(0.5, 0.5).View()
	assert.Equal(t, 1, strings.Count(out, "◉"), "exactly one cursor")
	assert.Equal(t, 13*5-1, strings.Count(out, "·"))
}

func TestXYPadOriginBottomLeft(t *testing.T) {
	pad := NewXYPad(5, 5)

	// y=0 is the bottom row.
	bottom := pad.WithPosition(0, 0).View()
	lines := strings.Split(bottom, "\n")
	assert.Contains(t, lines[len(lines)-2], "◉", "row above the bottom border")

	top := pad.WithPosition(0, 1).View()
	lines = strings.Split(top, "\n")
	assert.Contains(t, lines[1], "◉", "row below the top border")
}

func TestXYPadClampsInputs(t *testing.T) {
	x, y := NewXYPad(5, 5).WithPosition(-2, 9).Position()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)

	// Degenerate sizes are raised to the minimum grid.
	out := NewXYPad(0, 0).View()
	assert.Equal(t, 1, strings.Count(out, "◉"))
}

func TestDrumPadGrid(t *testing.T) {
	out := NewDrumPad(2, 4).View()

	for i := 1; i <= 8; i++ {
		assert.Contains(t, out, string(rune('0'+i)))
	}
}

func TestDrumPadStates(t *testing.T) {
	pad := NewDrumPad(2, 4).
		WithPad(0, PadPressed, 1).
		WithPad(5, PadActive, 0.6)

	assert.Equal(t, PadPressed, pad.State(0))
	assert.Equal(t, PadActive, pad.State(5))
	assert.Equal(t, PadIdle, pad.State(3))

	// Different states render with different colors.
	idle := NewDrumPad(1, 1).View()
	pressed := NewDrumPad(1, 1).WithPad(0, PadPressed, 1).View()
	assert.NotEqual(t, idle, pressed)
}

func TestDrumPadVelocityShadesActiveColor(t *testing.T) {
	soft := NewDrumPad(1, 1).WithPad(0, PadActive, 0.1).View()
	hard := NewDrumPad(1, 1).WithPad(0, PadActive, 0.9).View()
	assert.NotEqual(t, soft, hard)
}

func TestDrumPadIgnoresOutOfRange(t *testing.T) {
	pad := NewDrumPad(2, 2)
	before := pad.View()

	pad.WithPad(-1, PadPressed, 1).WithPad(99, PadPressed, 1)
	assert.Equal(t, before, pad.View())
	assert.Equal(t, PadIdle, pad.State(-1))
	assert.Equal(t, PadIdle, pad.State(99))
}

func TestWaveformRender(t *testing.T) {
	samples := []float64{0, 0.2, -0.4, 0.6, -0.8, 1, 0.5, 0}
	out := NewWaveform(samples).View()

	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Contains(t, out, "█", "full-scale sample hits the tallest glyph")
	assert.Contains(t, out, "▁", "silence renders the shortest glyph")
}

func TestWaveformBucketsToWidth(t *testing.T) {
	samples := make([]float64, 256)
	for i := range samples {
		samples[i] = 1
	}
	out := NewWaveform(samples).WithWidth(32).View()
	assert.Equal(t, 32, strings.Count(out, "█"))
}

func TestWaveformPlayheadChangesOutput(t *testing.T) {
	samples := []float64{0.5, 0.5, 0.5, 0.5}

	plain := NewWaveform(samples).View()
	withPlayhead := NewWaveform(samples).WithPlayhead(0.5).View()
	assert.NotEqual(t, plain, withPlayhead)
}

func TestWaveformEmpty(t *testing.T) {
	assert.Equal(t, "", NewWaveform(nil).View())
}

func TestWaveformThemeColors(t *testing.T) {
	samples := []float64{0.1, 0.9, 0.1, 0.9}
	wave := NewWaveform(samples)

	a := wave.ViewWithContext(theme.DefaultContext())
	b := wave.ViewWithContext(theme.DefaultContext().WithThemeName("glacier"))
	assert.NotEqual(t, a, b)
}
