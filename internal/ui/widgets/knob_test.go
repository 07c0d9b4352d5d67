package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestKnobClampsValue(t *testing.T) {
	assert.Equal(t, 0.0, NewKnob("GAIN").WithValue(-2).Value())
	assert.Equal(t, 1.0, NewKnob("GAIN").WithValue(7).Value())
	assert.Equal(t, 0.5, NewKnob("GAIN").WithValue(0.5).Value())
}

func TestKnobRender(t *testing.T) {
	out := NewKnob("FREQ").WithValue(0.5).View()

	assert.Equal(t, 3, lipgloss.Height(out), "label, dial, readout")
	assert.Contains(t, out, "FREQ")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "50%")
	assert.Equal(t, 1, strings.Count(out, "●"))
}

func TestKnobReadoutExtremes(t *testing.T) {
	assert.Contains(t, NewKnob("RES").WithValue(0).View(), "0%")
	assert.Contains(t, NewKnob("RES").WithValue(1).View(), "100%")
}

func TestKnobThumbTracksValue(t *testing.T) {
	low := NewKnob("Q").WithValue(0).View()
	high := NewKnob("Q").WithValue(1).View()
	assert.NotEqual(t, low, high)
}

func TestFaderClampsValue(t *testing.T) {
	assert.Equal(t, 0.0, NewFader("CH1").WithValue(-1).Value())
	assert.Equal(t, 1.0, NewFader("CH1").WithValue(2).Value())
}

func TestFaderRender(t *testing.T) {
	out := NewFader("CH1").WithValue(0.5).WithHeight(8).View()

	assert.Equal(t, 9, lipgloss.Height(out), "8 travel rows plus label")
	assert.Contains(t, out, "CH1")
	assert.Equal(t, 1, strings.Count(out, "▬"), "exactly one thumb")
	assert.Equal(t, 3, strings.Count(out, "┃"), "fill below the thumb row")
}

func TestFaderExtremes(t *testing.T) {
	// Zero keeps the thumb on the bottom row with no fill.
	bottom := NewFader("CH2").WithValue(0).View()
	assert.Equal(t, 1, strings.Count(bottom, "▬"))
	assert.Equal(t, 0, strings.Count(bottom, "┃"))

	// Full scale puts the thumb on the top row.
	top := NewFader("CH2").WithValue(1).WithHeight(8).View()
	assert.Equal(t, 1, strings.Count(top, "▬"))
	assert.Equal(t, 7, strings.Count(top, "┃"))
}

func TestFaderThemeAffectsOutput(t *testing.T) {
	fader := NewFader("MAIN").WithValue(0.7)
	a := fader.ViewWithContext(theme.DefaultContext())
	b := fader.ViewWithContext(theme.DefaultContext().WithThemeName("mono"))
	assert.NotEqual(t, a, b)
}
