package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

const defaultMeterWidth = 24

// LevelMeter is a horizontal level display with a peak-hold marker. Levels
// are normalized 0..1; anything at or above 1 lights the clip indicator.
// Segment colors ramp through the Look's meter colors, blended in Lab space
// so the gradient reads evenly.
type LevelMeter struct {
	label string
	level float64
	peak  float64
	width int
}

// NewLevelMeter creates a meter with the given label.
func NewLevelMeter(label string) *LevelMeter {
	return &LevelMeter{label: label, width: defaultMeterWidth}
}

// WithLevel sets the current level, clamped to 0..1.
func (m *LevelMeter) WithLevel(level float64) *LevelMeter {
	m.level = clamp01(level)
	return m
}

// WithPeak sets the peak-hold position, clamped to 0..1.
func (m *LevelMeter) WithPeak(peak float64) *LevelMeter {
	m.peak = clamp01(peak)
	return m
}

// WithWidth sets the meter width in cells.
func (m *LevelMeter) WithWidth(w int) *LevelMeter {
	if w > 0 {
		m.width = w
	}
	return m
}

// View renders with the default theme.
func (m *LevelMeter) View() string {
	return m.ViewWithContext(defaultContext())
}

// ViewWithContext renders the meter with the ambient Look's meter ramp.
func (m *LevelMeter) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	meters := look.Meters()

	lit := int(m.level * float64(m.width))
	peakCell := int(m.peak * float64(m.width-1))

	var bar strings.Builder
	for i := 0; i < m.width; i++ {
		frac := float64(i) / float64(m.width-1)
		switch {
		case i == peakCell && m.peak > 0:
			bar.WriteString(lipgloss.NewStyle().Foreground(meters.Peak).Render("▮"))
		case i < lit:
			bar.WriteString(lipgloss.NewStyle().Foreground(rampColor(meters, frac)).Render("▮"))
		default:
			bar.WriteString(lipgloss.NewStyle().Foreground(meters.Background).Render("▯"))
		}
	}

	clip := lipgloss.NewStyle().Foreground(meters.Tick).Render("□")
	if m.level >= 1 {
		clip = lipgloss.NewStyle().Foreground(meters.Clip).Bold(true).Render("■")
	}

	label := lipgloss.NewStyle().Foreground(look.Text().Secondary).Render(m.label)
	return label + " " + bar.String() + " " + clip
}

// rampColor maps a position along the meter to the low→mid→high ramp.
func rampColor(meters theme.MeterColors, frac float64) lipgloss.Color {
	switch {
	case frac < 0.5:
		return theme.Blend(meters.Low, meters.Mid, frac/0.5)
	case frac < 0.85:
		return theme.Blend(meters.Mid, meters.High, (frac-0.5)/0.35)
	default:
		return theme.Blend(meters.High, meters.Peak, (frac-0.85)/0.15)
	}
}
