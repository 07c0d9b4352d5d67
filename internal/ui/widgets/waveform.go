package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

var waveGlyphs = []rune("▁▂▃▄▅▆▇█")

// Waveform renders a sample buffer as a single-line amplitude display with an
// optional playhead. Samples are display data only — they pass through
// untouched, no signal processing happens here.
type Waveform struct {
	samples  []float64
	width    int
	playhead float64
	hasPlay  bool
}

// NewWaveform creates a waveform view over the given samples (-1..1).
func NewWaveform(samples []float64) *Waveform {
	return &Waveform{samples: samples, width: len(samples)}
}

// WithWidth sets the display width in columns; samples are bucketed down.
func (w *Waveform) WithWidth(width int) *Waveform {
	if width > 0 {
		w.width = width
	}
	return w
}

// WithPlayhead sets the playhead position, normalized 0..1.
func (w *Waveform) WithPlayhead(pos float64) *Waveform {
	w.playhead = clamp01(pos)
	w.hasPlay = true
	return w
}

// View renders with the default theme.
func (w *Waveform) View() string {
	return w.ViewWithContext(defaultContext())
}

// ViewWithContext renders the waveform with the ambient Look's wave colors.
func (w *Waveform) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	waves := look.Waves()

	if len(w.samples) == 0 || w.width == 0 {
		return ""
	}

	wave := lipgloss.NewStyle().Foreground(waves.Waveform)
	play := lipgloss.NewStyle().Foreground(waves.Playhead).Bold(true)
	playCol := -1
	if w.hasPlay {
		playCol = int(w.playhead * float64(w.width-1))
	}

	var line strings.Builder
	for col := 0; col < w.width; col++ {
		amp := clamp01(abs(w.sampleAt(col)))
		glyph := waveGlyphs[int(amp*float64(len(waveGlyphs)-1))]
		if col == playCol {
			line.WriteString(play.Render(string(glyph)))
		} else {
			line.WriteString(wave.Render(string(glyph)))
		}
	}
	return line.String()
}

// sampleAt reduces the bucket of samples behind a column to its peak.
func (w *Waveform) sampleAt(col int) float64 {
	per := float64(len(w.samples)) / float64(w.width)
	start := int(float64(col) * per)
	end := int(float64(col+1) * per)
	if end <= start {
		end = start + 1
	}
	if end > len(w.samples) {
		end = len(w.samples)
	}
	peak := 0.0
	for _, s := range w.samples[start:end] {
		if a := abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
