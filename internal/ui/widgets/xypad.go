package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sndkit/audiotui/internal/theme"
)

// XYPad is a two-axis touch surface. X and Y are normalized 0..1 with the
// origin at the bottom-left, matching how modulation pads read in hardware.
type XYPad struct {
	width  int
	height int
	x      float64
	y      float64
}

// NewXYPad creates a pad with the given grid size.
func NewXYPad(width, height int) *XYPad {
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}
	return &XYPad{width: width, height: height}
}

// WithPosition sets the cursor position, clamped to 0..1 on both axes.
func (p *XYPad) WithPosition(x, y float64) *XYPad {
	p.x = clamp01(x)
	p.y = clamp01(y)
	return p
}

// Position returns the cursor position.
func (p *XYPad) Position() (x, y float64) { return p.x, p.y }

// View renders with the default theme.
func (p *XYPad) View() string {
	return p.ViewWithContext(defaultContext())
}

// ViewWithContext renders the pad with the ambient Look's pad colors.
func (p *XYPad) ViewWithContext(ctx theme.Context) string {
	look := ctx.Look()
	pads := look.Pads()

	cursorCol := int(p.x * float64(p.width-1))
	cursorRow := (p.height - 1) - int(p.y*float64(p.height-1))

	grid := lipgloss.NewStyle().Foreground(pads.GridLine)
	cursor := lipgloss.NewStyle().Foreground(look.Waves().Cursor).Bold(true)

	rows := make([]string, 0, p.height)
	for row := 0; row < p.height; row++ {
		var line strings.Builder
		for col := 0; col < p.width; col++ {
			if row == cursorRow && col == cursorCol {
				line.WriteString(cursor.Render("◉"))
			} else {
				line.WriteString(grid.Render("·"))
			}
		}
		rows = append(rows, line.String())
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(pads.Rim).
		Render(strings.Join(rows, "\n"))
}
