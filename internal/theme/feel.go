package theme

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Feel is an interaction style: a small set of geometry and motion parameters
// plus three decoration transforms that wrap arbitrary rendered content. The
// transforms are pure functions of their inputs; a Feel holds no state, so one
// instance serves every widget in the process.
type Feel interface {
	Name() string

	// Border is the border used for container decoration. A Feel may return
	// lipgloss.Border{} to opt out of borders entirely.
	Border() lipgloss.Border

	// Padding is the horizontal cell padding applied inside containers.
	Padding() int

	// GlowIntensity is the blend amount (0..1) used when deriving glow and
	// pressed-state colors from the Look.
	GlowIntensity() float64

	// Motion declares how widgets animate transitions between interaction
	// states. Every widget using the same Feel shares the same motion, so
	// presses and releases land consistently across the whole surface.
	Motion() MotionSpec

	// ApplyContainer wraps content with this Feel's container decoration
	// using the Look's surface and effect colors.
	ApplyContainer(content string, look Look) string

	// ApplyButton wraps content with button decoration for the given pressed
	// state. Both states must be reachable from each other through the
	// declared Motion.
	ApplyButton(content string, look Look, pressed bool) string

	// ApplyInteractive wraps content with generic active/inactive decoration.
	// The identity transform is a valid choice for either state.
	ApplyInteractive(content string, look Look, active bool) string
}

// MotionSpec declares the spring parameters and settle duration a Feel uses
// for state transitions. Widgets feed it to harmonica to tween press levels.
type MotionSpec struct {
	Frequency float64
	Damping   float64
	Duration  time.Duration
}

// Spring builds a harmonica spring stepping at the given frame rate.
func (m MotionSpec) Spring(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), m.Frequency, m.Damping)
}

// styleFunc transforms a base style using colors from a Look. Feels build
// their transforms by composing these.
type styleFunc func(lipgloss.Style, Look) lipgloss.Style

func compose(fns ...styleFunc) styleFunc {
	return func(base lipgloss.Style, look Look) lipgloss.Style {
		for _, fn := range fns {
			base = fn(base, look)
		}
		return base
	}
}

// Lighten blends a color toward white by amount (0..1). Unparseable colors
// are returned unchanged so decoration stays total.
func Lighten(c lipgloss.Color, amount float64) lipgloss.Color {
	return blend(c, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken blends a color toward black by amount (0..1).
func Darken(c lipgloss.Color, amount float64) lipgloss.Color {
	return blend(c, colorful.Color{}, amount)
}

// Blend mixes two palette colors in Lab space, which keeps midpoints
// perceptually even. Used for meter gradients and velocity shading.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	target, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return blend(from, target, t)
}

func blend(c lipgloss.Color, target colorful.Color, t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	col, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	return lipgloss.Color(col.BlendLab(target, t).Clamped().Hex())
}

// minimalFeel is flat and quiet: thin decoration, fast motion, and no extra
// contrast on the generic interactive state.
type minimalFeel struct{}

// Minimal returns the flat interaction style.
func Minimal() Feel { return minimalFeel{} }

func (minimalFeel) Name() string            { return "minimal" }
func (minimalFeel) Border() lipgloss.Border { return lipgloss.NormalBorder() }
func (minimalFeel) Padding() int            { return 1 }
func (minimalFeel) GlowIntensity() float64  { return 0.25 }

func (minimalFeel) Motion() MotionSpec {
	return MotionSpec{Frequency: 8.0, Damping: 1.0, Duration: 120 * time.Millisecond}
}

func (f minimalFeel) ApplyContainer(content string, look Look) string {
	style := compose(
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.Background(l.Surfaces().Secondary).Foreground(l.Text().Primary)
		},
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.BorderStyle(f.Border()).BorderForeground(l.Surfaces().Raised)
		},
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.Padding(0, f.Padding())
		},
	)(lipgloss.NewStyle(), look)
	return style.Render(content)
}

func (f minimalFeel) ApplyButton(content string, look Look, pressed bool) string {
	style := lipgloss.NewStyle().Padding(0, f.Padding())
	if pressed {
		style = style.
			Background(look.Interactive().Pressed).
			Foreground(look.Text().Inverse)
	} else {
		style = style.
			Background(look.Controls().ButtonFace).
			Foreground(look.Text().Primary)
	}
	return style.Render(content)
}

func (minimalFeel) ApplyInteractive(content string, look Look, active bool) string {
	if !active {
		// Minimal adds no contrast at rest.
		return content
	}
	return lipgloss.NewStyle().
		Foreground(look.Brand().Accent).
		Bold(true).
		Render(content)
}

// neumorphicFeel renders soft raised surfaces: rounded borders tinted with the
// Look's light shadow, glow-derived accents, and slower, springier motion.
type neumorphicFeel struct{}

// Neumorphic returns the soft-surface interaction style.
func Neumorphic() Feel { return neumorphicFeel{} }

func (neumorphicFeel) Name() string            { return "neumorphic" }
func (neumorphicFeel) Border() lipgloss.Border { return lipgloss.RoundedBorder() }
func (neumorphicFeel) Padding() int            { return 2 }
func (neumorphicFeel) GlowIntensity() float64  { return 0.55 }

func (neumorphicFeel) Motion() MotionSpec {
	return MotionSpec{Frequency: 5.0, Damping: 0.7, Duration: 260 * time.Millisecond}
}

func (f neumorphicFeel) ApplyContainer(content string, look Look) string {
	style := compose(
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.Background(l.Surfaces().Elevated).Foreground(l.Text().Primary)
		},
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.BorderStyle(f.Border()).
				BorderForeground(l.Effects().ShadowLight).
				BorderBackground(l.Surfaces().Primary)
		},
		func(s lipgloss.Style, l Look) lipgloss.Style {
			return s.Padding(0, f.Padding())
		},
	)(lipgloss.NewStyle(), look)
	return style.Render(content)
}

func (f neumorphicFeel) ApplyButton(content string, look Look, pressed bool) string {
	face := look.Controls().ButtonFace
	style := lipgloss.NewStyle().
		Padding(0, f.Padding()).
		BorderStyle(f.Border())
	if pressed {
		// Pressed surfaces sink: darker face, dark rim.
		style = style.
			Background(Darken(face, f.GlowIntensity()*0.5)).
			Foreground(look.Text().Primary).
			BorderForeground(look.Effects().ShadowDark)
	} else {
		style = style.
			Background(face).
			Foreground(look.Text().Primary).
			BorderForeground(look.Effects().ShadowLight)
	}
	return style.Render(content)
}

func (f neumorphicFeel) ApplyInteractive(content string, look Look, active bool) string {
	style := lipgloss.NewStyle()
	if active {
		glow := Lighten(look.Effects().GlowPrimary, f.GlowIntensity()*0.3)
		return style.Foreground(glow).Bold(true).Render(content)
	}
	return style.Foreground(look.Text().Secondary).Render(content)
}
