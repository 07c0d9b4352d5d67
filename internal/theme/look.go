package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
)

// Look is a named palette of semantic colors consumed by widgets. A widget
// never hard-codes a literal color; it asks the active Look for a role such as
// "slider fill" or "meter peak" and renders whatever the Look defines.
//
// Every role must be defined. A Look with a missing role is a construction
// defect, caught by Validate at registration time, never a runtime error.
type Look interface {
	Name() string

	Surfaces() SurfaceColors
	Brand() BrandColors
	Interactive() InteractiveColors
	Text() TextColors
	Effects() EffectColors
	Controls() ControlColors
	Pads() PadColors
	Meters() MeterColors
	States() StateColors
	Waves() WaveColors
}

// SurfaceColors are the background layers widgets sit on.
type SurfaceColors struct {
	Primary   lipgloss.Color `validate:"required"`
	Secondary lipgloss.Color `validate:"required"`
	Tertiary  lipgloss.Color `validate:"required"`
	Elevated  lipgloss.Color `validate:"required"`
	Deep      lipgloss.Color `validate:"required"`
	Raised    lipgloss.Color `validate:"required"`
}

// BrandColors carry the palette's identity accents.
type BrandColors struct {
	Primary    lipgloss.Color `validate:"required"`
	Secondary  lipgloss.Color `validate:"required"`
	Tertiary   lipgloss.Color `validate:"required"`
	Quaternary lipgloss.Color `validate:"required"`
	Quinary    lipgloss.Color `validate:"required"`
	Accent     lipgloss.Color `validate:"required"`
}

// InteractiveColors describe control states from idle through disabled.
type InteractiveColors struct {
	Idle     lipgloss.Color `validate:"required"`
	Hover    lipgloss.Color `validate:"required"`
	Focus    lipgloss.Color `validate:"required"`
	Pressed  lipgloss.Color `validate:"required"`
	Active   lipgloss.Color `validate:"required"`
	Disabled lipgloss.Color `validate:"required"`
}

// TextColors cover every text role widgets emit.
type TextColors struct {
	Primary   lipgloss.Color `validate:"required"`
	Secondary lipgloss.Color `validate:"required"`
	Tertiary  lipgloss.Color `validate:"required"`
	Disabled  lipgloss.Color `validate:"required"`
	Inverse   lipgloss.Color `validate:"required"`
	Accent    lipgloss.Color `validate:"required"`
}

// EffectColors feed shadows, glows and overlays.
type EffectColors struct {
	ShadowDark  lipgloss.Color `validate:"required"`
	ShadowLight lipgloss.Color `validate:"required"`
	GlowPrimary lipgloss.Color `validate:"required"`
	GlowAccent  lipgloss.Color `validate:"required"`
	Highlight   lipgloss.Color `validate:"required"`
	Overlay     lipgloss.Color `validate:"required"`
}

// ControlColors style knobs, sliders, buttons and toggles.
type ControlColors struct {
	KnobTrack     lipgloss.Color `validate:"required"`
	KnobIndicator lipgloss.Color `validate:"required"`
	SliderTrack   lipgloss.Color `validate:"required"`
	SliderFill    lipgloss.Color `validate:"required"`
	SliderThumb   lipgloss.Color `validate:"required"`
	ButtonFace    lipgloss.Color `validate:"required"`
	ButtonEdge    lipgloss.Color `validate:"required"`
	ToggleOn      lipgloss.Color `validate:"required"`
	ToggleOff     lipgloss.Color `validate:"required"`
}

// PadColors style drum pads and XY pads.
type PadColors struct {
	Idle     lipgloss.Color `validate:"required"`
	Active   lipgloss.Color `validate:"required"`
	Pressed  lipgloss.Color `validate:"required"`
	Rim      lipgloss.Color `validate:"required"`
	GridLine lipgloss.Color `validate:"required"`
	Velocity lipgloss.Color `validate:"required"`
}

// MeterColors define the level-meter ramp from quiet to clipping.
type MeterColors struct {
	Low        lipgloss.Color `validate:"required"`
	Mid        lipgloss.Color `validate:"required"`
	High       lipgloss.Color `validate:"required"`
	Peak       lipgloss.Color `validate:"required"`
	Clip       lipgloss.Color `validate:"required"`
	Background lipgloss.Color `validate:"required"`
	Tick       lipgloss.Color `validate:"required"`
	RMS        lipgloss.Color `validate:"required"`
}

// StateColors are semantic status colors shared across widgets.
type StateColors struct {
	Success lipgloss.Color `validate:"required"`
	Warning lipgloss.Color `validate:"required"`
	Danger  lipgloss.Color `validate:"required"`
	Info    lipgloss.Color `validate:"required"`
	Muted   lipgloss.Color `validate:"required"`
	Neutral lipgloss.Color `validate:"required"`
}

// WaveColors style waveform and spectrum views.
type WaveColors struct {
	Waveform     lipgloss.Color `validate:"required"`
	WaveformFill lipgloss.Color `validate:"required"`
	Spectrum     lipgloss.Color `validate:"required"`
	SpectrumPeak lipgloss.Color `validate:"required"`
	Grid         lipgloss.Color `validate:"required"`
	Cursor       lipgloss.Color `validate:"required"`
	Playhead     lipgloss.Color `validate:"required"`
}

// Palette is the concrete Look used by every built-in palette and by palettes
// loaded from user config. It is an immutable value: construct it fully, then
// share it freely.
type Palette struct {
	ID               string `validate:"required"`
	SurfaceColors    SurfaceColors
	BrandColors      BrandColors
	InteractiveState InteractiveColors
	TextColors       TextColors
	EffectColors     EffectColors
	ControlColors    ControlColors
	PadColors        PadColors
	MeterColors      MeterColors
	StateColors      StateColors
	WaveColors       WaveColors
}

func (p Palette) Name() string                   { return p.ID }
func (p Palette) Surfaces() SurfaceColors        { return p.SurfaceColors }
func (p Palette) Brand() BrandColors             { return p.BrandColors }
func (p Palette) Interactive() InteractiveColors { return p.InteractiveState }
func (p Palette) Text() TextColors               { return p.TextColors }
func (p Palette) Effects() EffectColors          { return p.EffectColors }
func (p Palette) Controls() ControlColors        { return p.ControlColors }
func (p Palette) Pads() PadColors                { return p.PadColors }
func (p Palette) Meters() MeterColors            { return p.MeterColors }
func (p Palette) States() StateColors            { return p.StateColors }
func (p Palette) Waves() WaveColors              { return p.WaveColors }

var validate = validator.New()

// ValidateLook checks that every color role of a Look is defined. Built-in
// palettes are validated in tests; user-supplied palettes are validated before
// registration.
func ValidateLook(look Look) error {
	if look == nil {
		return fmt.Errorf("look is nil")
	}

	groups := map[string]any{
		"surfaces":    look.Surfaces(),
		"brand":       look.Brand(),
		"interactive": look.Interactive(),
		"text":        look.Text(),
		"effects":     look.Effects(),
		"controls":    look.Controls(),
		"pads":        look.Pads(),
		"meters":      look.Meters(),
		"states":      look.States(),
		"waves":       look.Waves(),
	}

	if look.Name() == "" {
		return fmt.Errorf("look has no name")
	}

	for group, colors := range groups {
		if err := validate.Struct(colors); err != nil {
			return fmt.Errorf("look %q: incomplete %s colors: %w", look.Name(), group, err)
		}
	}

	return nil
}
