package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/sndkit/audiotui/internal/theme"
)

// PaletteFile is the YAML schema for a user-defined Look. Every color role
// is required and must be a hex color; conformance is checked here, before
// the palette can be registered, so an incomplete Look never exists at
// runtime.
type PaletteFile struct {
	Name string `yaml:"name" validate:"required"`
	Feel string `yaml:"feel"`

	Surfaces    SurfacesSection    `yaml:"surfaces" validate:"required"`
	Brand       BrandSection       `yaml:"brand" validate:"required"`
	Interactive InteractiveSection `yaml:"interactive" validate:"required"`
	Text        TextSection        `yaml:"text" validate:"required"`
	Effects     EffectsSection     `yaml:"effects" validate:"required"`
	Controls    ControlsSection    `yaml:"controls" validate:"required"`
	Pads        PadsSection        `yaml:"pads" validate:"required"`
	Meters      MetersSection      `yaml:"meters" validate:"required"`
	States      StatesSection      `yaml:"states" validate:"required"`
	Waves       WavesSection       `yaml:"waves" validate:"required"`
}

type SurfacesSection struct {
	Primary   string `yaml:"primary" validate:"required,hexcolor"`
	Secondary string `yaml:"secondary" validate:"required,hexcolor"`
	Tertiary  string `yaml:"tertiary" validate:"required,hexcolor"`
	Elevated  string `yaml:"elevated" validate:"required,hexcolor"`
	Deep      string `yaml:"deep" validate:"required,hexcolor"`
	Raised    string `yaml:"raised" validate:"required,hexcolor"`
}

type BrandSection struct {
	Primary    string `yaml:"primary" validate:"required,hexcolor"`
	Secondary  string `yaml:"secondary" validate:"required,hexcolor"`
	Tertiary   string `yaml:"tertiary" validate:"required,hexcolor"`
	Quaternary string `yaml:"quaternary" validate:"required,hexcolor"`
	Quinary    string `yaml:"quinary" validate:"required,hexcolor"`
	Accent     string `yaml:"accent" validate:"required,hexcolor"`
}

type InteractiveSection struct {
	Idle     string `yaml:"idle" validate:"required,hexcolor"`
	Hover    string `yaml:"hover" validate:"required,hexcolor"`
	Focus    string `yaml:"focus" validate:"required,hexcolor"`
	Pressed  string `yaml:"pressed" validate:"required,hexcolor"`
	Active   string `yaml:"active" validate:"required,hexcolor"`
	Disabled string `yaml:"disabled" validate:"required,hexcolor"`
}

type TextSection struct {
	Primary   string `yaml:"primary" validate:"required,hexcolor"`
	Secondary string `yaml:"secondary" validate:"required,hexcolor"`
	Tertiary  string `yaml:"tertiary" validate:"required,hexcolor"`
	Disabled  string `yaml:"disabled" validate:"required,hexcolor"`
	Inverse   string `yaml:"inverse" validate:"required,hexcolor"`
	Accent    string `yaml:"accent" validate:"required,hexcolor"`
}

type EffectsSection struct {
	ShadowDark  string `yaml:"shadow_dark" validate:"required,hexcolor"`
	ShadowLight string `yaml:"shadow_light" validate:"required,hexcolor"`
	GlowPrimary string `yaml:"glow_primary" validate:"required,hexcolor"`
	GlowAccent  string `yaml:"glow_accent" validate:"required,hexcolor"`
	Highlight   string `yaml:"highlight" validate:"required,hexcolor"`
	Overlay     string `yaml:"overlay" validate:"required,hexcolor"`
}

type ControlsSection struct {
	KnobTrack     string `yaml:"knob_track" validate:"required,hexcolor"`
	KnobIndicator string `yaml:"knob_indicator" validate:"required,hexcolor"`
	SliderTrack   string `yaml:"slider_track" validate:"required,hexcolor"`
	SliderFill    string `yaml:"slider_fill" validate:"required,hexcolor"`
	SliderThumb   string `yaml:"slider_thumb" validate:"required,hexcolor"`
	ButtonFace    string `yaml:"button_face" validate:"required,hexcolor"`
	ButtonEdge    string `yaml:"button_edge" validate:"required,hexcolor"`
	ToggleOn      string `yaml:"toggle_on" validate:"required,hexcolor"`
	ToggleOff     string `yaml:"toggle_off" validate:"required,hexcolor"`
}

type PadsSection struct {
	Idle     string `yaml:"idle" validate:"required,hexcolor"`
	Active   string `yaml:"active" validate:"required,hexcolor"`
	Pressed  string `yaml:"pressed" validate:"required,hexcolor"`
	Rim      string `yaml:"rim" validate:"required,hexcolor"`
	GridLine string `yaml:"grid_line" validate:"required,hexcolor"`
	Velocity string `yaml:"velocity" validate:"required,hexcolor"`
}

type MetersSection struct {
	Low        string `yaml:"low" validate:"required,hexcolor"`
	Mid        string `yaml:"mid" validate:"required,hexcolor"`
	High       string `yaml:"high" validate:"required,hexcolor"`
	Peak       string `yaml:"peak" validate:"required,hexcolor"`
	Clip       string `yaml:"clip" validate:"required,hexcolor"`
	Background string `yaml:"background" validate:"required,hexcolor"`
	Tick       string `yaml:"tick" validate:"required,hexcolor"`
	RMS        string `yaml:"rms" validate:"required,hexcolor"`
}

type StatesSection struct {
	Success string `yaml:"success" validate:"required,hexcolor"`
	Warning string `yaml:"warning" validate:"required,hexcolor"`
	Danger  string `yaml:"danger" validate:"required,hexcolor"`
	Info    string `yaml:"info" validate:"required,hexcolor"`
	Muted   string `yaml:"muted" validate:"required,hexcolor"`
	Neutral string `yaml:"neutral" validate:"required,hexcolor"`
}

type WavesSection struct {
	Waveform     string `yaml:"waveform" validate:"required,hexcolor"`
	WaveformFill string `yaml:"waveform_fill" validate:"required,hexcolor"`
	Spectrum     string `yaml:"spectrum" validate:"required,hexcolor"`
	SpectrumPeak string `yaml:"spectrum_peak" validate:"required,hexcolor"`
	Grid         string `yaml:"grid" validate:"required,hexcolor"`
	Cursor       string `yaml:"cursor" validate:"required,hexcolor"`
	Playhead     string `yaml:"playhead" validate:"required,hexcolor"`
}

// ToLook converts a parsed palette file into a theme Look.
func (p PaletteFile) ToLook() theme.Look {
	return theme.Palette{
		ID: p.Name,
		SurfaceColors: theme.SurfaceColors{
			Primary:   lipgloss.Color(p.Surfaces.Primary),
			Secondary: lipgloss.Color(p.Surfaces.Secondary),
			Tertiary:  lipgloss.Color(p.Surfaces.Tertiary),
			Elevated:  lipgloss.Color(p.Surfaces.Elevated),
			Deep:      lipgloss.Color(p.Surfaces.Deep),
			Raised:    lipgloss.Color(p.Surfaces.Raised),
		},
		BrandColors: theme.BrandColors{
			Primary:    lipgloss.Color(p.Brand.Primary),
			Secondary:  lipgloss.Color(p.Brand.Secondary),
			Tertiary:   lipgloss.Color(p.Brand.Tertiary),
			Quaternary: lipgloss.Color(p.Brand.Quaternary),
			Quinary:    lipgloss.Color(p.Brand.Quinary),
			Accent:     lipgloss.Color(p.Brand.Accent),
		},
		InteractiveState: theme.InteractiveColors{
			Idle:     lipgloss.Color(p.Interactive.Idle),
			Hover:    lipgloss.Color(p.Interactive.Hover),
			Focus:    lipgloss.Color(p.Interactive.Focus),
			Pressed:  lipgloss.Color(p.Interactive.Pressed),
			Active:   lipgloss.Color(p.Interactive.Active),
			Disabled: lipgloss.Color(p.Interactive.Disabled),
		},
		TextColors: theme.TextColors{
			Primary:   lipgloss.Color(p.Text.Primary),
			Secondary: lipgloss.Color(p.Text.Secondary),
			Tertiary:  lipgloss.Color(p.Text.Tertiary),
			Disabled:  lipgloss.Color(p.Text.Disabled),
			Inverse:   lipgloss.Color(p.Text.Inverse),
			Accent:    lipgloss.Color(p.Text.Accent),
		},
		EffectColors: theme.EffectColors{
			ShadowDark:  lipgloss.Color(p.Effects.ShadowDark),
			ShadowLight: lipgloss.Color(p.Effects.ShadowLight),
			GlowPrimary: lipgloss.Color(p.Effects.GlowPrimary),
			GlowAccent:  lipgloss.Color(p.Effects.GlowAccent),
			Highlight:   lipgloss.Color(p.Effects.Highlight),
			Overlay:     lipgloss.Color(p.Effects.Overlay),
		},
		ControlColors: theme.ControlColors{
			KnobTrack:     lipgloss.Color(p.Controls.KnobTrack),
			KnobIndicator: lipgloss.Color(p.Controls.KnobIndicator),
			SliderTrack:   lipgloss.Color(p.Controls.SliderTrack),
			SliderFill:    lipgloss.Color(p.Controls.SliderFill),
			SliderThumb:   lipgloss.Color(p.Controls.SliderThumb),
			ButtonFace:    lipgloss.Color(p.Controls.ButtonFace),
			ButtonEdge:    lipgloss.Color(p.Controls.ButtonEdge),
			ToggleOn:      lipgloss.Color(p.Controls.ToggleOn),
			ToggleOff:     lipgloss.Color(p.Controls.ToggleOff),
		},
		PadColors: theme.PadColors{
			Idle:     lipgloss.Color(p.Pads.Idle),
			Active:   lipgloss.Color(p.Pads.Active),
			Pressed:  lipgloss.Color(p.Pads.Pressed),
			Rim:      lipgloss.Color(p.Pads.Rim),
			GridLine: lipgloss.Color(p.Pads.GridLine),
			Velocity: lipgloss.Color(p.Pads.Velocity),
		},
		MeterColors: theme.MeterColors{
			Low:        lipgloss.Color(p.Meters.Low),
			Mid:        lipgloss.Color(p.Meters.Mid),
			High:       lipgloss.Color(p.Meters.High),
			Peak:       lipgloss.Color(p.Meters.Peak),
			Clip:       lipgloss.Color(p.Meters.Clip),
			Background: lipgloss.Color(p.Meters.Background),
			Tick:       lipgloss.Color(p.Meters.Tick),
			RMS:        lipgloss.Color(p.Meters.RMS),
		},
		StateColors: theme.StateColors{
			Success: lipgloss.Color(p.States.Success),
			Warning: lipgloss.Color(p.States.Warning),
			Danger:  lipgloss.Color(p.States.Danger),
			Info:    lipgloss.Color(p.States.Info),
			Muted:   lipgloss.Color(p.States.Muted),
			Neutral: lipgloss.Color(p.States.Neutral),
		},
		WaveColors: theme.WaveColors{
			Waveform:     lipgloss.Color(p.Waves.Waveform),
			WaveformFill: lipgloss.Color(p.Waves.WaveformFill),
			Spectrum:     lipgloss.Color(p.Waves.Spectrum),
			SpectrumPeak: lipgloss.Color(p.Waves.SpectrumPeak),
			Grid:         lipgloss.Color(p.Waves.Grid),
			Cursor:       lipgloss.Color(p.Waves.Cursor),
			Playhead:     lipgloss.Color(p.Waves.Playhead),
		},
	}
}

// LoadPaletteFile reads, validates and converts a user palette file.
func LoadPaletteFile(path string) (PaletteFile, error) {
	var pf PaletteFile

	data, err := os.ReadFile(path)
	if err != nil {
		return pf, fmt.Errorf("read palette file: %w", err)
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return pf, fmt.Errorf("parse palette file %s: %w", path, err)
	}
	if err := validate.Struct(pf); err != nil {
		return pf, fmt.Errorf("invalid palette file %s: %w", path, err)
	}
	return pf, nil
}

// RegisterPaletteFile loads a palette file and registers it as a theme under
// its own name, paired with the feel it names (minimal when unset).
func RegisterPaletteFile(path string) (string, error) {
	pf, err := LoadPaletteFile(path)
	if err != nil {
		return "", err
	}
	feel, err := theme.FeelByName(pf.Feel)
	if err != nil {
		return "", fmt.Errorf("palette file %s: %w", path, err)
	}
	t, err := theme.New(pf.ToLook(), feel)
	if err != nil {
		return "", err
	}
	if err := theme.Register(pf.Name, t); err != nil {
		return "", err
	}
	return pf.Name, nil
}
