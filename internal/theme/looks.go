package theme

// Built-in palettes. These are pure data: each palette is constructed once,
// shared by value through the registry, and never mutated. Looks stay
// presentational; anything behavioral lives in a Feel.

func builtinLooks() []Look {
	return []Look{
		AudioUI(),
		StudioPro(),
		Midnight(),
		Ocean(),
		Sunset(),
		Forest(),
		Neon(),
		Retro(),
		Cosmic(),
		Mono(),
		Cream(),
		Aurora(),
		Glacier(),
	}
}

// AudioUI is the flagship palette: neutral dark surfaces with a calm blue
// brand ramp.
func AudioUI() Look {
	return Palette{
		ID: "audioui",
		SurfaceColors: SurfaceColors{
			Primary:   "#0f1115",
			Secondary: "#161a21",
			Tertiary:  "#1d222c",
			Elevated:  "#232937",
			Deep:      "#0a0c10",
			Raised:    "#2b3242",
		},
		BrandColors: BrandColors{
			Primary:    "#4f8cff",
			Secondary:  "#6ea1ff",
			Tertiary:   "#8db5ff",
			Quaternary: "#3a6fd8",
			Quinary:    "#2b56ad",
			Accent:     "#58e1c2",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#3a4356",
			Hover:    "#4a5570",
			Focus:    "#4f8cff",
			Pressed:  "#2b56ad",
			Active:   "#58e1c2",
			Disabled: "#262c38",
		},
		TextColors: TextColors{
			Primary:   "#e8ecf4",
			Secondary: "#a8b2c4",
			Tertiary:  "#6b7a8a",
			Disabled:  "#4a5264",
			Inverse:   "#0f1115",
			Accent:    "#8db5ff",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#05060a",
			ShadowLight: "#343d50",
			GlowPrimary: "#4f8cff",
			GlowAccent:  "#58e1c2",
			Highlight:   "#f0f4ff",
			Overlay:     "#10131a",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#2b3242",
			KnobIndicator: "#4f8cff",
			SliderTrack:   "#242b3a",
			SliderFill:    "#4f8cff",
			SliderThumb:   "#e8ecf4",
			ButtonFace:    "#2a3143",
			ButtonEdge:    "#3a4356",
			ToggleOn:      "#58e1c2",
			ToggleOff:     "#3a4356",
		},
		PadColors: PadColors{
			Idle:     "#232937",
			Active:   "#4f8cff",
			Pressed:  "#2b56ad",
			Rim:      "#3a4356",
			GridLine: "#1d222c",
			Velocity: "#58e1c2",
		},
		MeterColors: MeterColors{
			Low:        "#3ddc84",
			Mid:        "#c9e34b",
			High:       "#ffb02e",
			Peak:       "#ff7847",
			Clip:       "#ff4d4d",
			Background: "#161a21",
			Tick:       "#3a4356",
			RMS:        "#2e9e64",
		},
		StateColors: StateColors{
			Success: "#3ddc84",
			Warning: "#ffb02e",
			Danger:  "#ff4d4d",
			Info:    "#4f8cff",
			Muted:   "#6b7a8a",
			Neutral: "#a8b2c4",
		},
		WaveColors: WaveColors{
			Waveform:     "#4f8cff",
			WaveformFill: "#2b56ad",
			Spectrum:     "#58e1c2",
			SpectrumPeak: "#8df0dc",
			Grid:         "#1d222c",
			Cursor:       "#f0f4ff",
			Playhead:     "#ffb02e",
		},
	}
}

// StudioPro is a deep charcoal console palette with amber accents, tuned
// for long sessions in dark rooms.
func StudioPro() Look {
	return Palette{
		ID: "studio-pro",
		SurfaceColors: SurfaceColors{
			Primary:   "#15130f",
			Secondary: "#1c1915",
			Tertiary:  "#24201a",
			Elevated:  "#2c2720",
			Deep:      "#0e0d0a",
			Raised:    "#363024",
		},
		BrandColors: BrandColors{
			Primary:    "#e8a33d",
			Secondary:  "#f0b761",
			Tertiary:   "#f7ca85",
			Quaternary: "#c0842c",
			Quinary:    "#96661f",
			Accent:     "#d96c4f",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#4a4335",
			Hover:    "#5c5342",
			Focus:    "#e8a33d",
			Pressed:  "#96661f",
			Active:   "#d96c4f",
			Disabled: "#2c2720",
		},
		TextColors: TextColors{
			Primary:   "#f2ead9",
			Secondary: "#c2b79f",
			Tertiary:  "#8d8372",
			Disabled:  "#5c5648",
			Inverse:   "#15130f",
			Accent:    "#f0b761",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#080705",
			ShadowLight: "#473f31",
			GlowPrimary: "#e8a33d",
			GlowAccent:  "#d96c4f",
			Highlight:   "#fff6e3",
			Overlay:     "#14110d",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#363024",
			KnobIndicator: "#e8a33d",
			SliderTrack:   "#2c2720",
			SliderFill:    "#e8a33d",
			SliderThumb:   "#f2ead9",
			ButtonFace:    "#332d23",
			ButtonEdge:    "#4a4335",
			ToggleOn:      "#d96c4f",
			ToggleOff:     "#4a4335",
		},
		PadColors: PadColors{
			Idle:     "#2c2720",
			Active:   "#e8a33d",
			Pressed:  "#96661f",
			Rim:      "#4a4335",
			GridLine: "#24201a",
			Velocity: "#d96c4f",
		},
		MeterColors: MeterColors{
			Low:        "#8fc93a",
			Mid:        "#d3d83a",
			High:       "#f2b53a",
			Peak:       "#ef7f3a",
			Clip:       "#e84545",
			Background: "#1c1915",
			Tick:       "#4a4335",
			RMS:        "#6e9c2d",
		},
		StateColors: StateColors{
			Success: "#8fc93a",
			Warning: "#f2b53a",
			Danger:  "#e84545",
			Info:    "#5fa8d3",
			Muted:   "#8d8372",
			Neutral: "#c2b79f",
		},
		WaveColors: WaveColors{
			Waveform:     "#e8a33d",
			WaveformFill: "#96661f",
			Spectrum:     "#d96c4f",
			SpectrumPeak: "#f2a98d",
			Grid:         "#24201a",
			Cursor:       "#fff6e3",
			Playhead:     "#f2b53a",
		},
	}
}

// Midnight is near-black with indigo accents.
func Midnight() Look {
	return Palette{
		ID: "midnight",
		SurfaceColors: SurfaceColors{
			Primary:   "#0a0a12",
			Secondary: "#10101c",
			Tertiary:  "#161626",
			Elevated:  "#1d1d30",
			Deep:      "#060609",
			Raised:    "#26263e",
		},
		BrandColors: BrandColors{
			Primary:    "#7c6cff",
			Secondary:  "#968aff",
			Tertiary:   "#b0a7ff",
			Quaternary: "#6253cc",
			Quinary:    "#4a3f99",
			Accent:     "#ff6cab",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#32324e",
			Hover:    "#414166",
			Focus:    "#7c6cff",
			Pressed:  "#4a3f99",
			Active:   "#ff6cab",
			Disabled: "#1d1d30",
		},
		TextColors: TextColors{
			Primary:   "#e6e4f4",
			Secondary: "#a6a3c2",
			Tertiary:  "#6d6b8c",
			Disabled:  "#47455e",
			Inverse:   "#0a0a12",
			Accent:    "#b0a7ff",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#030306",
			ShadowLight: "#38385a",
			GlowPrimary: "#7c6cff",
			GlowAccent:  "#ff6cab",
			Highlight:   "#f1efff",
			Overlay:     "#0d0d16",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#26263e",
			KnobIndicator: "#7c6cff",
			SliderTrack:   "#1c1c2e",
			SliderFill:    "#7c6cff",
			SliderThumb:   "#e6e4f4",
			ButtonFace:    "#232338",
			ButtonEdge:    "#32324e",
			ToggleOn:      "#ff6cab",
			ToggleOff:     "#32324e",
		},
		PadColors: PadColors{
			Idle:     "#1d1d30",
			Active:   "#7c6cff",
			Pressed:  "#4a3f99",
			Rim:      "#32324e",
			GridLine: "#161626",
			Velocity: "#ff6cab",
		},
		MeterColors: MeterColors{
			Low:        "#4de0a8",
			Mid:        "#b8e04d",
			High:       "#e0b84d",
			Peak:       "#e0784d",
			Clip:       "#e04d6a",
			Background: "#10101c",
			Tick:       "#32324e",
			RMS:        "#35a87c",
		},
		StateColors: StateColors{
			Success: "#4de0a8",
			Warning: "#e0b84d",
			Danger:  "#e04d6a",
			Info:    "#7c6cff",
			Muted:   "#6d6b8c",
			Neutral: "#a6a3c2",
		},
		WaveColors: WaveColors{
			Waveform:     "#7c6cff",
			WaveformFill: "#4a3f99",
			Spectrum:     "#ff6cab",
			SpectrumPeak: "#ffa3cb",
			Grid:         "#161626",
			Cursor:       "#f1efff",
			Playhead:     "#e0b84d",
		},
	}
}

// Ocean is a deep blue palette with teal and cyan accents.
func Ocean() Look {
	return Palette{
		ID: "ocean",
		SurfaceColors: SurfaceColors{
			Primary:   "#07131f",
			Secondary: "#0b1c2c",
			Tertiary:  "#10263a",
			Elevated:  "#153048",
			Deep:      "#040b13",
			Raised:    "#1c3c57",
		},
		BrandColors: BrandColors{
			Primary:    "#29b6d8",
			Secondary:  "#4fc6e2",
			Tertiary:   "#7ad5ea",
			Quaternary: "#1e93b0",
			Quinary:    "#156e85",
			Accent:     "#5eead4",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#1e3e56",
			Hover:    "#28506e",
			Focus:    "#29b6d8",
			Pressed:  "#156e85",
			Active:   "#5eead4",
			Disabled: "#122a3d",
		},
		TextColors: TextColors{
			Primary:   "#e2f1f8",
			Secondary: "#9fc2d4",
			Tertiary:  "#62869c",
			Disabled:  "#3e586a",
			Inverse:   "#07131f",
			Accent:    "#7ad5ea",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#02070c",
			ShadowLight: "#234a66",
			GlowPrimary: "#29b6d8",
			GlowAccent:  "#5eead4",
			Highlight:   "#ecfbff",
			Overlay:     "#081521",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#1c3c57",
			KnobIndicator: "#29b6d8",
			SliderTrack:   "#122a3d",
			SliderFill:    "#29b6d8",
			SliderThumb:   "#e2f1f8",
			ButtonFace:    "#163349",
			ButtonEdge:    "#1e3e56",
			ToggleOn:      "#5eead4",
			ToggleOff:     "#1e3e56",
		},
		PadColors: PadColors{
			Idle:     "#153048",
			Active:   "#29b6d8",
			Pressed:  "#156e85",
			Rim:      "#1e3e56",
			GridLine: "#10263a",
			Velocity: "#5eead4",
		},
		MeterColors: MeterColors{
			Low:        "#3ecf8e",
			Mid:        "#a8d84d",
			High:       "#e8c14d",
			Peak:       "#ef8b4d",
			Clip:       "#ef5350",
			Background: "#0b1c2c",
			Tick:       "#1e3e56",
			RMS:        "#2c9c6c",
		},
		StateColors: StateColors{
			Success: "#3ecf8e",
			Warning: "#e8c14d",
			Danger:  "#ef5350",
			Info:    "#29b6d8",
			Muted:   "#62869c",
			Neutral: "#9fc2d4",
		},
		WaveColors: WaveColors{
			Waveform:     "#29b6d8",
			WaveformFill: "#156e85",
			Spectrum:     "#5eead4",
			SpectrumPeak: "#a9f5e7",
			Grid:         "#10263a",
			Cursor:       "#ecfbff",
			Playhead:     "#e8c14d",
		},
	}
}

// Sunset is warm dusk gradients: plum surfaces, orange and pink accents.
func Sunset() Look {
	return Palette{
		ID: "sunset",
		SurfaceColors: SurfaceColors{
			Primary:   "#1a0f16",
			Secondary: "#241420",
			Tertiary:  "#2f1a2a",
			Elevated:  "#3a2134",
			Deep:      "#110a0f",
			Raised:    "#47283f",
		},
		BrandColors: BrandColors{
			Primary:    "#ff8c42",
			Secondary:  "#ffa45e",
			Tertiary:   "#ffbc7d",
			Quaternary: "#d86f2e",
			Quinary:    "#ad5521",
			Accent:     "#ff5e8a",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#54304a",
			Hover:    "#693d5d",
			Focus:    "#ff8c42",
			Pressed:  "#ad5521",
			Active:   "#ff5e8a",
			Disabled: "#2f1a2a",
		},
		TextColors: TextColors{
			Primary:   "#f8e9ef",
			Secondary: "#d0aebe",
			Tertiary:  "#95707f",
			Disabled:  "#61485a",
			Inverse:   "#1a0f16",
			Accent:    "#ffbc7d",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#0a0508",
			ShadowLight: "#56334c",
			GlowPrimary: "#ff8c42",
			GlowAccent:  "#ff5e8a",
			Highlight:   "#fff1e8",
			Overlay:     "#170d13",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#47283f",
			KnobIndicator: "#ff8c42",
			SliderTrack:   "#2a1726",
			SliderFill:    "#ff8c42",
			SliderThumb:   "#f8e9ef",
			ButtonFace:    "#3b2235",
			ButtonEdge:    "#54304a",
			ToggleOn:      "#ff5e8a",
			ToggleOff:     "#54304a",
		},
		PadColors: PadColors{
			Idle:     "#3a2134",
			Active:   "#ff8c42",
			Pressed:  "#ad5521",
			Rim:      "#54304a",
			GridLine: "#2f1a2a",
			Velocity: "#ff5e8a",
		},
		MeterColors: MeterColors{
			Low:        "#7ece6a",
			Mid:        "#d1ce4a",
			High:       "#ffb13d",
			Peak:       "#ff7d3d",
			Clip:       "#ff4060",
			Background: "#241420",
			Tick:       "#54304a",
			RMS:        "#5d9e4e",
		},
		StateColors: StateColors{
			Success: "#7ece6a",
			Warning: "#ffb13d",
			Danger:  "#ff4060",
			Info:    "#5fa8d3",
			Muted:   "#95707f",
			Neutral: "#d0aebe",
		},
		WaveColors: WaveColors{
			Waveform:     "#ff8c42",
			WaveformFill: "#ad5521",
			Spectrum:     "#ff5e8a",
			SpectrumPeak: "#ffa0ba",
			Grid:         "#2f1a2a",
			Cursor:       "#fff1e8",
			Playhead:     "#ffb13d",
		},
	}
}

// Forest is mossy greens over loam-dark surfaces.
func Forest() Look {
	return Palette{
		ID: "forest",
		SurfaceColors: SurfaceColors{
			Primary:   "#0e140e",
			Secondary: "#131c13",
			Tertiary:  "#1a261a",
			Elevated:  "#203020",
			Deep:      "#080d08",
			Raised:    "#2a3d2a",
		},
		BrandColors: BrandColors{
			Primary:    "#6fbf4f",
			Secondary:  "#8ccd72",
			Tertiary:   "#a9db95",
			Quaternary: "#57a03c",
			Quinary:    "#417c2c",
			Accent:     "#d7c94a",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#314831",
			Hover:    "#3f5c3f",
			Focus:    "#6fbf4f",
			Pressed:  "#417c2c",
			Active:   "#d7c94a",
			Disabled: "#203020",
		},
		TextColors: TextColors{
			Primary:   "#e9f2e6",
			Secondary: "#b3c6ad",
			Tertiary:  "#76906f",
			Disabled:  "#4d5f49",
			Inverse:   "#0e140e",
			Accent:    "#a9db95",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#040704",
			ShadowLight: "#3a543a",
			GlowPrimary: "#6fbf4f",
			GlowAccent:  "#d7c94a",
			Highlight:   "#f3fbef",
			Overlay:     "#0d120d",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#2a3d2a",
			KnobIndicator: "#6fbf4f",
			SliderTrack:   "#1d2b1d",
			SliderFill:    "#6fbf4f",
			SliderThumb:   "#e9f2e6",
			ButtonFace:    "#243524",
			ButtonEdge:    "#314831",
			ToggleOn:      "#d7c94a",
			ToggleOff:     "#314831",
		},
		PadColors: PadColors{
			Idle:     "#203020",
			Active:   "#6fbf4f",
			Pressed:  "#417c2c",
			Rim:      "#314831",
			GridLine: "#1a261a",
			Velocity: "#d7c94a",
		},
		MeterColors: MeterColors{
			Low:        "#6fbf4f",
			Mid:        "#b9cf43",
			High:       "#e3c23c",
			Peak:       "#e6893b",
			Clip:       "#e04f44",
			Background: "#131c13",
			Tick:       "#314831",
			RMS:        "#528c3a",
		},
		StateColors: StateColors{
			Success: "#6fbf4f",
			Warning: "#e3c23c",
			Danger:  "#e04f44",
			Info:    "#4f9ecf",
			Muted:   "#76906f",
			Neutral: "#b3c6ad",
		},
		WaveColors: WaveColors{
			Waveform:     "#6fbf4f",
			WaveformFill: "#417c2c",
			Spectrum:     "#d7c94a",
			SpectrumPeak: "#e9e08e",
			Grid:         "#1a261a",
			Cursor:       "#f3fbef",
			Playhead:     "#e3c23c",
		},
	}
}

// Neon is pure black with electric magenta and green.
func Neon() Look {
	return Palette{
		ID: "neon",
		SurfaceColors: SurfaceColors{
			Primary:   "#000000",
			Secondary: "#0a0a0a",
			Tertiary:  "#141414",
			Elevated:  "#1c1c1c",
			Deep:      "#000000",
			Raised:    "#262626",
		},
		BrandColors: BrandColors{
			Primary:    "#ff2ec4",
			Secondary:  "#ff5cd2",
			Tertiary:   "#ff8ae0",
			Quaternary: "#cc259d",
			Quinary:    "#991c76",
			Accent:     "#39ff88",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#2e2e2e",
			Hover:    "#3d3d3d",
			Focus:    "#ff2ec4",
			Pressed:  "#991c76",
			Active:   "#39ff88",
			Disabled: "#1c1c1c",
		},
		TextColors: TextColors{
			Primary:   "#f2f2f2",
			Secondary: "#bdbdbd",
			Tertiary:  "#858585",
			Disabled:  "#545454",
			Inverse:   "#000000",
			Accent:    "#ff8ae0",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#000000",
			ShadowLight: "#383838",
			GlowPrimary: "#ff2ec4",
			GlowAccent:  "#39ff88",
			Highlight:   "#ffffff",
			Overlay:     "#0d0d0d",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#262626",
			KnobIndicator: "#ff2ec4",
			SliderTrack:   "#1a1a1a",
			SliderFill:    "#ff2ec4",
			SliderThumb:   "#f2f2f2",
			ButtonFace:    "#222222",
			ButtonEdge:    "#2e2e2e",
			ToggleOn:      "#39ff88",
			ToggleOff:     "#2e2e2e",
		},
		PadColors: PadColors{
			Idle:     "#1c1c1c",
			Active:   "#ff2ec4",
			Pressed:  "#991c76",
			Rim:      "#2e2e2e",
			GridLine: "#141414",
			Velocity: "#39ff88",
		},
		MeterColors: MeterColors{
			Low:        "#39ff88",
			Mid:        "#b6ff39",
			High:       "#ffe439",
			Peak:       "#ff9439",
			Clip:       "#ff3948",
			Background: "#0a0a0a",
			Tick:       "#2e2e2e",
			RMS:        "#2bbf66",
		},
		StateColors: StateColors{
			Success: "#39ff88",
			Warning: "#ffe439",
			Danger:  "#ff3948",
			Info:    "#39c4ff",
			Muted:   "#858585",
			Neutral: "#bdbdbd",
		},
		WaveColors: WaveColors{
			Waveform:     "#ff2ec4",
			WaveformFill: "#991c76",
			Spectrum:     "#39ff88",
			SpectrumPeak: "#8dffba",
			Grid:         "#141414",
			Cursor:       "#ffffff",
			Playhead:     "#ffe439",
		},
	}
}

// Retro is tape-machine beige and burnt orange, brighter than the rest
// of the dark catalog.
func Retro() Look {
	return Palette{
		ID: "retro",
		SurfaceColors: SurfaceColors{
			Primary:   "#2b2119",
			Secondary: "#332820",
			Tertiary:  "#3d3027",
			Elevated:  "#47382e",
			Deep:      "#211913",
			Raised:    "#544539",
		},
		BrandColors: BrandColors{
			Primary:    "#e86f2d",
			Secondary:  "#ef8c52",
			Tertiary:   "#f5a878",
			Quaternary: "#c25a22",
			Quinary:    "#964519",
			Accent:     "#8f9e4c",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#5c4c3e",
			Hover:    "#70604d",
			Focus:    "#e86f2d",
			Pressed:  "#964519",
			Active:   "#8f9e4c",
			Disabled: "#47382e",
		},
		TextColors: TextColors{
			Primary:   "#f4e8d8",
			Secondary: "#cdbaa3",
			Tertiary:  "#96846f",
			Disabled:  "#655849",
			Inverse:   "#2b2119",
			Accent:    "#f5a878",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#120d09",
			ShadowLight: "#5e4e3f",
			GlowPrimary: "#e86f2d",
			GlowAccent:  "#8f9e4c",
			Highlight:   "#fdf3e3",
			Overlay:     "#271e17",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#544539",
			KnobIndicator: "#e86f2d",
			SliderTrack:   "#3a2d24",
			SliderFill:    "#e86f2d",
			SliderThumb:   "#f4e8d8",
			ButtonFace:    "#463830",
			ButtonEdge:    "#5c4c3e",
			ToggleOn:      "#8f9e4c",
			ToggleOff:     "#5c4c3e",
		},
		PadColors: PadColors{
			Idle:     "#47382e",
			Active:   "#e86f2d",
			Pressed:  "#964519",
			Rim:      "#5c4c3e",
			GridLine: "#3d3027",
			Velocity: "#8f9e4c",
		},
		MeterColors: MeterColors{
			Low:        "#8f9e4c",
			Mid:        "#c7b93e",
			High:       "#e0993a",
			Peak:       "#db6f35",
			Clip:       "#cc4639",
			Background: "#332820",
			Tick:       "#5c4c3e",
			RMS:        "#6d7a39",
		},
		StateColors: StateColors{
			Success: "#8f9e4c",
			Warning: "#e0993a",
			Danger:  "#cc4639",
			Info:    "#5f93b8",
			Muted:   "#96846f",
			Neutral: "#cdbaa3",
		},
		WaveColors: WaveColors{
			Waveform:     "#e86f2d",
			WaveformFill: "#964519",
			Spectrum:     "#8f9e4c",
			SpectrumPeak: "#c3cf8b",
			Grid:         "#3d3027",
			Cursor:       "#fdf3e3",
			Playhead:     "#e0993a",
		},
	}
}

// Cosmic is deep violet nebula tones.
func Cosmic() Look {
	return Palette{
		ID: "cosmic",
		SurfaceColors: SurfaceColors{
			Primary:   "#120822",
			Secondary: "#18102e",
			Tertiary:  "#20163c",
			Elevated:  "#281c4a",
			Deep:      "#0b0516",
			Raised:    "#32245c",
		},
		BrandColors: BrandColors{
			Primary:    "#a86cff",
			Secondary:  "#bb8aff",
			Tertiary:   "#cda8ff",
			Quaternary: "#8a52d8",
			Quinary:    "#6c3fad",
			Accent:     "#ff7ac8",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#3c2c64",
			Hover:    "#4c387e",
			Focus:    "#a86cff",
			Pressed:  "#6c3fad",
			Active:   "#ff7ac8",
			Disabled: "#281c4a",
		},
		TextColors: TextColors{
			Primary:   "#eee6fa",
			Secondary: "#baa9d8",
			Tertiary:  "#7f6f9e",
			Disabled:  "#54486c",
			Inverse:   "#120822",
			Accent:    "#cda8ff",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#060310",
			ShadowLight: "#42306e",
			GlowPrimary: "#a86cff",
			GlowAccent:  "#ff7ac8",
			Highlight:   "#f7f0ff",
			Overlay:     "#100a1d",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#32245c",
			KnobIndicator: "#a86cff",
			SliderTrack:   "#241a42",
			SliderFill:    "#a86cff",
			SliderThumb:   "#eee6fa",
			ButtonFace:    "#2c2050",
			ButtonEdge:    "#3c2c64",
			ToggleOn:      "#ff7ac8",
			ToggleOff:     "#3c2c64",
		},
		PadColors: PadColors{
			Idle:     "#281c4a",
			Active:   "#a86cff",
			Pressed:  "#6c3fad",
			Rim:      "#3c2c64",
			GridLine: "#20163c",
			Velocity: "#ff7ac8",
		},
		MeterColors: MeterColors{
			Low:        "#52e0b8",
			Mid:        "#b2e052",
			High:       "#e0c852",
			Peak:       "#e08052",
			Clip:       "#e05270",
			Background: "#18102e",
			Tick:       "#3c2c64",
			RMS:        "#3aa888",
		},
		StateColors: StateColors{
			Success: "#52e0b8",
			Warning: "#e0c852",
			Danger:  "#e05270",
			Info:    "#52a8e0",
			Muted:   "#7f6f9e",
			Neutral: "#baa9d8",
		},
		WaveColors: WaveColors{
			Waveform:     "#a86cff",
			WaveformFill: "#6c3fad",
			Spectrum:     "#ff7ac8",
			SpectrumPeak: "#ffb2de",
			Grid:         "#20163c",
			Cursor:       "#f7f0ff",
			Playhead:     "#e0c852",
		},
	}
}

// Mono is strict grayscale for distraction-free work.
func Mono() Look {
	return Palette{
		ID: "mono",
		SurfaceColors: SurfaceColors{
			Primary:   "#101010",
			Secondary: "#181818",
			Tertiary:  "#202020",
			Elevated:  "#282828",
			Deep:      "#0a0a0a",
			Raised:    "#343434",
		},
		BrandColors: BrandColors{
			Primary:    "#d0d0d0",
			Secondary:  "#dcdcdc",
			Tertiary:   "#e8e8e8",
			Quaternary: "#b0b0b0",
			Quinary:    "#8c8c8c",
			Accent:     "#f4f4f4",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#3c3c3c",
			Hover:    "#4a4a4a",
			Focus:    "#d0d0d0",
			Pressed:  "#8c8c8c",
			Active:   "#f4f4f4",
			Disabled: "#282828",
		},
		TextColors: TextColors{
			Primary:   "#ededed",
			Secondary: "#b4b4b4",
			Tertiary:  "#7e7e7e",
			Disabled:  "#545454",
			Inverse:   "#101010",
			Accent:    "#e8e8e8",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#000000",
			ShadowLight: "#454545",
			GlowPrimary: "#d0d0d0",
			GlowAccent:  "#f4f4f4",
			Highlight:   "#ffffff",
			Overlay:     "#141414",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#343434",
			KnobIndicator: "#d0d0d0",
			SliderTrack:   "#242424",
			SliderFill:    "#d0d0d0",
			SliderThumb:   "#ededed",
			ButtonFace:    "#2e2e2e",
			ButtonEdge:    "#3c3c3c",
			ToggleOn:      "#f4f4f4",
			ToggleOff:     "#3c3c3c",
		},
		PadColors: PadColors{
			Idle:     "#282828",
			Active:   "#d0d0d0",
			Pressed:  "#8c8c8c",
			Rim:      "#3c3c3c",
			GridLine: "#202020",
			Velocity: "#f4f4f4",
		},
		MeterColors: MeterColors{
			Low:        "#9e9e9e",
			Mid:        "#b4b4b4",
			High:       "#cacaca",
			Peak:       "#e0e0e0",
			Clip:       "#ffffff",
			Background: "#181818",
			Tick:       "#3c3c3c",
			RMS:        "#848484",
		},
		StateColors: StateColors{
			Success: "#cacaca",
			Warning: "#a8a8a8",
			Danger:  "#e8e8e8",
			Info:    "#b4b4b4",
			Muted:   "#7e7e7e",
			Neutral: "#b4b4b4",
		},
		WaveColors: WaveColors{
			Waveform:     "#d0d0d0",
			WaveformFill: "#8c8c8c",
			Spectrum:     "#f4f4f4",
			SpectrumPeak: "#ffffff",
			Grid:         "#202020",
			Cursor:       "#ffffff",
			Playhead:     "#e0e0e0",
		},
	}
}

// Cream is the light theme: warm paper surfaces with espresso text.
func Cream() Look {
	return Palette{
		ID: "cream",
		SurfaceColors: SurfaceColors{
			Primary:   "#faf5ea",
			Secondary: "#f2ebdc",
			Tertiary:  "#e9e0cd",
			Elevated:  "#fffdf7",
			Deep:      "#efe6d4",
			Raised:    "#e0d5bf",
		},
		BrandColors: BrandColors{
			Primary:    "#b5803c",
			Secondary:  "#c4935a",
			Tertiary:   "#d3a878",
			Quaternary: "#96682e",
			Quinary:    "#774f20",
			Accent:     "#4c8577",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#d8cbb2",
			Hover:    "#cbbb9e",
			Focus:    "#b5803c",
			Pressed:  "#774f20",
			Active:   "#4c8577",
			Disabled: "#e9e0cd",
		},
		TextColors: TextColors{
			Primary:   "#3a2f22",
			Secondary: "#6b5c46",
			Tertiary:  "#97876c",
			Disabled:  "#bdb096",
			Inverse:   "#faf5ea",
			Accent:    "#96682e",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#c9bda4",
			ShadowLight: "#fffdf7",
			GlowPrimary: "#b5803c",
			GlowAccent:  "#4c8577",
			Highlight:   "#ffffff",
			Overlay:     "#f4eee0",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#e0d5bf",
			KnobIndicator: "#b5803c",
			SliderTrack:   "#e6dcc8",
			SliderFill:    "#b5803c",
			SliderThumb:   "#3a2f22",
			ButtonFace:    "#ece3d1",
			ButtonEdge:    "#d8cbb2",
			ToggleOn:      "#4c8577",
			ToggleOff:     "#d8cbb2",
		},
		PadColors: PadColors{
			Idle:     "#efe6d4",
			Active:   "#b5803c",
			Pressed:  "#774f20",
			Rim:      "#d8cbb2",
			GridLine: "#e9e0cd",
			Velocity: "#4c8577",
		},
		MeterColors: MeterColors{
			Low:        "#5a9e4a",
			Mid:        "#a3a33c",
			High:       "#cc8f33",
			Peak:       "#c96a2e",
			Clip:       "#bc4637",
			Background: "#f2ebdc",
			Tick:       "#d8cbb2",
			RMS:        "#44773a",
		},
		StateColors: StateColors{
			Success: "#5a9e4a",
			Warning: "#cc8f33",
			Danger:  "#bc4637",
			Info:    "#3e7ca6",
			Muted:   "#97876c",
			Neutral: "#6b5c46",
		},
		WaveColors: WaveColors{
			Waveform:     "#b5803c",
			WaveformFill: "#774f20",
			Spectrum:     "#4c8577",
			SpectrumPeak: "#87b3a8",
			Grid:         "#e9e0cd",
			Cursor:       "#3a2f22",
			Playhead:     "#cc8f33",
		},
	}
}

// Aurora is polar-night teal with green and violet shimmer.
func Aurora() Look {
	return Palette{
		ID: "aurora",
		SurfaceColors: SurfaceColors{
			Primary:   "#0b1418",
			Secondary: "#101d22",
			Tertiary:  "#16272e",
			Elevated:  "#1c313a",
			Deep:      "#070d10",
			Raised:    "#243e49",
		},
		BrandColors: BrandColors{
			Primary:    "#47d0a0",
			Secondary:  "#6cdab4",
			Tertiary:   "#92e4c8",
			Quaternary: "#36a87e",
			Quinary:    "#28805f",
			Accent:     "#9a7bff",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#27424d",
			Hover:    "#325462",
			Focus:    "#47d0a0",
			Pressed:  "#28805f",
			Active:   "#9a7bff",
			Disabled: "#1c313a",
		},
		TextColors: TextColors{
			Primary:   "#e5f2ee",
			Secondary: "#a9c4bc",
			Tertiary:  "#6c8983",
			Disabled:  "#475c57",
			Inverse:   "#0b1418",
			Accent:    "#92e4c8",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#030708",
			ShadowLight: "#2c4c58",
			GlowPrimary: "#47d0a0",
			GlowAccent:  "#9a7bff",
			Highlight:   "#effcf7",
			Overlay:     "#0a1114",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#243e49",
			KnobIndicator: "#47d0a0",
			SliderTrack:   "#182a32",
			SliderFill:    "#47d0a0",
			SliderThumb:   "#e5f2ee",
			ButtonFace:    "#1f353f",
			ButtonEdge:    "#27424d",
			ToggleOn:      "#9a7bff",
			ToggleOff:     "#27424d",
		},
		PadColors: PadColors{
			Idle:     "#1c313a",
			Active:   "#47d0a0",
			Pressed:  "#28805f",
			Rim:      "#27424d",
			GridLine: "#16272e",
			Velocity: "#9a7bff",
		},
		MeterColors: MeterColors{
			Low:        "#47d0a0",
			Mid:        "#a4d047",
			High:       "#d0bc47",
			Peak:       "#d07d47",
			Clip:       "#d04758",
			Background: "#101d22",
			Tick:       "#27424d",
			RMS:        "#349878",
		},
		StateColors: StateColors{
			Success: "#47d0a0",
			Warning: "#d0bc47",
			Danger:  "#d04758",
			Info:    "#479ad0",
			Muted:   "#6c8983",
			Neutral: "#a9c4bc",
		},
		WaveColors: WaveColors{
			Waveform:     "#47d0a0",
			WaveformFill: "#28805f",
			Spectrum:     "#9a7bff",
			SpectrumPeak: "#c3b2ff",
			Grid:         "#16272e",
			Cursor:       "#effcf7",
			Playhead:     "#d0bc47",
		},
	}
}

// Glacier is the cool light theme: ice blues on frost white.
func Glacier() Look {
	return Palette{
		ID: "glacier",
		SurfaceColors: SurfaceColors{
			Primary:   "#f2f7fa",
			Secondary: "#e7eff5",
			Tertiary:  "#d9e6ef",
			Elevated:  "#fcfeff",
			Deep:      "#e2ecf3",
			Raised:    "#c8d9e6",
		},
		BrandColors: BrandColors{
			Primary:    "#2f7fb8",
			Secondary:  "#5397c6",
			Tertiary:   "#77afd4",
			Quaternary: "#256896",
			Quinary:    "#1b5074",
			Accent:     "#3aa89a",
		},
		InteractiveState: InteractiveColors{
			Idle:     "#c2d5e2",
			Hover:    "#aec7d9",
			Focus:    "#2f7fb8",
			Pressed:  "#1b5074",
			Active:   "#3aa89a",
			Disabled: "#d9e6ef",
		},
		TextColors: TextColors{
			Primary:   "#1d2c38",
			Secondary: "#46596a",
			Tertiary:  "#74879a",
			Disabled:  "#a4b4c4",
			Inverse:   "#f2f7fa",
			Accent:    "#256896",
		},
		EffectColors: EffectColors{
			ShadowDark:  "#a8bfd0",
			ShadowLight: "#fcfeff",
			GlowPrimary: "#2f7fb8",
			GlowAccent:  "#3aa89a",
			Highlight:   "#ffffff",
			Overlay:     "#edf4f9",
		},
		ControlColors: ControlColors{
			KnobTrack:     "#c8d9e6",
			KnobIndicator: "#2f7fb8",
			SliderTrack:   "#d3e1ec",
			SliderFill:    "#2f7fb8",
			SliderThumb:   "#1d2c38",
			ButtonFace:    "#dce8f1",
			ButtonEdge:    "#c2d5e2",
			ToggleOn:      "#3aa89a",
			ToggleOff:     "#c2d5e2",
		},
		PadColors: PadColors{
			Idle:     "#e2ecf3",
			Active:   "#2f7fb8",
			Pressed:  "#1b5074",
			Rim:      "#c2d5e2",
			GridLine: "#d9e6ef",
			Velocity: "#3aa89a",
		},
		MeterColors: MeterColors{
			Low:        "#44a05e",
			Mid:        "#97a83c",
			High:       "#c28d30",
			Peak:       "#bd6631",
			Clip:       "#b04038",
			Background: "#e7eff5",
			Tick:       "#c2d5e2",
			RMS:        "#337a48",
		},
		StateColors: StateColors{
			Success: "#44a05e",
			Warning: "#c28d30",
			Danger:  "#b04038",
			Info:    "#2f7fb8",
			Muted:   "#74879a",
			Neutral: "#46596a",
		},
		WaveColors: WaveColors{
			Waveform:     "#2f7fb8",
			WaveformFill: "#1b5074",
			Spectrum:     "#3aa89a",
			SpectrumPeak: "#7fccc2",
			Grid:         "#d9e6ef",
			Cursor:       "#1d2c38",
			Playhead:     "#c28d30",
		},
	}
}
