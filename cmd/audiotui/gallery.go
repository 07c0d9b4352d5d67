package main

import (
	"math"

	"github.com/sndkit/audiotui/internal/theme"
	"github.com/sndkit/audiotui/internal/ui"
	"github.com/sndkit/audiotui/internal/ui/widgets"
)

// buildGallery assembles the demo channel strip shown by the showcase and
// the preview command. All signal values are simulated.
func buildGallery(padPressed bool) ui.ContextualRenderable {
	knobs := widgets.HStack(
		widgets.NewKnob("GAIN").WithValue(0.72),
		widgets.NewKnob("FREQ").WithValue(0.31),
		widgets.NewKnob("RES").WithValue(0.55),
	).WithGap(2)

	faders := widgets.HStack(
		widgets.NewFader("CH1").WithValue(0.85),
		widgets.NewFader("CH2").WithValue(0.62),
		widgets.NewFader("CH3").WithValue(0.40),
		widgets.NewFader("MAIN").WithValue(0.75),
	).WithGap(3)

	meters := widgets.VStack(
		widgets.NewLevelMeter("L").WithLevel(0.78).WithPeak(0.92),
		widgets.NewLevelMeter("R").WithLevel(0.64).WithPeak(0.88),
	)

	pads := widgets.NewDrumPad(2, 4).
		WithPad(0, widgets.PadActive, 0.9).
		WithPad(5, widgets.PadActive, 0.4)
	if padPressed {
		pads.WithPad(2, widgets.PadPressed, 1)
	}

	transport := widgets.HStack(
		widgets.NewButton("PLAY").WithPressed(padPressed),
		widgets.NewButton("STOP"),
		widgets.NewButton("REC"),
		widgets.NewToggle("LOOP").WithOn(true),
		widgets.NewToggle("MUTE"),
	).WithGap(1)

	return widgets.NewPanel(
		transport,
		widgets.HStack(
			widgets.VStack(knobs, pads).WithGap(1),
			faders,
			widgets.VStack(
				widgets.NewXYPad(13, 5).WithPosition(0.7, 0.3),
				meters,
				widgets.NewWaveform(demoSamples()).WithWidth(26).WithPlayhead(0.35),
			).WithGap(1),
		).WithGap(3),
	).WithTitle("CHANNEL STRIP").WithGap(1)
}

// demoSamples synthesizes a decaying sine for the waveform view.
func demoSamples() []float64 {
	samples := make([]float64, 256)
	for i := range samples {
		phase := float64(i) / 16
		decay := 1 - float64(i)/float64(len(samples))
		samples[i] = math.Sin(phase) * decay
	}
	return samples
}

// renderGallery renders the gallery under a named theme. A width of 0 leaves
// the layout unconstrained.
func renderGallery(themeName string, width int, padPressed bool) (string, error) {
	t, err := theme.Get(themeName)
	if err != nil {
		return "", err
	}
	ctx := theme.DefaultContext().WithTheme(t).WithWidth(width)
	return buildGallery(padPressed).ViewWithContext(ctx), nil
}
