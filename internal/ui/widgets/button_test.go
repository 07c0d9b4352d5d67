package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestButtonRendersThroughFeel(t *testing.T) {
	ctx := theme.DefaultContext()
	look := ctx.Look()
	feel := ctx.Feel()

	button := NewButton("PLAY")
	assert.Equal(t, feel.ApplyButton("PLAY", look, false), button.ViewWithContext(ctx))

	button.WithPressed(true)
	assert.Equal(t, feel.ApplyButton("PLAY", look, true), button.ViewWithContext(ctx))
}

func TestButtonStatesRenderDistinctly(t *testing.T) {
	ctx := theme.DefaultContext()

	idle := NewButton("REC").ViewWithContext(ctx)
	pressed := NewButton("REC").WithPressed(true).ViewWithContext(ctx)
	disabled := NewButton("REC").WithDisabled(true).ViewWithContext(ctx)

	assert.NotEqual(t, idle, pressed)
	assert.NotEqual(t, idle, disabled)
	assert.NotEqual(t, pressed, disabled)
}

func TestButtonDisabledIgnoresPressed(t *testing.T) {
	ctx := theme.DefaultContext()

	a := NewButton("REC").WithDisabled(true).ViewWithContext(ctx)
	b := NewButton("REC").WithDisabled(true).WithPressed(true).ViewWithContext(ctx)
	assert.Equal(t, a, b)
}

func TestButtonDeterministic(t *testing.T) {
	ctx := theme.DefaultContext().WithThemeName("neon-neumorphic")
	button := NewButton("LOOP").WithPressed(true)

	first := button.ViewWithContext(ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, button.ViewWithContext(ctx))
	}
}

func TestToggleIndicator(t *testing.T) {
	ctx := theme.DefaultContext()

	off := NewToggle("MUTE").ViewWithContext(ctx)
	on := NewToggle("MUTE").WithOn(true).ViewWithContext(ctx)

	assert.Contains(t, off, "○")
	assert.Contains(t, on, "●")
	assert.NotEqual(t, off, on)
	assert.True(t, NewToggle("MUTE").WithOn(true).IsOn())
}
