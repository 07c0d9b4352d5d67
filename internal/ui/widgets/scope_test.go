package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestScopeOverridesSubtree(t *testing.T) {
	rootCtx := theme.DefaultContext().WithThemeName("studio-pro")
	ocean := theme.MustGet("ocean")

	inner := NewButton("PLAY")
	scoped := Scope(ocean, inner)

	// Inside the scope the button observes ocean, exactly as if ocean were
	// the ambient theme all along.
	want := inner.ViewWithContext(theme.DefaultContext().WithTheme(ocean))
	assert.Equal(t, want, scoped.ViewWithContext(rootCtx))
}

func TestScopeDoesNotLeakToSiblings(t *testing.T) {
	rootCtx := theme.DefaultContext().WithThemeName("studio-pro")
	ocean := theme.MustGet("ocean")

	sibling := NewButton("STOP")
	scoped := Scope(ocean, NewButton("PLAY"))
	_ = scoped.ViewWithContext(rootCtx)

	// Rendering the scoped subtree leaves the sibling's ambient theme alone.
	underRoot := sibling.ViewWithContext(rootCtx)
	assert.Equal(t, underRoot, sibling.ViewWithContext(rootCtx))

	underOcean := sibling.ViewWithContext(rootCtx.WithTheme(ocean))
	assert.NotEqual(t, underOcean, underRoot, "the two palettes must render distinctly")
}

func TestScopeNestsDeepest(t *testing.T) {
	// studio-pro at the root, ocean on an inner panel: the innermost
	// override wins for its subtree.
	inner := NewButton("REC")
	oceanScope := Scope(theme.MustGet("ocean"), inner)
	outerScope := Scope(theme.MustGet("studio-pro"), oceanScope)

	want := inner.ViewWithContext(theme.DefaultContext().WithThemeName("ocean"))
	assert.Equal(t, want, outerScope.View())
}

func TestScopeName(t *testing.T) {
	scoped, err := ScopeName("midnight", NewToggle("MUTE"))
	require.NoError(t, err)
	assert.Equal(t,
		NewToggle("MUTE").ViewWithContext(theme.DefaultContext().WithThemeName("midnight")),
		scoped.View())

	_, err = ScopeName("vaporwave", NewToggle("MUTE"))
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}
