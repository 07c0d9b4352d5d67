package widgets

import (
	"github.com/sndkit/audiotui/internal/theme"
	"github.com/sndkit/audiotui/internal/ui"
)

// ThemeScope overrides the ambient theme for its child subtree. Widgets
// inside observe the scoped theme; siblings outside keep whatever ancestor
// theme was active, because the override travels only through the derived
// context passed to the child.
type ThemeScope struct {
	theme theme.Theme
	child ui.Renderable
}

// Scope applies a theme to the given subtree.
func Scope(t theme.Theme, child ui.Renderable) *ThemeScope {
	return &ThemeScope{theme: t, child: child}
}

// ScopeName applies a registered theme to the subtree. An unregistered name
// is a configuration error reported here, at the call site.
func ScopeName(name string, child ui.Renderable) (*ThemeScope, error) {
	t, err := theme.Get(name)
	if err != nil {
		return nil, err
	}
	return Scope(t, child), nil
}

// View renders with the scoped theme over the library default.
func (s *ThemeScope) View() string {
	return s.ViewWithContext(defaultContext())
}

// ViewWithContext renders the child with the scoped theme active.
func (s *ThemeScope) ViewWithContext(ctx theme.Context) string {
	return ui.Render(s.child, ctx.WithTheme(s.theme))
}
