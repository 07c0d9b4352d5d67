// Package widgets is the audiotui control catalog: knobs, faders, pads,
// meters and friends. Widgets are theme consumers — they read semantic colors
// from the ambient Look and wrap their geometry with the ambient Feel's
// decoration transforms. Rendering is stateless and deterministic: the same
// widget with the same context always produces the same output.
//
// Every widget implements View(), which renders with the library default
// theme, and ViewWithContext(ctx), which renders with an explicit ambient
// context. Containers propagate their context to children, so a theme applied
// to a subtree is observed by everything inside it and nothing outside it.
package widgets

import "github.com/sndkit/audiotui/internal/theme"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func defaultContext() theme.Context {
	return theme.DefaultContext()
}
