package ui

import "github.com/sndkit/audiotui/internal/theme"

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a Renderable that accepts an ambient theme context.
// Containers render contextual children with a derived context so theme
// overrides scope to the subtree; plain Renderables are rendered as-is.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx theme.Context) string
}

// Render draws a child with the given context when it supports one.
func Render(child Renderable, ctx theme.Context) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
