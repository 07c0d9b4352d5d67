package theme

// Context carries the ambient theme and layout hints to widgets during
// rendering. Themes propagate by value: a parent renders its children with a
// derived context, so an override applied to a subtree never leaks to
// siblings, and returning to the caller's context is the structural "pop".
//
// The zero value is valid and resolves to the library default, which makes
// reading the ambient theme total: there is no "no theme set" state.
type Context struct {
	theme Theme
	set   bool

	// Width is the horizontal budget suggested by the parent, 0 when
	// unconstrained.
	Width int
}

// DefaultContext returns a context carrying the library default theme.
func DefaultContext() Context {
	return Context{theme: Default(), set: true}
}

// WithTheme returns a derived context with the given theme active.
func (c Context) WithTheme(t Theme) Context {
	if t.Look == nil || t.Feel == nil {
		return c
	}
	c.theme = t
	c.set = true
	return c
}

// WithThemeName is WithTheme by registry name; unknown names leave the
// context unchanged so rendering stays total.
func (c Context) WithThemeName(name string) Context {
	t, err := Get(name)
	if err != nil {
		return c
	}
	return c.WithTheme(t)
}

// WithWidth returns a derived context with the given width budget.
func (c Context) WithWidth(width int) Context {
	c.Width = width
	return c
}

// Theme resolves the ambient theme, falling back to the library default.
func (c Context) Theme() Theme {
	if !c.set {
		return Default()
	}
	return c.theme
}

// Look is shorthand for Theme().Look.
func (c Context) Look() Look { return c.Theme().Look }

// Feel is shorthand for Theme().Feel.
func (c Context) Feel() Feel { return c.Theme().Feel }
