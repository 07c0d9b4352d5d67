package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Theme is an immutable pairing of one Look and one Feel. Both fields are
// always populated; use New to construct one.
type Theme struct {
	Look Look
	Feel Feel
}

// ErrUnknownTheme is returned by Get for names missing from the registry.
// Asking for an unregistered theme is a configuration mistake at the call
// site, not a state this package recovers from.
var ErrUnknownTheme = errors.New("unknown theme")

// New pairs a Look with a Feel. Partial themes are rejected at construction.
func New(look Look, feel Feel) (Theme, error) {
	if look == nil {
		return Theme{}, fmt.Errorf("theme: look is nil")
	}
	if feel == nil {
		return Theme{}, fmt.Errorf("theme: feel is nil")
	}
	return Theme{Look: look, Feel: feel}, nil
}

// MustNew is New for init-time wiring of built-ins.
func MustNew(look Look, feel Feel) Theme {
	t, err := New(look, feel)
	if err != nil {
		panic(err)
	}
	return t
}

type registry struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	aliases map[string]string
}

var reg = newRegistry()

func newRegistry() *registry {
	r := &registry{
		themes:  make(map[string]Theme),
		aliases: make(map[string]string),
	}

	minimal := Minimal()
	neu := Neumorphic()

	// Every built-in Look registers under its own name with the flat feel,
	// and under "<name>-neumorphic" with the soft feel. Both entries share
	// the same Look value, so cross-feel pairings of one palette render
	// identical colors.
	for _, look := range builtinLooks() {
		r.themes[look.Name()] = MustNew(look, minimal)
		r.themes[look.Name()+"-neumorphic"] = MustNew(look, neu)
	}

	// Legacy names kept for compatibility with early adopters.
	r.aliases["default"] = "audioui"
	r.aliases["audiouineumorphic"] = "audioui-neumorphic"
	r.aliases["studio"] = "studio-pro"
	r.aliases["studioproneumorphic"] = "studio-pro-neumorphic"
	r.aliases["dark"] = "midnight"
	r.aliases["monochrome"] = "mono"

	return r
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get resolves a symbolic theme name, following legacy aliases.
func Get(name string) (Theme, error) {
	key := normalize(name)

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	if canonical, ok := reg.aliases[key]; ok {
		key = canonical
	}
	t, ok := reg.themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// MustGet resolves a built-in theme name, panicking on failure. Reserved for
// package wiring where the name is a compile-time constant.
func MustGet(name string) Theme {
	t, err := Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Register adds a theme under the given name, validating the Look first.
// Built-ins cannot be replaced.
func Register(name string, t Theme) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("theme: empty name")
	}
	if t.Look == nil || t.Feel == nil {
		return fmt.Errorf("theme: %q is partial", name)
	}
	if err := ValidateLook(t.Look); err != nil {
		return err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.themes[key]; exists {
		return fmt.Errorf("theme: %q already registered", name)
	}
	if _, exists := reg.aliases[key]; exists {
		return fmt.Errorf("theme: %q already registered as an alias", name)
	}
	reg.themes[key] = t
	return nil
}

// Names returns all canonical theme names, sorted. Aliases are excluded.
func Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.themes))
	for name := range reg.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FeelByName resolves a built-in feel for config files and ad-hoc pairing.
func FeelByName(name string) (Feel, error) {
	switch normalize(name) {
	case "minimal", "":
		return Minimal(), nil
	case "neumorphic":
		return Neumorphic(), nil
	default:
		return nil, fmt.Errorf("unknown feel %q", name)
	}
}

// Default is the library baseline used wherever no theme has been applied.
func Default() Theme {
	return MustGet("audioui")
}
