package theme

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsPartialThemes(t *testing.T) {
	_, err := New(nil, Minimal())
	require.Error(t, err)

	_, err = New(AudioUI(), nil)
	require.Error(t, err)

	theme, err := New(AudioUI(), Minimal())
	require.NoError(t, err)
	assert.Equal(t, "audioui", theme.Look.Name())
	assert.Equal(t, "minimal", theme.Feel.Name())
}

func TestGetResolvesRegisteredNames(t *testing.T) {
	theme, err := Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, "ocean", theme.Look.Name())
	assert.Equal(t, "minimal", theme.Feel.Name())

	theme, err = Get("ocean-neumorphic")
	require.NoError(t, err)
	assert.Equal(t, "ocean", theme.Look.Name())
	assert.Equal(t, "neumorphic", theme.Feel.Name())
}

func TestGetIsDeterministic(t *testing.T) {
	first := MustGet("midnight")
	second := MustGet("midnight")

	// Resolving the same name twice yields themes that decorate identically.
	assert.Equal(t,
		first.Feel.ApplyButton("PLAY", first.Look, true),
		second.Feel.ApplyButton("PLAY", second.Look, true))
	assert.Equal(t,
		first.Feel.ApplyContainer("MIXER", first.Look),
		second.Feel.ApplyContainer("MIXER", second.Look))
}

func TestGetNormalizesNames(t *testing.T) {
	want := MustGet("studio-pro")

	for _, name := range []string{"Studio-Pro", "  studio-pro  ", "STUDIO-PRO"} {
		got, err := Get(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, want, got)
	}
}

func TestGetUnknownTheme(t *testing.T) {
	_, err := Get("vaporwave")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), "vaporwave")
}

func TestAliasesResolveToCanonicalThemes(t *testing.T) {
	cases := map[string]string{
		"default":             "audioui",
		"audioUINeumorphic":   "audioui-neumorphic",
		"studio":              "studio-pro",
		"studioProNeumorphic": "studio-pro-neumorphic",
		"dark":                "midnight",
		"monochrome":          "mono",
	}

	for alias, canonical := range cases {
		viaAlias, err := Get(alias)
		require.NoError(t, err, "alias %q", alias)
		direct := MustGet(canonical)
		assert.Equal(t, direct, viaAlias, "alias %q", alias)
	}
}

func TestAliasEquivalentToExplicitPairing(t *testing.T) {
	viaAlias := MustGet("audioUINeumorphic")
	explicit := MustNew(AudioUI(), Neumorphic())

	assert.Equal(t,
		explicit.Feel.ApplyButton("REC", explicit.Look, false),
		viaAlias.Feel.ApplyButton("REC", viaAlias.Look, false))
	assert.Equal(t,
		explicit.Feel.ApplyContainer("EQ", explicit.Look),
		viaAlias.Feel.ApplyContainer("EQ", viaAlias.Look))
	assert.Equal(t,
		explicit.Feel.ApplyInteractive("LFO", explicit.Look, true),
		viaAlias.Feel.ApplyInteractive("LFO", viaAlias.Look, true))
}

func TestFeelPairingsShareLook(t *testing.T) {
	flat := MustGet("glacier")
	soft := MustGet("glacier-neumorphic")

	// The two feels of one palette reference the same Look value, so color
	// roles agree across pairings.
	assert.Equal(t, flat.Look, soft.Look)
}

func TestRegisterRejectsCollisionsAndPartials(t *testing.T) {
	valid := MustNew(AudioUI(), Minimal())

	assert.Error(t, Register("", valid))
	assert.Error(t, Register("ocean", valid), "built-ins cannot be replaced")
	assert.Error(t, Register("dark", valid), "aliases cannot be shadowed")
	assert.Error(t, Register("half", Theme{Look: AudioUI()}))

	broken := Palette{ID: "broken"}
	assert.Error(t, Register("broken", Theme{Look: broken, Feel: Minimal()}))
}

func TestRegisterThenGet(t *testing.T) {
	custom := AudioUI().(Palette)
	custom.ID = "custom-roundtrip"

	require.NoError(t, Register("Custom-Roundtrip", MustNew(custom, Neumorphic())))
	got, err := Get("custom-roundtrip")
	require.NoError(t, err)
	assert.Equal(t, "custom-roundtrip", got.Look.Name())
	assert.Equal(t, "neumorphic", got.Feel.Name())

	// Second registration under the same name must fail.
	assert.Error(t, Register("custom-roundtrip", MustNew(custom, Minimal())))
}

func TestNamesSortedAndCanonical(t *testing.T) {
	names := Names()

	assert.True(t, sort.StringsAreSorted(names))
	assert.GreaterOrEqual(t, len(names), 26, "13 built-in looks x 2 feels")

	assert.Contains(t, names, "audioui")
	assert.Contains(t, names, "audioui-neumorphic")
	assert.Contains(t, names, "mono")
	assert.NotContains(t, names, "default", "aliases are not canonical names")
	assert.NotContains(t, names, "dark")
}

func TestFeelByName(t *testing.T) {
	feel, err := FeelByName("minimal")
	require.NoError(t, err)
	assert.Equal(t, "minimal", feel.Name())

	feel, err = FeelByName("")
	require.NoError(t, err)
	assert.Equal(t, "minimal", feel.Name())

	feel, err = FeelByName("Neumorphic")
	require.NoError(t, err)
	assert.Equal(t, "neumorphic", feel.Name())

	_, err = FeelByName("brutalist")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	theme := Default()
	assert.Equal(t, "audioui", theme.Look.Name())
	assert.Equal(t, "minimal", theme.Feel.Name())
}
