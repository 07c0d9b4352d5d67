package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sndkit/audiotui/internal/theme"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "audiotui")
	assert.Contains(t, out, "commit:")
}

func TestThemesCommandListsRegistry(t *testing.T) {
	out, err := execute(t, "themes")
	require.NoError(t, err)

	for _, name := range theme.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "feel: minimal")
	assert.Contains(t, out, "feel: neumorphic")
}

func TestPreviewCommandRendersGallery(t *testing.T) {
	out, err := execute(t, "preview", "ocean", "--width", "120")
	require.NoError(t, err)
	assert.Contains(t, out, "CHANNEL STRIP")
	assert.Contains(t, out, "GAIN")
	assert.Contains(t, out, "MAIN")
}

func TestPreviewCommandUnknownTheme(t *testing.T) {
	_, err := execute(t, "preview", "vaporwave")
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestPreviewCommandBadPaletteFlag(t *testing.T) {
	_, err := execute(t, "preview", "--palette", "/does/not/exist.yaml")
	require.Error(t, err)
}

func TestRenderGallery(t *testing.T) {
	plain, err := renderGallery("studio-pro", 0, false)
	require.NoError(t, err)
	assert.Contains(t, plain, "PLAY")
	assert.Contains(t, plain, "CH1")

	pressed, err := renderGallery("studio-pro", 0, true)
	require.NoError(t, err)
	assert.NotEqual(t, plain, pressed, "pressed transport renders differently")

	_, err = renderGallery("vaporwave", 0, false)
	require.Error(t, err)
}

func TestRenderGalleryDeterministic(t *testing.T) {
	a, err := renderGallery("midnight", 100, false)
	require.NoError(t, err)
	b, err := renderGallery("midnight", 100, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDemoSamplesStayInRange(t *testing.T) {
	samples := demoSamples()
	require.NotEmpty(t, samples)
	for _, s := range samples {
		assert.LessOrEqual(t, s, 1.0)
		assert.GreaterOrEqual(t, s, -1.0)
	}
}

func TestSwatchUsesSignatureColors(t *testing.T) {
	a := swatch(theme.AudioUI())
	b := swatch(theme.Mono())
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, strings.TrimSpace(a))
}
