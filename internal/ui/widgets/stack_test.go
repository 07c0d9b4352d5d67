package widgets

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/sndkit/audiotui/internal/theme"
)

type literal string

func (l literal) View() string { return string(l) }

func TestVStackJoinsRows(t *testing.T) {
	out := VStack(literal("one"), literal("two"), literal("three")).View()
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestHStackJoinsColumns(t *testing.T) {
	out := HStack(literal("L"), literal("R")).View()
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, 2, lipgloss.Width(out))
}

func TestStackGap(t *testing.T) {
	out := VStack(literal("a"), literal("b")).WithGap(2).View()
	assert.Equal(t, 4, lipgloss.Height(out), "one 2-row gap between two rows")

	// No trailing gap after the last child.
	out = VStack(literal("a")).WithGap(2).View()
	assert.Equal(t, 1, lipgloss.Height(out))
}

func TestStackSkipsNilAndEmptyChildren(t *testing.T) {
	out := VStack(nil, literal(""), literal("solo")).View()
	assert.Equal(t, "solo", out)

	assert.Equal(t, "", VStack().View())
	assert.Equal(t, "", VStack(nil).View())
}

func TestStackPropagatesContext(t *testing.T) {
	ctx := theme.DefaultContext().WithThemeName("sunset")
	button := NewButton("TAP")

	stacked := VStack(button).ViewWithContext(ctx)
	assert.Equal(t, button.ViewWithContext(ctx), stacked)
}

func TestPanelWrapsChildren(t *testing.T) {
	ctx := theme.DefaultContext()
	panel := NewPanel(literal("body")).WithTitle("FILTER")

	out := panel.ViewWithContext(ctx)
	assert.Contains(t, out, "FILTER")
	assert.Contains(t, out, "body")
	// Minimal feel draws a normal border around containers.
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPanelHonorsWidthBudget(t *testing.T) {
	panel := NewPanel(literal("some very long control row content")).WithTitle("BUS")

	free := panel.ViewWithContext(theme.DefaultContext())
	narrow := panel.ViewWithContext(theme.DefaultContext().WithWidth(20))

	assert.Greater(t, lipgloss.Width(free), 20)
	assert.LessOrEqual(t, lipgloss.Width(narrow), 20)
}

func TestPanelAddChaining(t *testing.T) {
	panel := NewPanel().Add(literal("a")).Add(literal("b"), literal("c"))
	out := panel.View()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "c")
}
