package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sndkit/audiotui/internal/config"
	"github.com/sndkit/audiotui/internal/logger"
	"github.com/sndkit/audiotui/internal/theme"
	"github.com/sndkit/audiotui/internal/ui"
)

type keyMap struct {
	Apply key.Binding
	Hit   key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Hit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Hit, k.Quit}}
}

var defaultKeys = keyMap{
	Apply: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply theme")),
	Hit:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hit pad")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type themeItem string

func (i themeItem) Title() string       { return string(i) }
func (i themeItem) Description() string { return "" }
func (i themeItem) FilterValue() string { return string(i) }

type tickMsg time.Time

type showcaseModel struct {
	list      list.Model
	help      help.Model
	keys      keyMap
	current   string
	press     *ui.Tween
	animating bool
	width     int
	height    int
	prefsPath string
	log       *logger.Logger
}

func newShowcaseModel(current, prefsPath string, log *logger.Logger) showcaseModel {
	names := theme.Names()
	items := make([]list.Item, 0, len(names))
	selected := 0
	for i, name := range names {
		items = append(items, themeItem(name))
		if name == current {
			selected = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, 30, 24)
	l.Title = "Themes"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.Select(selected)

	motion := theme.MustGet(current).Feel.Motion()

	return showcaseModel{
		list:      l,
		help:      help.New(),
		keys:      defaultKeys,
		current:   current,
		press:     ui.NewTween(motion),
		prefsPath: prefsPath,
		log:       log,
	}
}

func (m showcaseModel) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/ui.DefaultFPS, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m showcaseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.savePreferences()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Apply):
			if item, ok := m.list.SelectedItem().(themeItem); ok {
				m.current = string(item)
				m.press = ui.NewTween(theme.MustGet(m.current).Feel.Motion())
				m.log.WithFields(map[string]any{"theme": m.current}).Debug("theme applied")
			}
			return m, nil

		case key.Matches(msg, m.keys.Hit):
			m.press.SetTarget(1)
			if !m.animating {
				m.animating = true
				return m, tick()
			}
			return m, nil
		}

	case tickMsg:
		m.press.Step()
		if m.press.Value() > 0.95 {
			m.press.SetTarget(0)
		}
		if m.press.Settled() {
			m.animating = false
			return m, nil
		}
		return m, tick()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m showcaseModel) View() string {
	ctx := theme.DefaultContext().
		WithTheme(theme.MustGet(m.current)).
		WithWidth(m.width - m.list.Width() - 2)

	gallery := buildGallery(m.press.Value() > 0.3).ViewWithContext(ctx)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), " ", gallery)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m showcaseModel) savePreferences() {
	if m.prefsPath == "" {
		return
	}
	prefs := config.Preferences{Theme: m.current}
	if err := config.SavePreferences(m.prefsPath, prefs); err != nil {
		m.log.Error(err, "save preferences")
	}
}

func runShowcase(flags *rootFlags) error {
	prefsPath, err := config.DefaultPath()
	if err != nil {
		return err
	}

	logPath := filepath.Join(filepath.Dir(prefsPath), "audiotui.log")
	log, closer, err := logger.NewFile(logPath, flags.logLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := loadPalettes(flags, log); err != nil {
		return err
	}

	prefs, err := config.LoadPreferences(prefsPath)
	if err != nil {
		log.Error(err, "load preferences")
		prefs = config.Preferences{Theme: theme.Default().Look.Name()}
	}

	model := newShowcaseModel(prefs.Theme, prefsPath, log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("showcase failed: %w", err)
	}
	return nil
}
