package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

// Menu rows in display order.
const (
	menuPlay = iota
	menuDifficulty
	menuLevel
	menuScores
	menuQuit
	menuRows
)

// MenuOptions are the initial selections shown by the menu.
type MenuOptions struct {
	GameID     string
	Preset     config.DifficultyPreset
	StartLevel int // 0-indexed
	MaxLevel   int // Highest selectable start level, 0-indexed
}

// MenuModel is the Bubble Tea model for the title menu. It picks difficulty
// and start level before launching a game.
type MenuModel struct {
	opts      MenuOptions
	title     string
	best      int
	presetIdx int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	title := opts.GameID
	if info, ok := registry.Lookup(opts.GameID); ok {
		title = info.Title
	}

	best := 0
	if store != nil {
		//nolint:errcheck // A missing best score is shown as 0
		best, _ = store.HighScore(opts.GameID)
	}

	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	return MenuModel{
		opts:      opts,
		title:     title,
		best:      best,
		presetIdx: indexOfPreset(preset),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func indexOfPreset(p config.DifficultyPreset) int {
	for i, q := range config.Presets {
		if q == p {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + menuRows - 1) % menuRows

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % menuRows

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.play = true
			return m, tea.Quit
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust cycles the option under the cursor.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case menuDifficulty:
		n := len(config.Presets)
		m.presetIdx = (m.presetIdx + delta + n) % n
	case menuLevel:
		m.opts.StartLevel = core.Clamp(m.opts.StartLevel+delta, 0, m.opts.MaxLevel)
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i := range menuRows {
		line := m.rowLabel(i)
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + line + " <")
		} else {
			line = "  " + line + "  "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "↑/↓: Navigate  |  ←/→: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowLabel(i int) string {
	switch i {
	case menuPlay:
		return "Play"
	case menuDifficulty:
		return fmt.Sprintf("Difficulty: %s", m.Preset())
	case menuLevel:
		return fmt.Sprintf("Start level: %d", m.opts.StartLevel+1)
	case menuScores:
		return "High scores"
	case menuQuit:
		return "Quit"
	}
	return ""
}

// spaced renders "Puyo" as "P U Y O".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.presetIdx]
}

// StartLevel returns the selected start level (0-indexed).
func (m MenuModel) StartLevel() int {
	return m.opts.StartLevel
}

// WantsPlay returns true if the user chose to start a game.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Play            bool
	Preset          config.DifficultyPreset
	StartLevel      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Play:            m.WantsPlay(),
		Preset:          m.Preset(),
		StartLevel:      m.StartLevel(),
		Config:          m.Config(),
		WantsScoreboard: m.WantsScoreboard(),
		Quit:            m.IsQuitting() || (!m.WantsPlay() && !m.WantsScoreboard()),
	}, nil
}
