package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menu rows in display order
const (
	itemPlay = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("211"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	gameID    string
	cursor    int
	preset    int // Index into config.Presets
	best      int
	width     int
	height    int
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model. The best score is read once from store.
func NewMenuModel(store *storage.Store, gameID string, preset config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		gameID:    gameID,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		preset:    presetIndex(preset),
	}
	if store != nil {
		if stats, err := store.GetGameStats(gameID); err == nil {
			m.best = stats.HighScore
		}
	}
	return m
}

// presetIndex finds preset in config.Presets, defaulting to normal.
func presetIndex(preset config.DifficultyPreset) int {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	for i, p := range config.Presets {
		if p == preset {
			return i
		}
	}
	return 1
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
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < itemCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == itemDifficulty {
			m.cyclePreset(-1)
		}

	case MenuActionRight:
		if m.cursor == itemDifficulty {
			m.cyclePreset(1)
		}

	case MenuActionScoreboard:
		m.choice = MenuChoiceScores

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			m.choice = MenuChoicePlay
		case itemDifficulty:
			m.cyclePreset(1)
		case itemScores:
			m.choice = MenuChoiceScores
		case itemQuit:
			m.choice = MenuChoiceQuit
		}
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(delta int) {
	n := len(config.Presets)
	m.preset = (m.preset + delta + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	top := (m.height - 14) / 2
	if top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}

	b.WriteString(centerText(menuTitleStyle.Render("S L I C E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	labels := [itemCount]string{
		itemPlay:       "Play",
		itemDifficulty: fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		itemScores:     "High Scores",
		itemQuit:       "Quit",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
