package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/logging"
	"github.com/vovakirdan/tui-slicer/internal/registry"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

// GameFactory builds a fresh game for the chosen difficulty.
type GameFactory func(preset config.DifficultyPreset) (registry.Game, error)

// SessionOptions configures a session.
type SessionOptions struct {
	GameID   string
	NewGame  GameFactory // nil creates GameID from the registry
	Preset   config.DifficultyPreset
	Store    *storage.Store // May be nil
	Logger   *log.Logger    // May be nil
	Bell     io.Writer      // May be nil
	Runtime  core.RuntimeConfig
	Username string // Logged with session events
	SkipMenu bool   // Start straight in the game
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model both locally and for SSH sessions.
type SessionModel struct {
	opts     SessionOptions
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	m := SessionModel{opts: opts, logger: logger}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.opts.Store, m.opts.GameID, m.opts.Preset, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.opts.SkipMenu {
		return func() tea.Msg { return startGameMsg{} }
	}
	return m.menu.Init()
}

// startGameMsg jumps from the menu into a game.
type startGameMsg struct{}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
	case startGameMsg:
		return m.startGame()
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.opts.Preset = m.menu.Preset()

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuChoicePlay:
		return m.startGame()
	case MenuChoiceScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.GameID, m.title(), m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// startGame creates a game for the selected preset and hands it the screen.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := m.createGame()
	if err != nil {
		m.logger.Error("cannot create game", "game", m.opts.GameID, "error", err)
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, nil
	}

	cfg := m.opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameModel := NewModel(game, cfg, ModelOptions{
		Store:  m.opts.Store,
		Logger: m.logger,
		Bell:   m.opts.Bell,
	})
	m.game = &gameModel
	m.screen = screenGame
	m.logger.Info("game started", "game", game.ID(), "difficulty", m.opts.Preset)

	return m, m.game.Init()
}

func (m SessionModel) createGame() (registry.Game, error) {
	if m.opts.NewGame != nil {
		return m.opts.NewGame(m.opts.Preset)
	}
	return registry.Create(m.opts.GameID)
}

// title looks up the display name of the session's game.
func (m SessionModel) title() string {
	for _, info := range registry.List() {
		if info.ID == m.opts.GameID {
			return info.Title
		}
	}
	return m.opts.GameID
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.logger.Info("game left", "score", m.game.State().Score)
		m.game = nil
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.menu = m.newMenu()
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a local session on the controlling terminal.
func RunSession(opts SessionOptions) error {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}

	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Motion is reported while a button is held
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
