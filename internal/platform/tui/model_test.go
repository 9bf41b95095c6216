package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/registry"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

// fakeGame records what the host hands it.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	state   core.GameState
	bell    bool
	store   registry.ScoreStore
}

func (g *fakeGame) ID() string                      { return "fake" }
func (g *fakeGame) Title() string                   { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)        { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)         { dst.Clear(); dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState           { return g.state }
func (g *fakeGame) Resize(w, h int)                 { g.resized = [2]int{w, h} }
func (g *fakeGame) SetStore(s registry.ScoreStore) { g.store = s }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	bell := g.bell
	g.bell = false
	return core.StepResult{State: g.state, Bell: bell}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(m Model) TickMsg {
	return TickMsg{At: time.Now(), Gen: m.tickGen}
}

func TestCellToSim(t *testing.T) {
	tests := []struct {
		x, y     int
		expected core.Vec2
	}{
		{0, 0, core.V(0, 1)},
		{10, 3, core.V(10, 7)},
		{79, 23, core.V(79, 47)},
	}
	for _, tc := range tests {
		if got := CellToSim(tc.x, tc.y); got != tc.expected {
			t.Errorf("CellToSim(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestDragBecomesPointerSamples(t *testing.T) {
	game := &fakeGame{state: core.GameState{Started: true}}
	m := NewModel(game, testConfig(), ModelOptions{})

	// Hover without a button is ignored
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	// Right clicks do not slice
	m, _ = update(t, m, tea.MouseMsg{X: 6, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	m, _ = update(t, m, tick(m))

	if len(game.frames) != 1 {
		t.Fatalf("expected one frame, got %d", len(game.frames))
	}
	got := game.frames[0].Pointer
	expected := []core.Vec2{core.V(2, 3), core.V(3, 5)}
	if len(got) != len(expected) {
		t.Fatalf("pointer samples = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("sample %d = %v, expected %v", i, got[i], expected[i])
		}
	}

	// Samples are consumed by the frame
	m, _ = update(t, m, tick(m))
	if len(game.frames[1].Pointer) != 0 {
		t.Error("input should be cleared after each frame")
	}
}

func TestKeysReachFrame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), ModelOptions{})

	m, _ = update(t, m, runeKey(' '))
	m, _ = update(t, m, tick(m))

	in := game.frames[0]
	if !in.Has(core.ActionStart) || !in.Has(core.ActionConfirm) {
		t.Errorf("space should start the game, got %v", in.Actions)
	}
}

func TestStaleTicksIgnored(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), ModelOptions{})

	m, cmd := update(t, m, TickMsg{At: time.Now(), Gen: m.tickGen + 1000})
	if cmd != nil || len(game.frames) != 0 {
		t.Error("ticks from another model should be dropped")
	}
	_, cmd = update(t, m, tick(m))
	if cmd == nil || len(game.frames) != 1 {
		t.Error("own ticks should run a frame and schedule the next")
	}
}

func TestBackOnlyWhenIdle(t *testing.T) {
	game := &fakeGame{state: core.GameState{Started: true}}
	m := NewModel(game, testConfig(), ModelOptions{})
	m, _ = update(t, m, tick(m))

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("b should not leave a running round")
	}

	game.state.Paused = true
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b should leave a paused round")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), ModelOptions{})
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestResizeUsesResizable(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), ModelOptions{})
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resizable games should not be reset, resets = %d", game.resets)
	}
	if !strings.HasPrefix(m.View(), "fake") {
		t.Errorf("view should render the game, got %q", m.View())
	}
}

func TestBellOnDetonation(t *testing.T) {
	var bell bytes.Buffer
	game := &fakeGame{bell: true}
	m := NewModel(game, testConfig(), ModelOptions{Bell: &bell})

	_, cmd := update(t, m, tick(m))
	if cmd == nil {
		t.Fatal("expected commands after a frame")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch with the bell, got %T", msg)
	}
	// The second command writes BEL; the first is the tick timer
	batch[1]()
	if bell.String() != "\a" {
		t.Errorf("bell wrote %q", bell.String())
	}
}

func TestScoreSavedOnceAndStoreAttached(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{state: core.GameState{Started: true, Score: 40}}
	m := NewModel(game, testConfig(), ModelOptions{Store: store})
	if game.store == nil {
		t.Fatal("store-aware games should receive the best-score key")
	}

	m, _ = update(t, m, tick(m))
	game.state.GameOver = true
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, tick(m))
	}

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 || scores[0].Score != 40 {
		t.Fatalf("expected one saved round of 40, got %v", scores)
	}

	// A restarted round is recorded separately
	game.state = core.GameState{Started: true, Score: 15}
	m, _ = update(t, m, tick(m))
	game.state.GameOver = true
	_, _ = update(t, m, tick(m))

	scores, _ = store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Errorf("expected two saved rounds, got %v", scores)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	game := &fakeGame{}
	var created []config.DifficultyPreset
	s := NewSessionModel(SessionOptions{
		GameID: "fake",
		NewGame: func(p config.DifficultyPreset) (registry.Game, error) {
			created = append(created, p)
			return game, nil
		},
		Runtime: testConfig(),
	})

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	if !strings.Contains(s.View(), "S L I C E R") {
		t.Fatalf("session should open on the menu, got %q", s.View())
	}

	// Pick "hard" on the difficulty row, then play
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyRight})
	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyEnter})

	if s.screen != screenGame {
		t.Fatal("enter on Play should start the game")
	}
	if len(created) != 1 || created[0] != config.DifficultyHard {
		t.Errorf("factory calls = %v, expected [hard]", created)
	}
	if !strings.HasPrefix(s.View(), "fake") {
		t.Errorf("session should show the game, got %q", s.View())
	}

	step(runeKey('b')) // not started yet, so b leaves
	if s.screen != screenMenu {
		t.Fatal("b on the title screen should return to the menu")
	}
	if s.menu.Preset() != config.DifficultyHard {
		t.Errorf("menu should remember the preset, got %s", s.menu.Preset())
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "No scores recorded yet") {
		t.Errorf("scoreboard without a store should be empty, got %q", s.View())
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	if cmd := step(runeKey('q')); cmd == nil || !s.quitting {
		t.Error("q in the menu should quit")
	}
}

func TestSessionSkipMenu(t *testing.T) {
	s := NewSessionModel(SessionOptions{
		GameID: "fake",
		NewGame: func(config.DifficultyPreset) (registry.Game, error) {
			return &fakeGame{}, nil
		},
		Runtime:  testConfig(),
		SkipMenu: true,
	})

	msg := s.Init()()
	next, _ := s.Update(msg)
	if next.(SessionModel).screen != screenGame {
		t.Error("SkipMenu should go straight to the game")
	}
}
