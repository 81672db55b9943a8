package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// fakeGame records the platform's calls.
type fakeGame struct {
	resets int
	frames [][]core.Action
	state  core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, append([]core.Action(nil), in.Actions...))
	return core.StepResult{State: g.state}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelQueuesInputUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, nil, core.DefaultConfig())
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init did not schedule a tick")
	}
	if g.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", g.resets)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('z'))
	if len(g.frames) != 0 {
		t.Fatal("Game stepped before a tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("Tick did not schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("Steps = %d, expected 2", len(g.frames))
	}
	first := g.frames[0]
	if len(first) != 2 || first[0] != core.ActionLeft || first[1] != core.ActionRotateCCW {
		t.Errorf("First frame = %v, expected [Left RotateCCW]", first)
	}
	if len(g.frames[1]) != 0 {
		t.Errorf("Second frame = %v, expected empty", g.frames[1])
	}

	if !strings.Contains(m.View(), "fake") {
		t.Error("View does not contain the game's render")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, nil, core.DefaultConfig())
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("Resize reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("Screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelBack(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		allowed bool
	}{
		{"idle", core.GameState{}, true},
		{"running", core.GameState{Started: true}, false},
		{"paused", core.GameState{Started: true, Paused: true}, true},
		{"game over", core.GameState{Started: true, GameOver: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{state: tc.state}
			m := NewGameModel(g, nil, nil, core.DefaultConfig())
			m.Init()
			m, _ = update(t, m, TickMsg{})

			m, cmd := update(t, m, runeKey('b'))
			if m.BackToMenu() != tc.allowed {
				t.Errorf("BackToMenu = %v, expected %v", m.BackToMenu(), tc.allowed)
			}
			if cmd != nil {
				t.Error("Embedded model must not quit the program on back")
			}
		})
	}
}

func TestGameModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, nil, core.DefaultConfig())
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q did not quit")
	}

	update(t, m, TickMsg{})
	if len(g.frames) != 0 {
		t.Error("Game stepped after quitting")
	}
}
