package engine

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOnlyFromIdle(t *testing.T) {
	env := testEnv()
	s := NewSession(env.Rules, []HighScore{{Score: 10}}, DefaultSettings())

	s, events := Reduce(env, s, Do(ActionStart))
	assert.Equal(t, PhaseFalling, s.Phase)
	require.True(t, s.HasPiece())
	assert.Equal(t, Pos{Row: 1, Col: 2}, s.Current.Axis())
	assert.Equal(t, RotationUp, s.Current.Rotation)
	assert.Equal(t, []Phase{PhaseFalling}, phaseChanges(events))
	assert.Equal(t, 10, s.HighScore(), "high scores survive a new game")

	again, events := Reduce(env, s, Do(ActionStart))
	assert.Empty(t, events)
	assert.Equal(t, s.Current, again.Current)
}

func TestIdleIgnoresGameplay(t *testing.T) {
	env := testEnv()
	s := NewSession(env.Rules, nil, DefaultSettings())

	for _, a := range []Action{
		Do(ActionMoveLeft), Do(ActionRotateCW), Do(ActionHardDrop), Do(ActionSoftDrop),
		Tick(time.Second), Do(ActionPause), Do(ActionPopComplete), Do(ActionSettleComplete),
		Do(ActionRestart),
	} {
		next, events := Reduce(env, s, a)
		assert.Empty(t, events, a.Kind.String())
		assert.Equal(t, PhaseIdle, next.Phase, a.Kind.String())
	}
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	env := testEnv()
	lines := make([]string, 12)
	for i := range lines {
		if i%2 == 0 {
			lines[i] = "..R..."
		} else {
			lines[i] = "..G..."
		}
	}
	board := boardFrom(t, lines...)
	piece := Piece{Row: 5, Col: 0, Rotation: RotationUp, AxisColor: ColorRed, ChildColor: ColorRed}
	s := liveSession(env, board, piece)
	s.Score = 70
	queued := s.Next

	s, events := Reduce(env, s, Do(ActionHardDrop))

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.False(t, s.HasPiece(), "no piece is created on a blocked spawn")
	assert.Equal(t, queued, s.Next, "a blocked spawn leaves the queue untouched")
	assert.Equal(t, []Phase{PhaseChecking, PhaseGameOver}, phaseChanges(events))
	assert.Equal(t, []CueEvent{{Cue: CueDrop}, {Cue: CueGameOver}}, cues(events))

	require.Len(t, s.HighScores, 1)
	assert.Equal(t, HighScore{Score: 70, Timestamp: testNow}, s.HighScores[0])
	assert.True(t, s.Recorded)

	frozen, events := Reduce(env, s, Tick(time.Minute))
	assert.Empty(t, events)
	assert.Equal(t, PhaseGameOver, frozen.Phase)

	s, events = Reduce(env, s, Do(ActionRestart))
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Board.OccupiedCount())
	assert.Len(t, s.HighScores, 1, "a recorded game is not recorded twice")
	assert.False(t, s.Recorded)
	for _, ev := range events {
		_, isHS := ev.(HighScoresChangedEvent)
		assert.False(t, isHS)
	}
}

func TestHardDropClearsGroupAndSpawns(t *testing.T) {
	env := testEnv()
	board := boardFrom(t, "RRR...")
	piece := Piece{Row: 1, Col: 3, Rotation: RotationUp, AxisColor: ColorRed, ChildColor: ColorGreen}
	s := liveSession(env, board, piece)

	s, events := Reduce(env, s, Do(ActionHardDrop))
	assert.Equal(t, []Phase{PhaseChecking, PhasePopping}, phaseChanges(events))
	assert.Equal(t, PhasePopping, s.Phase)
	assert.Len(t, s.PopCells, 4)
	assert.Equal(t, 40, s.Score)
	assert.Equal(t, 1, s.CurrentChain)
	assert.Equal(t, 4, s.TotalCleared)
	assert.Equal(t, []ChainStep{{ChainCount: 1, PoppedCount: 4, ColorCount: 1}}, s.ChainHistory)

	same, events := Reduce(env, s, Tick(5*time.Second))
	assert.Empty(t, events, "popping does not react to ticks")
	assert.Equal(t, PhasePopping, same.Phase)

	s, events = Reduce(env, s, Do(ActionPopComplete))
	assert.Equal(t, PhaseSettling, s.Phase)
	assert.Equal(t, []CueEvent{{Cue: CuePop, Chain: 1}}, cues(events))
	assert.Equal(t, ColorGreen, s.Board.At(12, 3).Color)
	assert.Equal(t, 1, s.Board.OccupiedCount())

	s, events = Reduce(env, s, Do(ActionSettleComplete))
	assert.Equal(t, []Phase{PhaseChecking, PhaseFalling}, phaseChanges(events))
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.True(t, s.HasPiece())
	assert.Empty(t, s.PopCells)
	assert.Equal(t, 0, s.CurrentChain)
	assert.Equal(t, 1, s.MaxChain)
}

func TestChainReaction(t *testing.T) {
	env := testEnv()
	s := NewSession(env.Rules, nil, DefaultSettings())
	s.Phase = PhaseSettling
	s.Next = env.Gen.NextPair()
	s.Board = boardFrom(t,
		"G.....",
		"R.....",
		"R.....",
		"R.....",
		"RGGG..",
	)

	s, events := run(env, s, Do(ActionSettleComplete), Do(ActionPopComplete), Do(ActionSettleComplete))
	assert.Equal(t, PhasePopping, s.Phase)
	assert.Equal(t, 2, s.CurrentChain)
	assert.Contains(t, cues(events), CueEvent{Cue: CueChain, Chain: 2})

	s, events = run(env, s, Do(ActionPopComplete), Do(ActionSettleComplete))
	assert.Contains(t, cues(events), CueEvent{Cue: CuePop, Chain: 2})
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, 40+120, s.Score)
	assert.Equal(t, 8, s.TotalCleared)
	assert.Equal(t, 2, s.MaxChain)
	assert.Equal(t, 0, s.CurrentChain)
	assert.Len(t, s.ChainHistory, 2)
	assert.Equal(t, 0, s.Board.OccupiedCount())
}

func TestGravityTick(t *testing.T) {
	env := testEnv()
	s := liveSession(env, NewBoard(13, 6), Piece{Row: 1, Col: 2, AxisColor: ColorRed, ChildColor: ColorBlue})

	s, _ = Reduce(env, s, Tick(600*time.Millisecond))
	assert.Equal(t, 1, s.Current.Row)
	assert.Equal(t, 600*time.Millisecond, s.DropTimer)

	s, _ = Reduce(env, s, Tick(600*time.Millisecond))
	assert.Equal(t, 2, s.Current.Row)
	assert.Equal(t, 200*time.Millisecond, s.DropTimer, "remainder carries over")

	s, events := Reduce(env, s, Tick(-time.Second))
	assert.Empty(t, events)
	assert.Equal(t, 200*time.Millisecond, s.DropTimer)
}

func TestLockDelay(t *testing.T) {
	env := testEnv()
	s := liveSession(env, NewBoard(13, 6), Piece{Row: 12, Col: 2, AxisColor: ColorRed, ChildColor: ColorBlue})

	s, _ = Reduce(env, s, Tick(time.Second))
	require.Equal(t, PhaseLocking, s.Phase)
	assert.Equal(t, time.Duration(0), s.DropTimer)

	s, _ = Reduce(env, s, Tick(499*time.Millisecond))
	assert.Equal(t, PhaseLocking, s.Phase)
	assert.Equal(t, 499*time.Millisecond, s.LockTimer)

	s, events := Reduce(env, s, Do(ActionMoveLeft))
	assert.Equal(t, PhaseFalling, s.Phase, "a successful move un-grounds the piece")
	assert.Equal(t, time.Duration(0), s.LockTimer)
	assert.Equal(t, []CueEvent{{Cue: CueMove}}, cues(events))

	s, events = Reduce(env, s, Do(ActionRotateCW))
	assert.Empty(t, cues(events), "rotation has no move cue")
	assert.Equal(t, RotationRight, s.Current.Rotation)

	s, _ = run(env, s, Tick(time.Second), Tick(500*time.Millisecond))
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, 2, s.Board.OccupiedCount())
	assert.Equal(t, Pos{Row: 1, Col: 2}, s.Current.Axis(), "next piece spawned")
}

func TestSoftDrop(t *testing.T) {
	env := testEnv()
	s := liveSession(env, NewBoard(13, 6), Piece{Row: 1, Col: 2})

	s, _ = run(env, s, Tick(700*time.Millisecond), Do(ActionSoftDrop))
	assert.Equal(t, 2, s.Current.Row)
	assert.Equal(t, time.Duration(0), s.DropTimer)

	floor := liveSession(env, NewBoard(13, 6), Piece{Row: 12, Col: 2})
	same, events := Reduce(env, floor, Do(ActionSoftDrop))
	assert.Empty(t, events)
	assert.Equal(t, 12, same.Current.Row)
}

func TestPauseRestoresPhaseAndTimers(t *testing.T) {
	env := testEnv()
	s := liveSession(env, NewBoard(13, 6), Piece{Row: 1, Col: 2})
	s, _ = Reduce(env, s, Tick(300*time.Millisecond))

	paused, events := Reduce(env, s, Do(ActionPause))
	assert.Equal(t, PhasePaused, paused.Phase)
	assert.Equal(t, PhaseFalling, paused.PrevPhase)
	assert.Equal(t, []Phase{PhasePaused}, phaseChanges(events))

	frozen, events := run(env, paused, Tick(time.Second), Do(ActionMoveLeft), Do(ActionHardDrop), Do(ActionPause))
	assert.Empty(t, events)
	assert.Equal(t, paused, frozen)

	resumed, _ := Reduce(env, frozen, Do(ActionResume))
	assert.Equal(t, PhaseFalling, resumed.Phase)
	assert.Equal(t, 300*time.Millisecond, resumed.DropTimer)
	assert.Equal(t, s.Current, resumed.Current)

	toggled, _ := run(env, s, Do(ActionTogglePause), Do(ActionTogglePause))
	assert.Equal(t, PhaseFalling, toggled.Phase)

	popping := s
	popping.Phase = PhasePopping
	popping, _ = run(env, popping, Do(ActionPause), Do(ActionResume))
	assert.Equal(t, PhasePopping, popping.Phase)
}

func TestRestartRecordsLiveGame(t *testing.T) {
	env := testEnv()
	s := liveSession(env, boardFrom(t, "RGBY.."), Piece{Row: 1, Col: 2})
	s.Score = 1234
	s.Level = 3
	s.MaxChain = 2

	s, events := Reduce(env, s, Do(ActionRestart))
	require.Len(t, s.HighScores, 1)
	assert.Equal(t, HighScore{Score: 1234, Level: 3, Chains: 2, Timestamp: testNow}, s.HighScores[0])
	assert.Equal(t, PhaseFalling, s.Phase)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.Board.OccupiedCount())

	var recorded bool
	for _, ev := range events {
		if hs, ok := ev.(HighScoresChangedEvent); ok {
			recorded = true
			assert.Equal(t, 1234, hs.Entry.Score)
		}
	}
	assert.True(t, recorded)
}

func TestSettingsActions(t *testing.T) {
	env := testEnv()
	s := NewSession(env.Rules, nil, DefaultSettings())

	s, events := Reduce(env, s, Do(ActionToggleGhost))
	assert.False(t, s.Settings.ShowGhost)
	assert.Equal(t, []Event{SettingsChangedEvent{Settings: s.Settings}}, events)

	s, events = Reduce(env, s, SetSFXVolume(1.5))
	assert.Equal(t, 1.0, s.Settings.SFXVolume)
	assert.Contains(t, events, Event(VolumeChangedEvent{Volume: 1}))

	s, _ = Reduce(env, s, Action{Kind: ActionSetSFXVolume, Volume: -2})
	assert.Equal(t, 0.0, s.Settings.SFXVolume)
}

func TestReduceLeavesInputUntouched(t *testing.T) {
	env := testEnv()
	s := liveSession(env, boardFrom(t, "RRR..."), Piece{Row: 1, Col: 3, AxisColor: ColorRed, ChildColor: ColorRed})
	before := s.Board.String()
	piece := *s.Current

	_, _ = run(env, s, Do(ActionHardDrop))
	assert.Equal(t, before, s.Board.String())
	assert.Equal(t, piece, *s.Current)
	assert.Empty(t, s.ChainHistory)
}

func TestDisplayOverlay(t *testing.T) {
	env := testEnv()
	s := liveSession(env, NewBoard(13, 6), Piece{Row: 1, Col: 2, AxisColor: ColorRed, ChildColor: ColorGreen})

	d := s.Display()
	assert.Equal(t, Cell{Color: ColorRed, State: CellFalling}, d.Board.At(1, 2))
	assert.Equal(t, Cell{Color: ColorGreen, State: CellFalling}, d.Board.At(0, 2))
	assert.Equal(t, Cell{Color: ColorRed, State: CellGhost}, d.Board.At(12, 2))
	assert.Equal(t, Cell{Color: ColorGreen, State: CellGhost}, d.Board.At(11, 2))
	assert.Equal(t, 0, s.Board.OccupiedCount(), "display must not touch the session board")

	s.Settings.ShowGhost = false
	d = s.Display()
	assert.False(t, d.Board.Occupied(12, 2))
	assert.False(t, d.IsPopping(12, 2))
}

func TestDisplayMasksSkipGhost(t *testing.T) {
	env := testEnv()
	board := boardFrom(t, "..R...").With(10, 3, Cell{Color: ColorRed})
	s := liveSession(env, board, Piece{Row: 10, Col: 2, AxisColor: ColorRed, ChildColor: ColorRed})

	d := s.Display()
	require.Equal(t, CellGhost, d.Board.At(11, 2).State)
	assert.Equal(t, Mask(0), d.Masks[11][2], "ghost cells carry no mask")
	assert.Equal(t, Mask(0), d.Masks[12][2], "settled cell must not link to the ghost above it")
	assert.Equal(t, MaskUp|MaskRight, d.Masks[10][2])
	assert.Equal(t, MaskDown, d.Masks[9][2])
	assert.Equal(t, MaskLeft, d.Masks[10][3], "settled cell links to the falling piece")
}

func TestEngineDispatch(t *testing.T) {
	e := New(DefaultRules(), rand.New(rand.NewSource(7)),
		WithClock(func() time.Time { return testNow }),
		WithSettings(Settings{ShowGhost: false, SFXVolume: 0.2}),
		WithHighScores([]HighScore{{Score: 99}}),
	)

	var got []string
	e.Subscribe(func(ev Event) {
		if pc, ok := ev.(PhaseChangedEvent); ok {
			got = append(got, pc.From.String()+">"+pc.To.String())
		}
	})

	events := e.Dispatch(Do(ActionStart))
	require.NotEmpty(t, events)
	assert.Equal(t, "idle>falling", strings.Join(got, ","))
	assert.Equal(t, PhaseFalling, e.State().Phase)
	assert.Equal(t, 99, e.State().HighScore())
	assert.False(t, e.State().Settings.ShowGhost)
	assert.Equal(t, 13, e.Rules().Rows)
}
