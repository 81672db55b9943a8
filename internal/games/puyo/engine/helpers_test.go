package engine

import (
	"math/rand"
	"testing"
	"time"
)

var charColors = map[rune]Color{
	'.': ColorNone,
	'R': ColorRed,
	'G': ColorGreen,
	'B': ColorBlue,
	'Y': ColorYellow,
	'P': ColorPurple,
}

// boardFrom builds a default-sized board whose bottom rows are given by lines,
// top line first. Lines shorter than the board width are padded with empties.
func boardFrom(t *testing.T, lines ...string) Board {
	t.Helper()
	rules := DefaultRules()
	b := NewBoard(rules.Rows, rules.Cols)
	top := rules.Rows - len(lines)
	for i, line := range lines {
		for col, ch := range line {
			c, ok := charColors[ch]
			if !ok {
				t.Fatalf("boardFrom: bad cell %q", ch)
			}
			b = b.With(top+i, col, Cell{Color: c})
		}
	}
	return b
}

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testEnv() Env {
	rules := DefaultRules()
	return Env{
		Rules: rules,
		Gen:   NewGenerator(rules, rand.New(rand.NewSource(1))),
		Now:   func() time.Time { return testNow },
	}
}

// liveSession returns a falling session with the given board and piece.
func liveSession(env Env, board Board, p Piece) Session {
	s := NewSession(env.Rules, nil, DefaultSettings())
	s.Phase = PhaseFalling
	s.Board = board
	s.Current = &p
	s.Next = env.Gen.NextPair()
	return s
}

// run applies actions in order and collects all events.
func run(env Env, s Session, actions ...Action) (Session, []Event) {
	var all []Event
	for _, a := range actions {
		var events []Event
		s, events = Reduce(env, s, a)
		all = append(all, events...)
	}
	return s, all
}

func phaseChanges(events []Event) []Phase {
	var phases []Phase
	for _, ev := range events {
		if pc, ok := ev.(PhaseChangedEvent); ok {
			phases = append(phases, pc.To)
		}
	}
	return phases
}

func cues(events []Event) []CueEvent {
	var out []CueEvent
	for _, ev := range events {
		if c, ok := ev.(CueEvent); ok {
			out = append(out, c)
		}
	}
	return out
}
