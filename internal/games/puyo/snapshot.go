package puyo

import "github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	Level        int
	Chain        int
	MaxChain     int
	TotalCleared int
	Occupied     int
	Board        string // ASCII dump, top row first
	HasPiece     bool
	PieceRow     int
	PieceCol     int
	Rotation     string
	NextColors   [4]engine.Color // axis, child of next[0] then next[1]
	ShowGhost    bool
	SFXVolume    float64
	HighScores   int
}

// Snapshot returns the current game snapshot, used for determinism checks
// and the game-over log line.
func (g *Game) Snapshot() Snapshot {
	s := g.eng.State()
	snap := Snapshot{
		Tick:         g.tick,
		Phase:        s.Phase.String(),
		Score:        s.Score,
		Level:        s.Level,
		Chain:        s.CurrentChain,
		MaxChain:     s.MaxChain,
		TotalCleared: s.TotalCleared,
		Occupied:     s.Board.OccupiedCount(),
		Board:        s.Board.String(),
		NextColors: [4]engine.Color{
			s.Next[0].AxisColor, s.Next[0].ChildColor,
			s.Next[1].AxisColor, s.Next[1].ChildColor,
		},
		ShowGhost:  s.Settings.ShowGhost,
		SFXVolume:  s.Settings.SFXVolume,
		HighScores: len(s.HighScores),
	}
	if p := s.Current; p != nil {
		snap.HasPiece = true
		snap.PieceRow = p.Row
		snap.PieceCol = p.Col
		snap.Rotation = p.Rotation.String()
	}
	return snap
}
