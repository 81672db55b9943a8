package engine

// Display is the per-frame view of a session consumed by renderers.
type Display struct {
	// Board holds settled cells with the live piece (CellFalling) and,
	// when enabled, its landing projection (CellGhost) overlaid.
	Board Board
	// Masks are connection masks of the settled and falling cells of Board,
	// indexed [row][col]. Ghost cells neither link nor get a mask.
	Masks    [][]Mask
	PopCells []Pos

	Phase      Phase
	PrevPhase  Phase
	Score      int
	Level      int
	Chain      int
	MaxChain   int
	HighScores []HighScore
	Next       [2]Piece
	ShowGhost  bool
}

// Display builds the render view of the session.
func (s Session) Display() Display {
	board := s.Board
	if p := s.Current; p != nil && (s.Phase == PhaseFalling || s.Phase == PhaseLocking || s.Phase == PhasePaused) {
		board = board.clone()
		if s.Settings.ShowGhost && s.Phase != PhasePaused {
			ghost := s.Board.Ghost(*p)
			if ghost.Row != p.Row {
				overlay(&board, ghost.Axis(), ghost.AxisColor, CellGhost)
				overlay(&board, ghost.Child(), ghost.ChildColor, CellGhost)
			}
		}
		overlay(&board, p.Axis(), p.AxisColor, CellFalling)
		overlay(&board, p.Child(), p.ChildColor, CellFalling)
	}

	return Display{
		Board:      board,
		Masks:      linkMasks(board),
		PopCells:   s.PopCells,
		Phase:      s.Phase,
		PrevPhase:  s.PrevPhase,
		Score:      s.Score,
		Level:      s.Level,
		Chain:      s.CurrentChain,
		MaxChain:   s.MaxChain,
		HighScores: s.HighScores,
		Next:       s.Next,
		ShowGhost:  s.Settings.ShowGhost,
	}
}

// overlay writes c at pos in place. Ghost cells never cover occupied cells.
func overlay(b *Board, pos Pos, c Color, state CellState) {
	if !b.InBounds(pos.Row, pos.Col) {
		return
	}
	i := b.index(pos.Row, pos.Col)
	if state == CellGhost && b.cells[i].Occupied() {
		return
	}
	b.cells[i] = Cell{Color: c, State: state}
}

// linkMasks computes connection masks over board with ghost cells treated
// as empty.
func linkMasks(board Board) [][]Mask {
	solid := board.clone()
	for i, c := range solid.cells {
		if c.State == CellGhost {
			solid.cells[i] = Cell{}
		}
	}
	return solid.ConnectionMasks()
}

// IsPopping reports whether (row, col) is among the cells being cleared.
func (d Display) IsPopping(row, col int) bool {
	for _, p := range d.PopCells {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}
