package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPlace(t *testing.T) {
	board := boardFrom(t, "..R...")

	tests := []struct {
		name  string
		piece Piece
		dRow  int
		dCol  int
		want  bool
	}{
		{"spawn on empty column", Piece{Row: 1, Col: 2}, 0, 0, true},
		{"child above the board", Piece{Row: 0, Col: 2}, 0, 0, false},
		{"axis on occupied cell", Piece{Row: 12, Col: 2, Rotation: RotationLeft}, 0, 0, false},
		{"offset into occupied cell", Piece{Row: 11, Col: 2}, 1, 0, false},
		{"offset past right wall", Piece{Row: 5, Col: 5}, 0, 1, false},
		{"child past left wall", Piece{Row: 5, Col: 0, Rotation: RotationLeft}, 0, 0, false},
		{"child below the floor", Piece{Row: 12, Col: 0, Rotation: RotationDown}, 0, 0, false},
		{"horizontal on the floor", Piece{Row: 12, Col: 3, Rotation: RotationRight}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.CanPlace(tt.piece, tt.dRow, tt.dCol))
		})
	}
}

func TestTryMove(t *testing.T) {
	board := NewBoard(13, 6)

	moved, ok := board.TryMove(Piece{Row: 5, Col: 2}, -1)
	require.True(t, ok)
	assert.Equal(t, 1, moved.Col)

	wall := Piece{Row: 5, Col: 5, Rotation: RotationUp}
	got, ok := board.TryMove(wall, 1)
	assert.False(t, ok)
	assert.Equal(t, wall, got, "failed move must return the piece unchanged")

	blocked := boardFrom(t, ".R....")
	_, ok = blocked.TryMove(Piece{Row: 12, Col: 2, Rotation: RotationUp}, -1)
	assert.False(t, ok)
}

func TestTryRotateKickOrder(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		piece Piece
		dir   int
		ok    bool
		want  Piece
	}{
		{
			name:  "in place",
			board: NewBoard(13, 6),
			piece: Piece{Row: 5, Col: 2, Rotation: RotationUp},
			dir:   1,
			ok:    true,
			want:  Piece{Row: 5, Col: 2, Rotation: RotationRight},
		},
		{
			name:  "right wall falls back to left kick",
			board: NewBoard(13, 6),
			piece: Piece{Row: 5, Col: 5, Rotation: RotationUp},
			dir:   1,
			ok:    true,
			want:  Piece{Row: 5, Col: 4, Rotation: RotationRight},
		},
		{
			name:  "left wall uses right kick",
			board: NewBoard(13, 6),
			piece: Piece{Row: 5, Col: 0, Rotation: RotationUp},
			dir:   -1,
			ok:    true,
			want:  Piece{Row: 5, Col: 1, Rotation: RotationLeft},
		},
		{
			name:  "ceiling uses down kick when turning up",
			board: NewBoard(13, 6),
			piece: Piece{Row: 0, Col: 2, Rotation: RotationRight},
			dir:   -1,
			ok:    true,
			want:  Piece{Row: 1, Col: 2, Rotation: RotationUp},
		},
		{
			name:  "blocked neighbor falls back to left kick",
			board: boardFrom(t, "...R..", "......"),
			piece: Piece{Row: 11, Col: 2, Rotation: RotationUp},
			dir:   1,
			ok:    true,
			want:  Piece{Row: 11, Col: 1, Rotation: RotationRight},
		},
		{
			name:  "one-wide well rejects",
			board: boardFrom(t, ".R.R..", ".R.R.."),
			piece: Piece{Row: 12, Col: 2, Rotation: RotationUp},
			dir:   1,
			ok:    false,
			want:  Piece{Row: 12, Col: 2, Rotation: RotationUp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.board.TryRotate(tt.piece, tt.dir)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, tt.board.CanPlace(got, 0, 0))
			}
		})
	}
}

func TestRotationCycle(t *testing.T) {
	r := RotationUp
	for _, want := range []Rotation{RotationRight, RotationDown, RotationLeft, RotationUp} {
		r = r.Rotate(1)
		assert.Equal(t, want, r)
	}
	assert.Equal(t, RotationLeft, RotationUp.Rotate(-1))
}

func TestHardDropAndGhost(t *testing.T) {
	board := boardFrom(t, "..B...", "..G...")
	p := Piece{Row: 1, Col: 2, Rotation: RotationUp}

	assert.Equal(t, 10, board.HardDropRow(p))
	ghost := board.Ghost(p)
	assert.Equal(t, Pos{Row: 10, Col: 2}, ghost.Axis())
	assert.Equal(t, Pos{Row: 9, Col: 2}, ghost.Child())

	down := Piece{Row: 1, Col: 0, Rotation: RotationDown}
	assert.Equal(t, 11, board.HardDropRow(down))
}

func TestPlaceDropsOutOfBoundsChild(t *testing.T) {
	board := NewBoard(13, 6)
	p := Piece{Row: 0, Col: 2, Rotation: RotationUp, AxisColor: ColorRed, ChildColor: ColorBlue}

	placed := board.Place(p)
	assert.Equal(t, ColorRed, placed.At(0, 2).Color)
	assert.Equal(t, 1, placed.OccupiedCount())
	assert.Equal(t, 0, board.OccupiedCount(), "source board must not change")
}

func TestApplyGravity(t *testing.T) {
	board := boardFrom(t,
		"R.....",
		"......",
		"G.Y...",
		"......",
		"B.....",
	)

	settled := board.ApplyGravity()
	want := boardFrom(t,
		"R.....",
		"G.....",
		"B.Y...",
	)
	assert.True(t, settled.Equal(want), "got\n%s", settled)
	assert.True(t, settled.ApplyGravity().Equal(settled), "gravity must be idempotent")
	assert.False(t, BoardChanged(settled, settled.ApplyGravity()))
	assert.True(t, BoardChanged(board, settled))
}

func TestPopThenGravity(t *testing.T) {
	board := boardFrom(t,
		"Y.....",
		"RRRR..",
		"GBBG..",
	)
	cleared := board.Pop([]Pos{{11, 0}, {11, 1}, {11, 2}, {11, 3}})
	assert.Equal(t, board.OccupiedCount()-4, cleared.OccupiedCount())

	settled := cleared.ApplyGravity()
	assert.LessOrEqual(t, settled.OccupiedCount(), board.OccupiedCount())
	assert.Equal(t, ColorYellow, settled.At(11, 0).Color)
	assert.Equal(t, ColorGreen, settled.At(12, 0).Color)
	assert.Equal(t, ColorBlue, settled.At(12, 1).Color)
}

func TestBoardString(t *testing.T) {
	board := boardFrom(t, "RG..BP")
	lines := board.String()
	assert.Contains(t, lines, "RG..BP")
}
