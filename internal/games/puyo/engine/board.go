package engine

import "strings"

// Board is a fixed-size grid of cells stored in row-major order.
// Board values are immutable in effect: every mutating operation returns a
// new Board and leaves the receiver untouched, so snapshots handed to
// renderers never change underneath them.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows, hidden rows included.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	return b.cols
}

func (b Board) index(row, col int) int {
	return row*b.cols + col
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row, col). Out-of-bounds reads return an empty cell.
func (b Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[b.index(row, col)]
}

// Occupied reports whether (row, col) holds a puyo.
func (b Board) Occupied(row, col int) bool {
	return b.At(row, col).Occupied()
}

func (b Board) isFree(row, col int) bool {
	return b.InBounds(row, col) && !b.cells[b.index(row, col)].Occupied()
}

// clone returns a deep copy sharing nothing with b.
func (b Board) clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// With returns a copy of the board with (row, col) set. Out-of-bounds writes
// are ignored.
func (b Board) With(row, col int, c Cell) Board {
	if !b.InBounds(row, col) {
		return b
	}
	nb := b.clone()
	nb.cells[nb.index(row, col)] = c
	return nb
}

// OccupiedCount returns the number of occupied cells.
func (b Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Occupied() {
			n++
		}
	}
	return n
}

// Equal compares dimensions and colors. Cell annotations are ignored.
func (b Board) Equal(other Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, c := range b.cells {
		if c.Color != other.cells[i].Color {
			return false
		}
	}
	return true
}

// BoardChanged reports whether any cell's color differs between two boards.
func BoardChanged(prev, next Board) bool {
	return !prev.Equal(next)
}

// CanPlace reports whether the piece, shifted by (dRow, dCol), has both its
// axis and child cells in bounds and unoccupied. Every collision check in the
// engine goes through here.
func (b Board) CanPlace(p Piece, dRow, dCol int) bool {
	p = p.Shift(dRow, dCol)
	axis, child := p.Axis(), p.Child()
	return b.isFree(axis.Row, axis.Col) && b.isFree(child.Row, child.Col)
}

// CanFallDown reports whether the piece can move one row down.
func (b Board) CanFallDown(p Piece) bool {
	return b.CanPlace(p, 1, 0)
}

// TryMove shifts the piece one column (dir -1 or +1). It returns false and the
// original piece if the destination is blocked.
func (b Board) TryMove(p Piece, dir int) (Piece, bool) {
	if !b.CanPlace(p, 0, dir) {
		return p, false
	}
	return p.Shift(0, dir), true
}

// TryRotate rotates the piece (dir +1 clockwise, -1 counter-clockwise).
// Kicks are tried in a fixed order: in place, one column right, one column
// left, and, only when the resulting orientation is up, one row down.
func (b Board) TryRotate(p Piece, dir int) (Piece, bool) {
	rotated := p
	rotated.Rotation = p.Rotation.Rotate(dir)

	kicks := [][2]int{{0, 0}, {0, 1}, {0, -1}}
	if rotated.Rotation == RotationUp {
		kicks = append(kicks, [2]int{1, 0})
	}
	for _, k := range kicks {
		if b.CanPlace(rotated, k[0], k[1]) {
			return rotated.Shift(k[0], k[1]), true
		}
	}
	return p, false
}

// HardDropRow returns the axis row the piece would come to rest on.
func (b Board) HardDropRow(p Piece) int {
	row := p.Row
	for b.CanPlace(p, row-p.Row+1, 0) {
		row++
	}
	return row
}

// Ghost returns the piece relocated to its hard-drop row.
func (b Board) Ghost(p Piece) Piece {
	p.Row = b.HardDropRow(p)
	return p
}

// Place bakes both units of the piece into a new board. A unit that lies out
// of bounds (a child in overflow above the hidden row) is silently dropped.
func (b Board) Place(p Piece) Board {
	nb := b.clone()
	axis, child := p.Axis(), p.Child()
	if nb.InBounds(axis.Row, axis.Col) {
		nb.cells[nb.index(axis.Row, axis.Col)] = Cell{Color: p.AxisColor}
	}
	if nb.InBounds(child.Row, child.Col) {
		nb.cells[nb.index(child.Row, child.Col)] = Cell{Color: p.ChildColor}
	}
	return nb
}

// ApplyGravity compacts every column downward, preserving the relative order
// of occupied cells. Applying it to a settled board is a no-op.
func (b Board) ApplyGravity() Board {
	nb := NewBoard(b.rows, b.cols)
	for col := 0; col < b.cols; col++ {
		write := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			c := b.cells[b.index(row, col)]
			if !c.Occupied() {
				continue
			}
			nb.cells[nb.index(write, col)] = Cell{Color: c.Color}
			write--
		}
	}
	return nb
}

// Pop returns a new board with the given cells cleared. Gravity is not applied.
func (b Board) Pop(cells []Pos) Board {
	nb := b.clone()
	for _, p := range cells {
		if nb.InBounds(p.Row, p.Col) {
			nb.cells[nb.index(p.Row, p.Col)] = Cell{}
		}
	}
	return nb
}

// String dumps the board as one line per row using Color.Char.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			sb.WriteRune(b.cells[b.index(row, col)].Color.Char())
		}
	}
	return sb.String()
}
