// Package engine implements the puyo game engine: board physics, piece
// generation, chain detection, scoring and the phase state machine.
//
// The package is pure. It owns no clock, performs no I/O and never blocks;
// callers feed it abstract actions (including elapsed-time ticks) and read
// back immutable session values.
package engine

import "fmt"

// Color identifies a puyo color. ColorNone marks an empty cell.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
)

// PaletteSize is the number of distinct colors the engine knows about.
const PaletteSize = int(ColorPurple)

// Palette returns the first n colors of the palette.
func Palette(n int) []Color {
	if n < 1 {
		n = 1
	}
	if n > PaletteSize {
		n = PaletteSize
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i + 1)
	}
	return colors
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII dumps.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	default:
		return '.'
	}
}

// CellState annotates a cell for renderers. It never affects physics.
type CellState uint8

const (
	CellSettled CellState = iota
	CellFalling
	CellGhost
)

// Cell is a single board cell.
type Cell struct {
	Color Color
	State CellState
}

// Occupied reports whether the cell holds a puyo.
func (c Cell) Occupied() bool {
	return c.Color != ColorNone
}

// Pos is a board coordinate. Row 0 is the top (hidden) row.
type Pos struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rotation is the direction of the child puyo relative to the axis.
type Rotation uint8

const (
	RotationUp Rotation = iota
	RotationRight
	RotationDown
	RotationLeft
)

// Rotate returns the next rotation state: +1 is clockwise, -1 counter-clockwise.
func (r Rotation) Rotate(dir int) Rotation {
	return Rotation(((int(r)+dir)%4 + 4) % 4)
}

// Offset returns the child's (row, col) offset from the axis.
func (r Rotation) Offset() (int, int) {
	switch r {
	case RotationRight:
		return 0, 1
	case RotationDown:
		return 1, 0
	case RotationLeft:
		return 0, -1
	default:
		return -1, 0
	}
}

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case RotationUp:
		return "up"
	case RotationRight:
		return "right"
	case RotationDown:
		return "down"
	case RotationLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Piece is a falling pair: an axis puyo and a child orbiting it.
type Piece struct {
	Row        int
	Col        int
	Rotation   Rotation
	AxisColor  Color
	ChildColor Color
}

// Axis returns the axis position.
func (p Piece) Axis() Pos {
	return Pos{Row: p.Row, Col: p.Col}
}

// Child returns the child position derived from the rotation.
func (p Piece) Child() Pos {
	dr, dc := p.Rotation.Offset()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Shift returns the piece offset by (dRow, dCol).
func (p Piece) Shift(dRow, dCol int) Piece {
	p.Row += dRow
	p.Col += dCol
	return p
}
