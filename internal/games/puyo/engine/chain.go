package engine

// Mask is a 4-bit connection mask: up=8, right=4, down=2, left=1.
type Mask uint8

const (
	MaskLeft  Mask = 1
	MaskDown  Mask = 2
	MaskRight Mask = 4
	MaskUp    Mask = 8
)

// neighbors lists the 4-directional offsets in up, right, down, left order.
var neighbors = [4]struct {
	dr, dc int
	bit    Mask
}{
	{-1, 0, MaskUp},
	{0, 1, MaskRight},
	{1, 0, MaskDown},
	{0, -1, MaskLeft},
}

// Group is a connected set of same-colored cells.
type Group struct {
	Color Color
	Cells []Pos
}

// Size returns the number of cells in the group.
func (g Group) Size() int {
	return len(g.Cells)
}

// FindPoppableGroups flood-fills same-colored 4-connected components and
// returns those with at least minSize cells. Each cell is visited at most once.
func FindPoppableGroups(b Board, minSize int) []Group {
	visited := make([]bool, len(b.cells))
	var groups []Group
	queue := make([]Pos, 0, len(b.cells))

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			start := b.index(row, col)
			color := b.cells[start].Color
			if color == ColorNone || visited[start] {
				continue
			}

			visited[start] = true
			queue = append(queue[:0], Pos{Row: row, Col: col})
			var cells []Pos

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				cells = append(cells, p)

				for _, n := range neighbors {
					nr, nc := p.Row+n.dr, p.Col+n.dc
					if !b.InBounds(nr, nc) {
						continue
					}
					ni := b.index(nr, nc)
					if visited[ni] || b.cells[ni].Color != color {
						continue
					}
					visited[ni] = true
					queue = append(queue, Pos{Row: nr, Col: nc})
				}
			}

			if len(cells) >= minSize {
				groups = append(groups, Group{Color: color, Cells: cells})
			}
		}
	}

	return groups
}

// GroupsToCells flattens groups into a single coordinate list.
func GroupsToCells(groups []Group) []Pos {
	n := 0
	for _, g := range groups {
		n += len(g.Cells)
	}
	cells := make([]Pos, 0, n)
	for _, g := range groups {
		cells = append(cells, g.Cells...)
	}
	return cells
}

// CountUniqueColors returns the number of distinct colors among the groups.
func CountUniqueColors(groups []Group) int {
	var seen [PaletteSize + 1]bool
	n := 0
	for _, g := range groups {
		if !seen[g.Color] {
			seen[g.Color] = true
			n++
		}
	}
	return n
}

// ConnectionMask returns the mask of same-colored occupied neighbors of
// (row, col). Empty cells have mask 0. Used for rendering only.
func (b Board) ConnectionMask(row, col int) Mask {
	c := b.At(row, col)
	if !c.Occupied() {
		return 0
	}
	var mask Mask
	for _, n := range neighbors {
		if b.At(row+n.dr, col+n.dc).Color == c.Color {
			mask |= n.bit
		}
	}
	return mask
}

// ConnectionMasks computes the mask of every cell, indexed [row][col].
func (b Board) ConnectionMasks() [][]Mask {
	masks := make([][]Mask, b.rows)
	for row := range masks {
		masks[row] = make([]Mask, b.cols)
		for col := range masks[row] {
			masks[row][col] = b.ConnectionMask(row, col)
		}
	}
	return masks
}
