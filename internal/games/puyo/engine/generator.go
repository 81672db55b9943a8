package engine

import "math/rand"

// Generator produces random pieces. Colors are drawn independently and
// uniformly; consecutive repeats are allowed.
type Generator struct {
	rng      *rand.Rand
	palette  []Color
	spawnRow int
	spawnCol int
}

// NewGenerator creates a generator for the given rules.
func NewGenerator(rules Rules, rng *rand.Rand) *Generator {
	return &Generator{
		rng:      rng,
		palette:  Palette(rules.Colors),
		spawnRow: rules.SpawnRow,
		spawnCol: rules.SpawnCol,
	}
}

func (g *Generator) color() Color {
	return g.palette[g.rng.Intn(len(g.palette))]
}

// Piece returns a new piece at the spawn position with the child above the axis.
func (g *Generator) Piece() Piece {
	return Piece{
		Row:        g.spawnRow,
		Col:        g.spawnCol,
		Rotation:   RotationUp,
		AxisColor:  g.color(),
		ChildColor: g.color(),
	}
}

// NextPair returns two fresh pieces.
func (g *Generator) NextPair() [2]Piece {
	return [2]Piece{g.Piece(), g.Piece()}
}
