package engine

import "time"

// Rules holds every tuning constant of the engine. Tables are data so they can
// be tuned from configuration without touching the arithmetic.
type Rules struct {
	Rows       int // Total rows including hidden rows
	Cols       int
	HiddenRows int // Rows above the visible play area

	Colors   int // Active palette size
	SpawnRow int // Axis row of a freshly spawned piece
	SpawnCol int

	MinGroupSize int

	// ChainBonus is indexed by chainCount-1, clamped to the last entry.
	ChainBonus []int
	// ColorBonus is indexed by the number of distinct colors popped, clamped.
	ColorBonus []int
	// LevelThresholds[i] is the cumulative cleared count needed for level i.
	LevelThresholds []int
	MaxLevel        int

	// DropIntervals is indexed by level, clamped to the last entry.
	DropIntervals  []time.Duration
	LockDelay      time.Duration
	PopDuration    time.Duration
	SettleDuration time.Duration

	HighScoreCount int
}

// DefaultRules returns the reference configuration.
func DefaultRules() Rules {
	return Rules{
		Rows:         13,
		Cols:         6,
		HiddenRows:   1,
		Colors:       5,
		SpawnRow:     1,
		SpawnCol:     2,
		MinGroupSize: 4,
		ChainBonus:   []int{1, 3, 6, 12, 24, 48, 96, 192, 384, 768},
		ColorBonus:   []int{0, 0, 3, 6, 12, 24},
		LevelThresholds: []int{
			0, 30, 60, 100, 150, 210, 280, 360, 450, 550, 660, 780, 910, 1050, 1200,
		},
		MaxLevel: 14,
		DropIntervals: msTable(
			1000, 900, 800, 700, 600, 500, 450, 400, 350, 300, 250, 200, 180, 150, 120,
		),
		LockDelay:      500 * time.Millisecond,
		PopDuration:    600 * time.Millisecond,
		SettleDuration: 200 * time.Millisecond,
		HighScoreCount: 5,
	}
}

func msTable(ms ...int) []time.Duration {
	out := make([]time.Duration, len(ms))
	for i, v := range ms {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

// VisibleRows returns the number of rows shown to the player.
func (r Rules) VisibleRows() int {
	return r.Rows - r.HiddenRows
}

// DropInterval returns the gravity interval for a level.
func (r Rules) DropInterval(level int) time.Duration {
	if len(r.DropIntervals) == 0 {
		return time.Second
	}
	if level < 0 {
		level = 0
	}
	if level >= len(r.DropIntervals) {
		level = len(r.DropIntervals) - 1
	}
	return r.DropIntervals[level]
}
