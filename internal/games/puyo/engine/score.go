package engine

import (
	"sort"
	"time"
)

// ChainStep records one clearing iteration of a chain reaction.
type ChainStep struct {
	ChainCount  int // 1 for the first pop of a reaction
	PoppedCount int
	ColorCount  int
}

// HighScore is one entry in the high-score list.
type HighScore struct {
	Score     int
	Level     int
	Chains    int // Longest chain of the game
	Timestamp time.Time
}

// ChainScore converts a chain step into a score delta:
// popped*10*chainMultiplier + colorBonus*100.
func (r Rules) ChainScore(step ChainStep) int {
	multiplier := lookupClamped(r.ChainBonus, step.ChainCount-1, 1)
	bonus := lookupClamped(r.ColorBonus, step.ColorCount, 0)
	return step.PoppedCount*10*multiplier + bonus*100
}

// Level returns the highest level whose threshold totalCleared has reached,
// clamped to MaxLevel.
func (r Rules) Level(totalCleared int) int {
	level := 0
	for i, threshold := range r.LevelThresholds {
		if totalCleared >= threshold {
			level = i
		}
	}
	if level > r.MaxLevel {
		level = r.MaxLevel
	}
	return level
}

// lookupClamped indexes table, clamping the index into range.
// An empty table yields fallback.
func lookupClamped(table []int, idx, fallback int) int {
	if len(table) == 0 {
		return fallback
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(table) {
		idx = len(table) - 1
	}
	return table[idx]
}

// UpdateHighScores appends entry, sorts by score descending and keeps the top n.
// The input slice is not modified.
func UpdateHighScores(current []HighScore, entry HighScore, n int) []HighScore {
	updated := make([]HighScore, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, entry)
	sort.SliceStable(updated, func(i, j int) bool {
		return updated[i].Score > updated[j].Score
	})
	if n >= 0 && len(updated) > n {
		updated = updated[:n]
	}
	return updated
}
