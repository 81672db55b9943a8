package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainScore(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		step ChainStep
		want int
	}{
		{"single color first chain", ChainStep{ChainCount: 1, PoppedCount: 4, ColorCount: 1}, 40},
		{"second chain", ChainStep{ChainCount: 2, PoppedCount: 4, ColorCount: 1}, 120},
		{"two colors", ChainStep{ChainCount: 1, PoppedCount: 8, ColorCount: 2}, 380},
		{"chain beyond table", ChainStep{ChainCount: 25, PoppedCount: 4, ColorCount: 1}, 4 * 10 * 768},
		{"colors beyond table", ChainStep{ChainCount: 1, PoppedCount: 4, ColorCount: 9}, 40 + 24*100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.ChainScore(tt.step))
		})
	}
}

func TestLevel(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 0, rules.Level(0))
	assert.Equal(t, 1, rules.Level(30))
	assert.Equal(t, 0, rules.Level(29))
	assert.Equal(t, 14, rules.Level(1_000_000))

	rules.MaxLevel = 3
	assert.Equal(t, 3, rules.Level(1_000_000))
}

func TestDropInterval(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, time.Second, rules.DropInterval(0))
	assert.Equal(t, 120*time.Millisecond, rules.DropInterval(99))
	assert.Equal(t, time.Second, rules.DropInterval(-1))
}

func TestUpdateHighScores(t *testing.T) {
	var list []HighScore
	for _, s := range []int{100, 500, 300, 200, 400} {
		list = UpdateHighScores(list, HighScore{Score: s}, 5)
	}
	require.Len(t, list, 5)

	before := append([]HighScore(nil), list...)
	updated := UpdateHighScores(list, HighScore{Score: 250}, 5)

	require.Len(t, updated, 5)
	var scores []int
	for _, h := range updated {
		scores = append(scores, h.Score)
	}
	assert.Equal(t, []int{500, 400, 300, 250, 200}, scores)
	assert.Equal(t, before, list, "input list must not be modified")

	low := UpdateHighScores(updated, HighScore{Score: 1}, 5)
	assert.Equal(t, updated, low)
}
