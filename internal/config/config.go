// Package config provides YAML-based game configuration loading and
// difficulty presets for the puyo platform.
package config

// PuyoConfig contains all tunable configuration for the puyo game.
type PuyoConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Pieces   PiecesConfig   `yaml:"pieces"`
	Rules    RulesConfig    `yaml:"rules"`
	Timing   TimingConfig   `yaml:"timing"`
	Settings SettingsConfig `yaml:"settings"`
}

// BoardConfig defines the playfield size.
type BoardConfig struct {
	Rows       int `yaml:"rows"`        // Total rows including hidden rows
	Cols       int `yaml:"cols"`        // Columns
	HiddenRows int `yaml:"hidden_rows"` // Rows above the visible area
}

// PiecesConfig defines piece generation.
type PiecesConfig struct {
	Colors   int `yaml:"colors"`    // Active palette size (1-5)
	SpawnRow int `yaml:"spawn_row"` // Axis row of a spawned piece
	SpawnCol int `yaml:"spawn_col"` // Axis column of a spawned piece
}

// RulesConfig holds the scoring and progression tables.
type RulesConfig struct {
	MinGroupSize    int   `yaml:"min_group_size"`
	ChainBonus      []int `yaml:"chain_bonus"`      // Indexed by chain-1
	ColorBonus      []int `yaml:"color_bonus"`      // Indexed by distinct colors popped
	LevelThresholds []int `yaml:"level_thresholds"` // Cumulative cleared per level
	MaxLevel        int   `yaml:"max_level"`
	HighScoreCount  int   `yaml:"high_score_count"`
}

// TimingConfig holds durations in milliseconds.
type TimingConfig struct {
	DropIntervalsMs  []int `yaml:"drop_intervals_ms"` // Indexed by level
	LockDelayMs      int   `yaml:"lock_delay_ms"`
	PopDurationMs    int   `yaml:"pop_duration_ms"`
	SettleDurationMs int   `yaml:"settle_duration_ms"`
	MaxFrameDeltaMs  int   `yaml:"max_frame_delta_ms"` // Clamp for a single tick delta
}

// SettingsConfig holds default player settings used when none are persisted.
type SettingsConfig struct {
	ShowGhost bool    `yaml:"show_ghost"`
	SFXVolume float64 `yaml:"sfx_volume"`
	BGMVolume float64 `yaml:"bgm_volume"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
