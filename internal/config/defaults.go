package config

import (
	_ "embed"
)

//go:embed defaults/puyo.yaml
var defaultPuyoYAML []byte

// DefaultPuyoConfig returns the hardcoded default configuration.
// It matches defaults/puyo.yaml and is used if the embedded file cannot be parsed.
func DefaultPuyoConfig() PuyoConfig {
	return PuyoConfig{
		Board: BoardConfig{
			Rows:       13,
			Cols:       6,
			HiddenRows: 1,
		},
		Pieces: PiecesConfig{
			Colors:   5,
			SpawnRow: 1,
			SpawnCol: 2,
		},
		Rules: RulesConfig{
			MinGroupSize:    4,
			ChainBonus:      []int{1, 3, 6, 12, 24, 48, 96, 192, 384, 768},
			ColorBonus:      []int{0, 0, 3, 6, 12, 24},
			LevelThresholds: []int{0, 30, 60, 100, 150, 210, 280, 360, 450, 550, 660, 780, 910, 1050, 1200},
			MaxLevel:        14,
			HighScoreCount:  5,
		},
		Timing: TimingConfig{
			DropIntervalsMs:  []int{1000, 900, 800, 700, 600, 500, 450, 400, 350, 300, 250, 200, 180, 150, 120},
			LockDelayMs:      500,
			PopDurationMs:    600,
			SettleDurationMs: 200,
			MaxFrameDeltaMs:  100,
		},
		Settings: SettingsConfig{
			ShowGhost: true,
			SFXVolume: 0.5,
			BGMVolume: 0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "puyo":
		return defaultPuyoYAML
	default:
		return nil
	}
}
