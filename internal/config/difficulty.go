package config

import "math"

// presetScale returns the timing multiplier for a preset. Larger is slower.
func presetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyPuyoPreset modifies the config based on a difficulty preset.
// Easy and hard scale gravity and lock delay; fixed freezes level progression
// at the first level. Normal leaves the config untouched.
func ApplyPuyoPreset(cfg *PuyoConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Rules.MaxLevel = 0
		return
	}

	scale := presetScale(preset)
	if scale == 1.0 {
		return
	}

	intervals := make([]int, len(cfg.Timing.DropIntervalsMs))
	for i, ms := range cfg.Timing.DropIntervalsMs {
		intervals[i] = scaleMs(ms, scale)
	}
	cfg.Timing.DropIntervalsMs = intervals
	cfg.Timing.LockDelayMs = scaleMs(cfg.Timing.LockDelayMs, scale)

	switch preset {
	case DifficultyEasy:
		cfg.Pieces.Colors = clampInt(cfg.Pieces.Colors-1, 3, 5)
	case DifficultyHard:
		cfg.Pieces.Colors = 5
	}
}

// SetStartLevel drops the first n levels from the drop interval table so a
// game starts at level n's speed. Scoring thresholds are unchanged.
func SetStartLevel(cfg *PuyoConfig, n int) {
	if n <= 0 || len(cfg.Timing.DropIntervalsMs) == 0 {
		return
	}
	n = min(n, len(cfg.Timing.DropIntervalsMs)-1)
	cfg.Timing.DropIntervalsMs = append([]int(nil), cfg.Timing.DropIntervalsMs[n:]...)
}

func scaleMs(ms int, scale float64) int {
	return max(1, int(math.Round(float64(ms)*scale)))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
