package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem with the configuration at once.
func (c PuyoConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	b := c.Board
	if b.Cols < 2 {
		add("board.cols must be at least 2, got %d", b.Cols)
	}
	if b.HiddenRows < 0 {
		add("board.hidden_rows must not be negative, got %d", b.HiddenRows)
	}
	if b.Rows-b.HiddenRows < 2 {
		add("board must have at least 2 visible rows, got %d", b.Rows-b.HiddenRows)
	}

	p := c.Pieces
	if p.Colors < 1 || p.Colors > 5 {
		add("pieces.colors must be in 1..5, got %d", p.Colors)
	}
	if p.SpawnCol < 0 || p.SpawnCol >= b.Cols {
		add("pieces.spawn_col %d outside board", p.SpawnCol)
	}
	// The child spawns one row above the axis.
	if p.SpawnRow < 1 || p.SpawnRow >= b.Rows {
		add("pieces.spawn_row %d outside board", p.SpawnRow)
	}

	r := c.Rules
	if r.MinGroupSize < 2 {
		add("rules.min_group_size must be at least 2, got %d", r.MinGroupSize)
	}
	if len(r.ChainBonus) == 0 {
		add("rules.chain_bonus must not be empty")
	}
	if len(r.ColorBonus) == 0 {
		add("rules.color_bonus must not be empty")
	}
	if err := ascending("rules.level_thresholds", r.LevelThresholds, false); err != nil {
		errs = append(errs, err)
	}
	if len(r.LevelThresholds) > 0 && r.LevelThresholds[0] != 0 {
		add("rules.level_thresholds must start at 0")
	}
	if r.MaxLevel < 0 {
		add("rules.max_level must not be negative, got %d", r.MaxLevel)
	}
	if r.HighScoreCount < 1 {
		add("rules.high_score_count must be positive, got %d", r.HighScoreCount)
	}

	t := c.Timing
	if len(t.DropIntervalsMs) == 0 {
		add("timing.drop_intervals_ms must not be empty")
	}
	if err := ascending("timing.drop_intervals_ms", t.DropIntervalsMs, true); err != nil {
		errs = append(errs, err)
	}
	for _, v := range []struct {
		name string
		ms   int
	}{
		{"timing.lock_delay_ms", t.LockDelayMs},
		{"timing.pop_duration_ms", t.PopDurationMs},
		{"timing.settle_duration_ms", t.SettleDurationMs},
		{"timing.max_frame_delta_ms", t.MaxFrameDeltaMs},
	} {
		if v.ms < 0 {
			add("%s must not be negative, got %d", v.name, v.ms)
		}
	}

	s := c.Settings
	if s.SFXVolume < 0 || s.SFXVolume > 1 {
		add("settings.sfx_volume must be in 0..1, got %g", s.SFXVolume)
	}
	if s.BGMVolume < 0 || s.BGMVolume > 1 {
		add("settings.bgm_volume must be in 0..1, got %g", s.BGMVolume)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid puyo config: %w", err)
	}
	return nil
}

// ascending checks that values are sorted ascending (or descending when
// reversed is set). Equal neighbors are allowed.
func ascending(name string, values []int, reversed bool) error {
	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if (!reversed && cur < prev) || (reversed && cur > prev) {
			order := "ascending"
			if reversed {
				order = "descending"
			}
			return fmt.Errorf("%s must be %s, index %d", name, order, i)
		}
	}
	return nil
}
