package puyo

import (
	"math"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

// scoreStore is the subset of *storage.Store the game persists through.
type scoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	LoadSettings(gameID string) (storage.Settings, bool, error)
	SaveSettings(gameID string, s storage.Settings) error
}

// AttachStore enables score and settings persistence. When called after
// Reset, the game is reset again so the persisted records take effect.
func (g *Game) AttachStore(store *storage.Store) {
	if store == nil {
		return
	}
	g.attachStore(store)
}

func (g *Game) attachStore(s scoreStore) {
	g.store = s
	if g.eng != nil {
		g.Reset(g.rcfg)
	}
}

// loadHighScores reads the persisted list. Storage failures degrade to an
// empty list; the game never refuses to start over them.
func (g *Game) loadHighScores() []engine.HighScore {
	if g.store == nil {
		return nil
	}
	entries, err := g.store.TopScores(GameID, g.rules.HighScoreCount)
	if err != nil {
		g.log.Warn("cannot load high scores", "err", err)
		return nil
	}
	hs := make([]engine.HighScore, 0, len(entries))
	for _, e := range entries {
		hs = append(hs, engine.HighScore{
			Score:     e.Score,
			Level:     e.Level,
			Chains:    e.Chains,
			Timestamp: e.CreatedAt,
		})
	}
	return hs
}

// loadSettings returns the persisted settings, or the configured defaults
// when none are stored.
func (g *Game) loadSettings() engine.Settings {
	defaults := engine.Settings{
		ShowGhost: g.cfg.Settings.ShowGhost,
		SFXVolume: g.cfg.Settings.SFXVolume,
		BGMVolume: g.cfg.Settings.BGMVolume,
	}
	if g.store == nil {
		return defaults
	}
	s, found, err := g.store.LoadSettings(GameID)
	if err != nil {
		g.log.Warn("cannot load settings", "err", err)
		return defaults
	}
	if !found {
		return defaults
	}
	loaded := engine.Settings{
		ShowGhost: s.ShowGhost,
		SFXVolume: storedVolume(s.SFXVolume, defaults.SFXVolume),
		BGMVolume: storedVolume(s.BGMVolume, defaults.BGMVolume),
	}
	if loaded.SFXVolume != s.SFXVolume || loaded.BGMVolume != s.BGMVolume {
		g.log.Warn("stored volume out of range",
			"sfx", s.SFXVolume, "bgm", s.BGMVolume,
			"using_sfx", loaded.SFXVolume, "using_bgm", loaded.BGMVolume,
		)
	}
	return loaded
}

// storedVolume clamps a persisted volume to 0..1. A NaN falls back to the
// configured default.
func storedVolume(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return core.ClampF(v, 0, 1)
}

func (g *Game) saveSettings(s engine.Settings) {
	if g.store == nil {
		return
	}
	err := g.store.SaveSettings(GameID, storage.Settings{
		ShowGhost: s.ShowGhost,
		SFXVolume: s.SFXVolume,
		BGMVolume: s.BGMVolume,
	})
	if err != nil {
		g.log.Warn("cannot save settings", "err", err)
	}
}

func (g *Game) saveScore(hs engine.HighScore) {
	if g.store == nil {
		return
	}
	_, err := g.store.SaveScore(storage.ScoreEntry{
		GameID:    GameID,
		RunID:     g.runID,
		Score:     hs.Score,
		Level:     hs.Level,
		Chains:    hs.Chains,
		CreatedAt: hs.Timestamp,
	})
	if err != nil {
		g.log.Warn("cannot save score", "err", err)
	}
}
