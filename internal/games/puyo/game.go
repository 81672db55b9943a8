// Package puyo adapts the puyo engine to the platform: it maps input
// actions to engine actions, owns the wall-clock timers for the pop and
// settle animations, persists scores and settings, and forwards sound cues.
package puyo

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "puyo"

// volumeStep is the change applied by one volume key press.
const volumeStep = 0.1

// Package-level variables set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset and reports whether the
// name was known. Unknown names reset to the config as loaded.
func SetDifficultyPreset(preset string) bool {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
	return ok
}

// SetStartLevel sets the starting gravity level. 0 means the first level.
func SetStartLevel(level int) {
	startLevel = max(0, level)
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          GameID,
		Title:       "Puyo",
		Description: "Drop color pairs, link four or more, build chains",
	}, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	cfg   config.PuyoConfig
	rules engine.Rules
	eng   *engine.Engine
	rcfg  core.RuntimeConfig

	tick     uint64
	frame    time.Duration // Elapsed time fed to the engine per platform tick
	popTimer time.Duration
	setTimer time.Duration

	configPath string
	preset     config.DifficultyPreset
	startLevel int

	runID string
	store scoreStore
	audio core.Audio
	log   *log.Logger

	screenW int
	screenH int
}

// New creates a puyo game using the package-level CLI settings. Reset must
// be called before use.
func New() *Game {
	return &Game{
		configPath: configPath,
		preset:     difficultyPreset,
		startLevel: startLevel,
		audio:      core.NopAudio{},
		log:        log.Default().WithPrefix(GameID),
	}
}

// Configure overrides the difficulty preset and start level of this game
// only. It takes effect on the next Reset.
func (g *Game) Configure(preset config.DifficultyPreset, level int) {
	g.preset = preset
	g.startLevel = max(0, level)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Puyo"
}

// AttachAudio sets the sound collaborator. A nil audio discards cues.
func (g *Game) AttachAudio(a core.Audio) {
	if a == nil {
		a = core.NopAudio{}
	}
	g.audio = a
	if g.eng != nil {
		g.audio.SetVolume(g.eng.State().Settings.SFXVolume)
	}
}

// Reset loads configuration and persisted data and creates an idle engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rcfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.popTimer = 0
	g.setTimer = 0

	g.cfg = g.loadConfig()
	g.rules = RulesFromConfig(g.cfg)
	g.frame = frameDelta(cfg.TickRate, g.cfg.Timing.MaxFrameDeltaMs)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hs := g.loadHighScores()
	settings := g.loadSettings()

	g.eng = engine.New(g.rules, rand.New(rand.NewSource(seed)),
		engine.WithHighScores(hs),
		engine.WithSettings(settings),
	)
	g.eng.Subscribe(g.onEvent)
	g.newRun()
	g.audio.SetVolume(settings.SFXVolume)

	g.log.Debug("reset",
		"seed", seed,
		"colors", g.rules.Colors,
		"rows", g.rules.Rows,
		"cols", g.rules.Cols,
		"preset", string(g.preset),
		"start_level", g.startLevel,
	)
}

// loadConfig resolves the puyo config and applies the preset and start
// level. A broken config file falls back to defaults with a warning.
func (g *Game) loadConfig() config.PuyoConfig {
	cfg, err := config.LoadPuyo(g.configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultPuyoConfig()
	}
	if g.preset != "" {
		config.ApplyPuyoPreset(&cfg, g.preset)
	}
	config.SetStartLevel(&cfg, g.startLevel)
	return cfg
}

// RulesFromConfig maps a validated config onto engine rules.
func RulesFromConfig(cfg config.PuyoConfig) engine.Rules {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	drops := make([]time.Duration, len(cfg.Timing.DropIntervalsMs))
	for i, v := range cfg.Timing.DropIntervalsMs {
		drops[i] = ms(v)
	}

	return engine.Rules{
		Rows:            cfg.Board.Rows,
		Cols:            cfg.Board.Cols,
		HiddenRows:      cfg.Board.HiddenRows,
		Colors:          cfg.Pieces.Colors,
		SpawnRow:        cfg.Pieces.SpawnRow,
		SpawnCol:        cfg.Pieces.SpawnCol,
		MinGroupSize:    cfg.Rules.MinGroupSize,
		ChainBonus:      append([]int(nil), cfg.Rules.ChainBonus...),
		ColorBonus:      append([]int(nil), cfg.Rules.ColorBonus...),
		LevelThresholds: append([]int(nil), cfg.Rules.LevelThresholds...),
		MaxLevel:        cfg.Rules.MaxLevel,
		DropIntervals:   drops,
		LockDelay:       ms(cfg.Timing.LockDelayMs),
		PopDuration:     ms(cfg.Timing.PopDurationMs),
		SettleDuration:  ms(cfg.Timing.SettleDurationMs),
		HighScoreCount:  cfg.Rules.HighScoreCount,
	}
}

// frameDelta converts the platform tick rate into the per-tick duration,
// clamped so a slow platform cannot skip the piece through several rows.
func frameDelta(tickRate, maxMs int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	d := time.Second / time.Duration(tickRate)
	if maxMs > 0 {
		d = min(d, time.Duration(maxMs)*time.Millisecond)
	}
	return d
}

// newRun assigns a fresh run id and rebinds the logger to it.
func (g *Game) newRun() {
	g.runID = uuid.NewString()
	g.log = log.Default().WithPrefix(GameID).With("run", g.runID[:8])
}

// RunID returns the id of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Engine exposes the underlying engine, mainly for tests and tools.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Step applies the frame's actions in order, then advances time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	for _, a := range in.Actions {
		g.handle(a)
	}
	g.advance(g.frame)
	return core.StepResult{State: g.State()}
}

// handle maps one platform action onto the engine.
func (g *Game) handle(a core.Action) {
	s := g.eng.State()
	switch a {
	case core.ActionConfirm:
		if s.Phase == engine.PhaseIdle {
			g.eng.Dispatch(engine.Do(engine.ActionStart))
		}
	case core.ActionHardDrop:
		if s.Phase == engine.PhaseIdle {
			g.eng.Dispatch(engine.Do(engine.ActionStart))
			return
		}
		g.eng.Dispatch(engine.Do(engine.ActionHardDrop))
	case core.ActionLeft:
		g.eng.Dispatch(engine.Do(engine.ActionMoveLeft))
	case core.ActionRight:
		g.eng.Dispatch(engine.Do(engine.ActionMoveRight))
	case core.ActionUp, core.ActionRotateCW:
		g.eng.Dispatch(engine.Do(engine.ActionRotateCW))
	case core.ActionRotateCCW:
		g.eng.Dispatch(engine.Do(engine.ActionRotateCCW))
	case core.ActionDown:
		g.eng.Dispatch(engine.Do(engine.ActionSoftDrop))
	case core.ActionPause:
		g.eng.Dispatch(engine.Do(engine.ActionTogglePause))
	case core.ActionRestart:
		g.eng.Dispatch(engine.Do(engine.ActionRestart))
	case core.ActionToggleGhost:
		g.eng.Dispatch(engine.Do(engine.ActionToggleGhost))
	case core.ActionVolumeUp:
		g.eng.Dispatch(engine.SetSFXVolume(roundVolume(s.Settings.SFXVolume + volumeStep)))
	case core.ActionVolumeDown:
		g.eng.Dispatch(engine.SetSFXVolume(roundVolume(s.Settings.SFXVolume - volumeStep)))
	}
}

func roundVolume(v float64) float64 {
	return math.Round(v*10) / 10
}

// advance feeds elapsed time to the engine. Gravity and lock delay are engine
// timers; the pop and settle animations are timed here.
func (g *Game) advance(d time.Duration) {
	switch g.eng.State().Phase {
	case engine.PhaseFalling, engine.PhaseLocking:
		g.eng.Dispatch(engine.Tick(d))
	case engine.PhasePopping:
		g.popTimer += d
		if g.popTimer >= g.rules.PopDuration {
			g.popTimer = 0
			g.eng.Dispatch(engine.Do(engine.ActionPopComplete))
		}
	case engine.PhaseSettling:
		g.setTimer += d
		if g.setTimer >= g.rules.SettleDuration {
			g.setTimer = 0
			before := g.eng.State().Board
			g.eng.Dispatch(engine.Do(engine.ActionSettleComplete))
			g.log.Debug("settled", "moved", engine.BoardChanged(before, g.eng.State().Board))
		}
	}
}

// onEvent is the engine listener. It must not dispatch.
func (g *Game) onEvent(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.PhaseChangedEvent:
		// A resumed animation keeps its progress.
		if ev.From != engine.PhasePaused {
			switch ev.To {
			case engine.PhasePopping:
				g.popTimer = 0
			case engine.PhaseSettling:
				g.setTimer = 0
			}
		}
		g.log.Debug("phase", "from", ev.From, "to", ev.To)
		if ev.To == engine.PhaseGameOver {
			snap := g.Snapshot()
			g.log.Debug("final board",
				"tick", snap.Tick,
				"occupied", snap.Occupied,
				"max_chain", snap.MaxChain,
				"board", "\n"+snap.Board,
			)
		}

	case engine.ChainStepEvent:
		g.log.Debug("chain step",
			"chain", ev.Step.ChainCount,
			"popped", ev.Step.PoppedCount,
			"colors", ev.Step.ColorCount,
			"gain", ev.Gain,
			"score", ev.Score,
			"level", ev.Level,
		)

	case engine.CueEvent:
		g.audio.Play(soundFor(ev.Cue), ev.Chain)

	case engine.VolumeChangedEvent:
		g.audio.SetVolume(ev.Volume)

	case engine.SettingsChangedEvent:
		g.saveSettings(ev.Settings)

	case engine.HighScoresChangedEvent:
		g.log.Info("game recorded",
			"score", ev.Entry.Score,
			"level", ev.Entry.Level,
			"max_chain", ev.Entry.Chains,
		)
		g.saveScore(ev.Entry)
		g.newRun()
	}
}

func soundFor(c engine.Cue) core.Sound {
	switch c {
	case engine.CueDrop:
		return core.SoundDrop
	case engine.CuePop:
		return core.SoundPop
	case engine.CueChain:
		return core.SoundChain
	case engine.CueGameOver:
		return core.SoundGameOver
	default:
		return core.SoundMove
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.State()
	return core.GameState{
		Score:     s.Score,
		HighScore: max(s.HighScore(), s.Score),
		GameOver:  s.Phase == engine.PhaseGameOver,
		Paused:    s.Phase == engine.PhasePaused,
		Started:   s.Phase != engine.PhaseIdle,
	}
}
