package engine

import "time"

// Phase is the state machine phase of a session.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseChecking
	PhasePopping
	PhaseSettling
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseChecking:
		return "checking"
	case PhasePopping:
		return "popping"
	case PhaseSettling:
		return "settling"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Active reports whether a game is in progress (pausable).
func (p Phase) Active() bool {
	return p != PhaseIdle && p != PhaseGameOver
}

// Settings is the persisted player preference record.
type Settings struct {
	ShowGhost bool
	SFXVolume float64 // 0..1
	BGMVolume float64 // 0..1
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() Settings {
	return Settings{
		ShowGhost: true,
		SFXVolume: 0.5,
		BGMVolume: 0,
	}
}

// Session is the complete state of one game. It is treated as an immutable
// value: Reduce returns a new Session and never edits the one it was given.
type Session struct {
	Phase     Phase
	PrevPhase Phase // Phase interrupted by a pause

	Board   Board
	Current *Piece // nil when no piece is live
	Next    [2]Piece

	Score        int
	Level        int
	TotalCleared int
	CurrentChain int
	MaxChain     int
	ChainHistory []ChainStep

	DropTimer time.Duration
	LockTimer time.Duration

	// PopCells lists the cells being cleared while in PhasePopping.
	PopCells []Pos

	HighScores []HighScore
	Settings   Settings

	// Recorded is set once the game's high-score entry has been merged.
	Recorded bool
}

// NewSession returns an idle session with an empty board.
func NewSession(rules Rules, highScores []HighScore, settings Settings) Session {
	return Session{
		Phase:      PhaseIdle,
		Board:      NewBoard(rules.Rows, rules.Cols),
		HighScores: highScores,
		Settings:   settings,
	}
}

// HasPiece reports whether a live piece exists.
func (s Session) HasPiece() bool {
	return s.Current != nil
}

// HighScore returns the best recorded score, or 0.
func (s Session) HighScore() int {
	if len(s.HighScores) == 0 {
		return 0
	}
	return s.HighScores[0].Score
}

// ActionKind enumerates the closed set of inputs the engine accepts.
type ActionKind uint8

const (
	ActionStart ActionKind = iota
	ActionPause
	ActionResume
	ActionTogglePause
	ActionRestart
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
	ActionTick
	ActionPopComplete
	ActionSettleComplete
	ActionToggleGhost
	ActionSetSFXVolume
)

var actionNames = [...]string{
	ActionStart:          "start",
	ActionPause:          "pause",
	ActionResume:         "resume",
	ActionTogglePause:    "toggle_pause",
	ActionRestart:        "restart",
	ActionMoveLeft:       "move_left",
	ActionMoveRight:      "move_right",
	ActionRotateCW:       "rotate_cw",
	ActionRotateCCW:      "rotate_ccw",
	ActionSoftDrop:       "soft_drop",
	ActionHardDrop:       "hard_drop",
	ActionTick:           "tick",
	ActionPopComplete:    "pop_complete",
	ActionSettleComplete: "settle_complete",
	ActionToggleGhost:    "toggle_ghost",
	ActionSetSFXVolume:   "set_sfx_volume",
}

// String returns the action name.
func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "unknown"
}

// Action is a single engine input. Delta is used by ActionTick and Volume by
// ActionSetSFXVolume; other kinds ignore both.
type Action struct {
	Kind   ActionKind
	Delta  time.Duration
	Volume float64
}

// Do returns a parameterless action.
func Do(kind ActionKind) Action {
	return Action{Kind: kind}
}

// Tick returns a tick action carrying elapsed time.
func Tick(d time.Duration) Action {
	return Action{Kind: ActionTick, Delta: d}
}

// SetSFXVolume returns a volume action. v is clamped to 0..1.
func SetSFXVolume(v float64) Action {
	return Action{Kind: ActionSetSFXVolume, Volume: clampUnit(v)}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
