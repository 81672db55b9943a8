package engine

// Event is a fire-and-forget notification produced by Reduce.
type Event interface {
	engineEvent()
}

// Cue names an audio/feedback cue.
type Cue uint8

const (
	CueMove Cue = iota
	CueDrop
	CuePop
	CueChain
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueDrop:
		return "drop"
	case CuePop:
		return "pop"
	case CueChain:
		return "chain"
	case CueGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// CueEvent asks collaborators to play a cue. Chain is set for CuePop and CueChain.
type CueEvent struct {
	Cue   Cue
	Chain int
}

// PhaseChangedEvent is emitted whenever the phase changes.
type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

// ChainStepEvent is emitted when a clearing step is scored.
type ChainStepEvent struct {
	Step  ChainStep
	Gain  int
	Score int
	Level int
}

// SettingsChangedEvent carries the updated settings record.
type SettingsChangedEvent struct {
	Settings Settings
}

// VolumeChangedEvent carries a new sound-effect volume.
type VolumeChangedEvent struct {
	Volume float64
}

// HighScoresChangedEvent is emitted when a finished game's entry is merged.
type HighScoresChangedEvent struct {
	Entry      HighScore
	HighScores []HighScore
}

func (CueEvent) engineEvent()               {}
func (PhaseChangedEvent) engineEvent()      {}
func (ChainStepEvent) engineEvent()         {}
func (SettingsChangedEvent) engineEvent()   {}
func (VolumeChangedEvent) engineEvent()     {}
func (HighScoresChangedEvent) engineEvent() {}
