package core

// Sound identifies a fire-and-forget sound cue emitted by a game.
type Sound int

const (
	SoundMove Sound = iota
	SoundDrop
	SoundPop
	SoundChain
	SoundGameOver
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundDrop:
		return "drop"
	case SoundPop:
		return "pop"
	case SoundChain:
		return "chain"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Audio receives sound cues. Implementations must not block; there is no
// return channel into the game.
type Audio interface {
	// Play emits a cue. chain is the chain count for pop and chain cues, 0 otherwise.
	Play(s Sound, chain int)
	// SetVolume sets the effect volume in 0..1.
	SetVolume(v float64)
}

// NopAudio discards all cues.
type NopAudio struct{}

func (NopAudio) Play(Sound, int)   {}
func (NopAudio) SetVolume(float64) {}
