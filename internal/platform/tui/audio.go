package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

// BellAudio renders sound cues as the terminal bell. Only the cues worth
// interrupting for ring; moves and drops stay silent. A zero volume mutes it.
type BellAudio struct {
	mu     sync.Mutex
	w      io.Writer
	volume float64
}

// NewBellAudio creates a bell sink writing to w (a terminal or SSH session).
func NewBellAudio(w io.Writer) *BellAudio {
	return &BellAudio{w: w}
}

// Play rings the bell for pop, chain and game-over cues.
func (b *BellAudio) Play(s core.Sound, _ int) {
	switch s {
	case core.SoundPop, core.SoundChain, core.SoundGameOver:
	default:
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.volume <= 0 || b.w == nil {
		return
	}
	b.w.Write([]byte{'\a'}) //nolint:errcheck // Best-effort, a lost bell is harmless
}

// SetVolume sets the volume. Any positive value enables the bell.
func (b *BellAudio) SetVolume(v float64) {
	b.mu.Lock()
	b.volume = v
	b.mu.Unlock()
}
