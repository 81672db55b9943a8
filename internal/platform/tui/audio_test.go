package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

func TestBellAudio(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBellAudio(&buf)

	bell.Play(core.SoundPop, 1)
	if buf.Len() != 0 {
		t.Fatal("Bell rang at zero volume")
	}

	bell.SetVolume(0.5)
	bell.Play(core.SoundMove, 0)
	bell.Play(core.SoundDrop, 0)
	if buf.Len() != 0 {
		t.Errorf("Move and drop cues rang the bell: %q", buf.String())
	}

	bell.Play(core.SoundPop, 1)
	bell.Play(core.SoundChain, 2)
	bell.Play(core.SoundGameOver, 0)
	if buf.String() != "\a\a\a" {
		t.Errorf("Bell output = %q, expected three bells", buf.String())
	}

	bell.SetVolume(0)
	bell.Play(core.SoundChain, 3)
	if buf.Len() != 3 {
		t.Error("Bell rang after muting")
	}
}
