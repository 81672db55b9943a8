package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "()", core.ColorBrightRed)
	s.DrawTextColored(0, 1, "xy", core.ColorGray)

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("Lines = %d, expected 2", len(lines))
	}
	if lines[0] != "ab()  " {
		t.Errorf("Row 0 = %q, expected %q", lines[0], "ab()  ")
	}
	if lines[1] != "xy    " {
		t.Errorf("Row 1 = %q, expected %q", lines[1], "xy    ")
	}
}

func TestStyleForOutOfRange(t *testing.T) {
	if styleFor(core.Color(200)).Render("x") != styleFor(core.ColorDefault).Render("x") {
		t.Error("Unknown colors should render with the default style")
	}
}
