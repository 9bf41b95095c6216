package tui

import (
	"testing"

	"github.com/vovakirdan/tui-slicer/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "Score: 40", core.ColorBrightWhite)
	s.SetColored(2, 1, '@', core.ColorGold)
	s.SetColored(3, 1, 'X', core.ColorBrightRed)
	s.DrawTextColored(0, 2, "FREEZE!", core.ColorIce)

	// Tests run without a terminal, so lipgloss emits no escape codes
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("a"); got != "a" {
		t.Errorf("unknown colours should render plain, got %q", got)
	}
	if len(cellStyles) != len(core.Colors()) {
		t.Errorf("cellStyles has %d entries, expected %d", len(cellStyles), len(core.Colors()))
	}
}
