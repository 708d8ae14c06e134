package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/chainblast/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColor(0, 0, "SCORE", core.ColorBrightWhite)
	s.DrawTextColor(6, 0, "42", core.ColorYellow)
	s.DrawTextColor(1, 2, "plain", core.ColorDefault)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"SCORE", "42"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q does not contain %q", lines[0], want)
		}
	}
	if lines[1] != strings.Repeat(" ", 12) {
		t.Errorf("blank line = %q", lines[1])
	}
	if lines[2] != " plain      " {
		t.Errorf("default-colored line = %q, want it unstyled", lines[2])
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", out)
	}
}
