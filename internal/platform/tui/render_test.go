package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

func TestRenderFrameKeepsLayout(t *testing.T) {
	s := core.NewScreen(20, 5)
	s.DrawTextColored(0, 0, "SCORE 10", core.ColorCream)
	s.DrawTextColored(3, 4, "<>", core.ColorTeal)

	for _, status := range []string{runner.StatusShop.String(), "UNKNOWN"} {
		out := RenderFrame(s, status)
		if rows := strings.Count(out, "\n") + 1; rows != 5 {
			t.Errorf("%s: %d rows, expected 5", status, rows)
		}
		for _, want := range []string{"SCORE 10", "<>"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: frame missing %q", status, want)
			}
		}
	}
}

func TestHUDBandsCoverEveryStatus(t *testing.T) {
	statuses := []runner.Status{
		runner.StatusMenu,
		runner.StatusPlaying,
		runner.StatusShop,
		runner.StatusGameOver,
		runner.StatusVictory,
	}
	for _, st := range statuses {
		if _, ok := hudBands[st.String()]; !ok {
			t.Errorf("no HUD band for %s", st)
		}
	}
	if hudBands[runner.StatusShop.String()] == hudBands[runner.StatusGameOver.String()] {
		t.Error("shop and game over should not share a band")
	}
}
