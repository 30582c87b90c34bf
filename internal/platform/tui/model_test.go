package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

func newTestModel() Model {
	rt := core.DefaultConfig()
	rt.Seed = 42
	return NewModel(Options{Config: config.DefaultRunnerConfig(), Runtime: rt})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeyActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want []core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{tea.KeyMsg{Type: tea.KeyRight}, []core.Action{core.ActionRight}},
		{tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, []core.Action{core.ActionJump}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionShield}},
		{tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionShield, core.ActionConfirm}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}, []core.Action{core.ActionBuy2}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, nil},
	}

	for _, tt := range tests {
		got := km.Actions(tt.msg)
		if len(got) != len(tt.want) {
			t.Errorf("Actions(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Actions(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
				break
			}
		}
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(100, 0)
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick", time.Time{}, base, 0},
		{"normal", base, base.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall", base, base.Add(2 * time.Second), maxFrameDelta},
		{"clock skew", base, base.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		if got := frameDelta(tt.prev, tt.now); got != tt.want {
			t.Errorf("%s: frameDelta = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel()
	start := time.Unix(0, 0)

	m = step(t, m, TickMsg(start))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg(start.Add(16*time.Millisecond)))

	if got := m.Game().State().Status(); got != runner.StatusPlaying {
		t.Errorf("status = %v, expected PLAYING", got)
	}
	if !m.input.Empty() {
		t.Error("input not cleared after the frame")
	}
}

func TestModelSwipe(t *testing.T) {
	m := newTestModel()
	m.Game().Step(0, inputOf(core.ActionConfirm))

	m = step(t, m, tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = step(t, m, tea.MouseMsg{X: 46, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if !m.input.Has(core.ActionRight) {
		t.Errorf("swipe right not queued: %v", m.input.Actions)
	}

	m.input.Clear()
	m = step(t, m, tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = step(t, m, tea.MouseMsg{X: 40, Y: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if !m.input.Has(core.ActionShield) {
		t.Errorf("tap not queued as shield: %v", m.input.Actions)
	}
}

func TestModelReloadStagesConfig(t *testing.T) {
	m := newTestModel()
	cfg := config.DefaultRunnerConfig()
	cfg.Player.BaseLives = 6

	m = step(t, m, reloadMsg{Path: "runner.yaml", Config: cfg})
	m.Game().Step(0, inputOf(core.ActionConfirm))

	if got := m.Game().State().Lives(); got != 6 {
		t.Errorf("lives = %d, expected reloaded config on start", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
