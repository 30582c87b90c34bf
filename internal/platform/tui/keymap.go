package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gensyn-runner/internal/core"
)

// Approximate terminal cell size in pixels, used to turn mouse drags into
// gesture displacements.
const (
	cellWidthPx  = 8.0
	cellHeightPx = 16.0
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Shield  key.Binding
	Confirm key.Binding
	Restart key.Binding
	Buy1    key.Binding
	Buy2    key.Binding
	Buy3    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shield, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Shield},
		{k.Buy1, k.Buy2, k.Buy3, k.Confirm},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "lane left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "lane right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "jump"),
		),
		Shield: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "firewall"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reboot"),
		),
		Buy1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "buy 1"),
		),
		Buy2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "buy 2"),
		),
		Buy3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "buy 3"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message to intents. One key may carry several:
// Enter both raises the shield and confirms, and the simulation keeps
// whichever applies to its status.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
		{k.Shield, core.ActionShield},
		{k.Confirm, core.ActionConfirm},
		{k.Restart, core.ActionRestart},
		{k.Buy1, core.ActionBuy1},
		{k.Buy2, core.ActionBuy2},
		{k.Buy3, core.ActionBuy3},
	}

	var out []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			out = append(out, b.action)
		}
	}
	return out
}

// gesture tracks a pointer press until its release.
type gesture struct {
	active bool
	x, y   int
}

// release classifies the drag from the press to (x, y) in cell coordinates.
func (g *gesture) release(x, y int) core.Action {
	if !g.active {
		return core.ActionNone
	}
	g.active = false
	dx := float64(x-g.x) * cellWidthPx
	dy := float64(y-g.y) * cellHeightPx
	return core.ClassifyGesture(dx, dy)
}
