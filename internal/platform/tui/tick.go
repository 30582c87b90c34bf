// Package tui hosts the runner in a terminal with Bubble Tea.
// It owns the frame clock, key and mouse bindings, config hot reload and
// the styled output; the simulation itself lives in the runner package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta bounds the delta handed to the simulation after a stall.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous tick, clamped to
// [0, maxFrameDelta]. The first tick has no predecessor and yields zero.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev)
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	default:
		return dt
	}
}
