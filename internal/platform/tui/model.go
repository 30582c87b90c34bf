package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gensyn-runner/internal/config"
	"github.com/vovakirdan/gensyn-runner/internal/core"
	"github.com/vovakirdan/gensyn-runner/internal/runner"
)

// helpRows is the space reserved under the playfield for the help footer.
const helpRows = 1

// Options configures the host.
type Options struct {
	Config  config.RunnerConfig
	Preset  config.DifficultyPreset // Re-applied to reloaded configs
	Runtime core.RuntimeConfig
	Watcher *config.Watcher // Optional hot reload source
	Logger  *log.Logger
}

// reloadMsg carries a config reload from the watcher.
type reloadMsg config.Reload

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	pointer  *gesture
	lastTick time.Time
	watcher  *config.Watcher
	preset   config.DifficultyPreset
	log      *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    runner.New(opts.Config, cfg, runner.WithLogger(logger)),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		runtime: cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		input:   core.NewInputFrame(),
		pointer: &gesture{},
		watcher: opts.Watcher,
		preset:  opts.Preset,
		log:     logger,
	}
}

// Init starts the frame clock and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitReload(m.watcher))
}

// waitReload blocks on the watcher until the next reload.
func waitReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-w.Reloads
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey queues the intents bound to a key until the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, a := range m.keys.Actions(msg) {
		if a == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.Set(a)
	}
	return m, nil
}

// handleMouse turns a press and release pair into a swipe or tap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		*m.pointer = gesture{active: true, x: msg.X, y: msg.Y}
	case tea.MouseActionRelease:
		if a := m.pointer.release(msg.X, msg.Y); a != core.ActionNone {
			m.input.Set(a)
			if a == core.ActionShield {
				m.input.Set(core.ActionConfirm) // A tap also starts and resumes
			}
		}
	}
	return m, nil
}

// handleResize processes window resize events. The run keeps going; only the
// view is resized.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.game.Step(dt, m.input)
	m.input.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// handleReload stages a reloaded config for the next run.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.log.Warn("config reload rejected", "path", r.Path, "err", r.Err)
		return m, waitReload(m.watcher)
	}
	cfg := r.Config
	config.ApplyPreset(&cfg, m.preset)
	m.game.SetConfig(cfg)
	m.log.Info("config reloaded", "path", r.Path)
	return m, waitReload(m.watcher)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.game.State().Status().String()) + "\n" + m.help.View(m.keys)
}

// Game returns the hosted game.
func (m Model) Game() *runner.Game {
	return m.game
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
