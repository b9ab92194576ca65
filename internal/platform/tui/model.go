package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/audio"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Options wires the collaborators of a Model. Every field is optional.
type Options struct {
	Store  *storage.Store     // replay journal; nil disables recording
	Audio  *audio.Dispatcher  // nil plays nothing
	Keys   *KeyMap            // nil uses the default bindings
	Logger *log.Logger        // nil discards
	Script core.Script        // non-nil plays a recording back instead of reading keys
	Ticks  uint64             // length of Script
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	store    *storage.Store
	audio    *audio.Dispatcher
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	script   core.Script
	ticks    uint64
	input    core.InputFrame
	state    core.GameState
	recorder *Recorder
	tooSmall bool
	quitting bool
	status   string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config: cfg,
		store:  opts.Store,
		audio:  opts.Audio,
		logger: logger,
		keys:   keys,
		help:   help.New(),
		script: opts.Script,
		ticks:  opts.Ticks,
		input:  core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	if m.recording() {
		m.recorder = NewRecorder(cfg.Seed)
	}
	m.tooSmall = m.screenTooSmall()
	return m
}

// recording reports whether finished sessions go to the journal.
func (m Model) recording() bool {
	if m.store == nil || m.script != nil {
		return false
	}
	_, ok := m.game.(Recordable)
	return ok
}

// screenTooSmall asks the game for its minimum size, if it has one.
func (m Model) screenTooSmall() bool {
	hinter, ok := m.game.(registry.SizeHinter)
	if !ok {
		return false
	}
	need := hinter.MinScreen()
	return m.screen.Width() < need.Width || m.screen.Height() < need.Height
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "playback", m.script != nil)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	// Playback only listens for quit.
	if m.script != nil {
		return m, nil
	}

	m.input.Set(action)
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// while the window is too small it is simply not stepped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width

	small := m.screenTooSmall()
	if small != m.tooSmall {
		m.logger.Debug("window size changed", "width", msg.Width, "height", msg.Height, "suspended", small)
	}
	m.tooSmall = small
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	if m.tooSmall {
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	in := m.input
	if m.script != nil {
		if m.gameTick() >= m.ticks {
			return m, tickCmd(m.config.TickRate)
		}
		in = m.script.Frame(m.gameTick() + 1)
	}

	result := m.game.Step(in)

	if m.recorder != nil {
		m.recorder.Record(m.gameTick(), in)
	}
	if m.audio != nil {
		m.audio.Dispatch(result.Events)
	}
	for _, e := range result.Events {
		if e.Kind == core.EventLineClear {
			m.logger.Debug("lines cleared", "count", e.Count, "score", result.State.Score)
		}
	}

	if result.State.GameOver && !m.state.GameOver {
		m.logger.Info("game over", "score", result.State.Score, "tick", m.gameTick())
		m.finish(storage.EndGameOver)
	}
	m.state = result.State

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new game with a fresh seed and recording.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.status = ""
	if m.recording() {
		m.recorder = NewRecorder(m.config.Seed)
	}
	m.input.Clear()
	m.logger.Info("game restarted", "seed", m.config.Seed)
}

// gameTick returns the game's own step counter, or 0 when it has none.
func (m Model) gameTick() uint64 {
	if r, ok := m.game.(Recordable); ok {
		return r.Tick()
	}
	return 0
}

// finish journals the current session once.
func (m *Model) finish(reason string) {
	if m.recorder == nil {
		return
	}
	rec, ok := m.game.(Recordable)
	if !ok {
		return
	}
	replay, ok := m.recorder.Finish(m.game.ID(), rec, m.game.State(), reason)
	if !ok {
		return
	}

	id, err := m.store.SaveReplay(replay)
	if err != nil {
		m.logger.Error("could not save replay", "error", err)
		m.status = "replay not saved"
		return
	}
	m.logger.Info("replay saved", "id", id, "reason", reason, "frames", len(replay.Frames))
	m.status = fmt.Sprintf("replay #%d saved", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	base := config.UserDataDir()
	if base == "" {
		base = "."
	}
	dir := filepath.Join(base, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "screenshot saved"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.script != nil {
		footer = helpStyle.Render(fmt.Sprintf("replay  tick %d/%d  q quit", m.gameTick(), m.ticks))
	}
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.state
}

// Status returns the footer message, if any.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
