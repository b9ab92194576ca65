package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tetris"

// configPath stores the custom config path set via CLI
var configPath string

// overrides stores command-line overrides set via CLI
var overrides config.Overrides

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetOverrides sets command-line overrides applied after loading the config.
func SetOverrides(o config.Overrides) {
	overrides = o
}

// Game drives a Panel from platform input: it applies player actions,
// advances gravity on a fixed tick, clears lines, keeps score and picks the
// next piece.
type Game struct {
	cfg      config.TetrisConfig
	fixedCfg bool // cfg was supplied by the caller; Reset must not reload it

	factory *Factory
	panel   *Panel
	next    Piece

	tick         uint64
	gravityTicks int
	score        int
	lines        int
	pieces       int
	lastClear    ClearResult

	paused   bool
	gameOver bool

	events []core.Event
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg. Replays use this so the
// recorded board and gravity are reproduced exactly.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.fixedCfg {
		loaded, err := config.LoadTetris(configPath)
		if err != nil {
			loaded = config.DefaultTetrisConfig()
		}
		if err := overrides.Apply(&loaded); err != nil {
			loaded = config.DefaultTetrisConfig()
		}
		g.cfg = loaded
	}

	panel, err := NewPanel(core.Ext(g.cfg.Board.Width, g.cfg.Board.Height))
	if err != nil {
		def := config.DefaultTetrisConfig()
		g.cfg.Board = def.Board
		panel, _ = NewPanel(core.Ext(def.Board.Width, def.Board.Height))
	}
	if g.cfg.Gravity.TicksPerRow <= 0 {
		g.cfg.Gravity = config.DefaultTetrisConfig().Gravity
	}

	g.panel = panel
	g.factory = NewSeededFactory(cfg.Seed)
	g.tick = 0
	g.gravityTicks = 0
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.lastClear = ClearResult{}
	g.paused = false
	g.gameOver = false
	g.events = nil

	g.next = g.factory.RandomPiece()
	g.spawnNext()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	for _, action := range in.List() {
		if g.gameOver {
			break
		}
		switch action {
		case core.ActionLeft:
			g.panel.TryMove(-1, 0)
		case core.ActionRight:
			g.panel.TryMove(1, 0)
		case core.ActionRotate:
			if g.panel.RotateCurrent() {
				g.emit(core.EventRotate, 0)
			}
		case core.ActionSoftDrop:
			g.fall()
			g.gravityTicks = 0
		case core.ActionHardDrop:
			g.panel.HardDrop()
			g.fall()
			g.gravityTicks = 0
		}
	}

	if !g.gameOver {
		g.gravityTicks++
		if g.gravityTicks >= g.cfg.Gravity.TicksPerRow {
			g.gravityTicks = 0
			g.fall()
		}
	}

	return g.result()
}

// fall moves the live piece down once and settles it if it locked.
func (g *Game) fall() {
	if g.panel.TickDown() == TickNeedsPiece {
		g.settle()
	}
}

// settle runs the lock pipeline: clear lines once, score, spawn the next piece.
func (g *Game) settle() {
	g.emit(core.EventLock, 0)

	if cleared, ok := g.panel.TryClearLines(); ok {
		n := cleared.Count()
		g.lines += n
		g.score += LineScore(n)
		g.lastClear = cleared
		g.emit(core.EventLineClear, n)
	}

	g.spawnNext()
}

// spawnNext promotes the preview piece to live and draws a new preview.
func (g *Game) spawnNext() {
	piece := g.next
	g.next = g.factory.RandomPiece()

	if g.panel.Spawn(piece) == SpawnGameOver {
		g.gameOver = true
		g.emit(core.EventGameOver, 0)
		return
	}
	g.pieces++
}

func (g *Game) emit(kind core.EventKind, count int) {
	g.events = append(g.events, core.Event{Kind: kind, Count: count})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int {
	return g.lines
}

// Pieces returns how many pieces have been spawned.
func (g *Game) Pieces() int {
	return g.pieces
}

// Tick returns the number of steps taken since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Next returns the preview piece.
func (g *Game) Next() Piece {
	return g.next
}
