package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Recordable is implemented by games whose sessions can be journaled and
// replayed: everything a re-run needs besides the seed and the input.
type Recordable interface {
	Config() config.TetrisConfig
	Tick() uint64
	Lines() int
	Pieces() int
}

// Recorder collects the input a game saw during one session.
type Recorder struct {
	seed   int64
	frames []storage.Frame
	done   bool
}

// NewRecorder starts a recording for a game reset with seed.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{seed: seed}
}

// Record stores the actions the game received on tick. Platform-only
// actions are dropped since the game never acts on them.
func (r *Recorder) Record(tick uint64, in core.InputFrame) {
	var names []string
	for _, a := range in.List() {
		if a == core.ActionRestart || a == core.ActionQuit {
			continue
		}
		names = append(names, a.String())
	}
	if len(names) == 0 {
		return
	}
	r.frames = append(r.frames, storage.Frame{Tick: tick, Actions: names})
}

// Finish builds the journal entry. It returns false once the session has
// already been finished or when the game never stepped.
func (r *Recorder) Finish(gameID string, g Recordable, state core.GameState, reason string) (storage.Replay, bool) {
	if r.done || g.Tick() == 0 {
		return storage.Replay{}, false
	}
	r.done = true

	cfg := g.Config()
	return storage.Replay{
		GameID:      gameID,
		Seed:        r.seed,
		BoardWidth:  cfg.Board.Width,
		BoardHeight: cfg.Board.Height,
		TicksPerRow: cfg.Gravity.TicksPerRow,
		Ticks:       g.Tick(),
		Score:       state.Score,
		Lines:       g.Lines(),
		Pieces:      g.Pieces(),
		EndReason:   reason,
		Frames:      r.frames,
	}, true
}

// ScriptFromFrames converts journaled frames back into game input.
// Unknown action names are skipped.
func ScriptFromFrames(frames []storage.Frame) core.Script {
	script := make(core.Script, len(frames))
	for _, f := range frames {
		in := core.NewInputFrame()
		for _, name := range f.Actions {
			in.Set(core.ParseAction(name))
		}
		if !in.Empty() {
			script[f.Tick] = in
		}
	}
	return script
}
