package tui

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

type fakeRecordable struct {
	cfg    config.TetrisConfig
	tick   uint64
	lines  int
	pieces int
}

func (f fakeRecordable) Config() config.TetrisConfig { return f.cfg }
func (f fakeRecordable) Tick() uint64                 { return f.tick }
func (f fakeRecordable) Lines() int                   { return f.lines }
func (f fakeRecordable) Pieces() int                  { return f.pieces }

func TestRecorderRecord(t *testing.T) {
	r := NewRecorder(7)

	r.Record(1, core.FrameOf(core.ActionLeft))
	r.Record(2, core.NewInputFrame())
	r.Record(3, core.FrameOf(core.ActionQuit))
	r.Record(4, core.FrameOf(core.ActionHardDrop, core.ActionRotate, core.ActionRestart))

	want := []storage.Frame{
		{Tick: 1, Actions: []string{"Left"}},
		{Tick: 4, Actions: []string{"Rotate", "HardDrop"}},
	}
	if !reflect.DeepEqual(r.frames, want) {
		t.Errorf("frames = %v, expected %v", r.frames, want)
	}
}

func TestRecorderFinish(t *testing.T) {
	r := NewRecorder(7)
	r.Record(5, core.FrameOf(core.ActionRight))

	g := fakeRecordable{cfg: config.DefaultTetrisConfig(), tick: 120, lines: 2, pieces: 9}
	state := core.GameState{Score: 300, GameOver: true}

	replay, ok := r.Finish("tetris", g, state, storage.EndGameOver)
	if !ok {
		t.Fatal("Finish() returned false")
	}
	if replay.Seed != 7 || replay.Ticks != 120 || replay.Score != 300 {
		t.Errorf("replay = seed %d ticks %d score %d", replay.Seed, replay.Ticks, replay.Score)
	}
	if replay.Lines != 2 || replay.Pieces != 9 {
		t.Errorf("replay lines/pieces = %d/%d, expected 2/9", replay.Lines, replay.Pieces)
	}
	if replay.BoardWidth != 10 || replay.BoardHeight != 20 || replay.TicksPerRow != 30 {
		t.Errorf("replay board = %dx%d/%d", replay.BoardWidth, replay.BoardHeight, replay.TicksPerRow)
	}
	if replay.EndReason != storage.EndGameOver || len(replay.Frames) != 1 {
		t.Errorf("replay end %q with %d frames", replay.EndReason, len(replay.Frames))
	}

	if _, ok := r.Finish("tetris", g, state, storage.EndQuit); ok {
		t.Error("second Finish() should return false")
	}
}

func TestRecorderFinishWithoutSteps(t *testing.T) {
	r := NewRecorder(1)
	if _, ok := r.Finish("tetris", fakeRecordable{}, core.GameState{}, storage.EndQuit); ok {
		t.Error("Finish() on an unstepped game should return false")
	}
}

func TestScriptFromFrames(t *testing.T) {
	script := ScriptFromFrames([]storage.Frame{
		{Tick: 2, Actions: []string{"Left", "Rotate"}},
		{Tick: 9, Actions: []string{"Bogus"}},
		{Tick: 12, Actions: []string{"HardDrop"}},
	})

	if len(script) != 2 {
		t.Fatalf("len(script) = %d, expected 2", len(script))
	}
	if got := script.Frame(2).List(); !reflect.DeepEqual(got, []core.Action{core.ActionLeft, core.ActionRotate}) {
		t.Errorf("tick 2 = %v", got)
	}
	if !script.Frame(9).Empty() {
		t.Error("unknown actions should be dropped")
	}
	if !script.Frame(12).Has(core.ActionHardDrop) {
		t.Error("tick 12 should hard drop")
	}
}
