package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Rerun plays a recorded session headlessly and returns the final snapshot.
// Given the same config, seed and script it reproduces the recorded game
// exactly, so the result can be compared with what was recorded.
func Rerun(cfg config.TetrisConfig, seed int64, ticks uint64, script core.Script) Snapshot {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: seed})
	for g.tick < ticks {
		g.Step(script.Frame(g.tick + 1))
	}
	return g.Snapshot()
}
