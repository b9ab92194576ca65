package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game",
	Long: `Re-simulate a recorded game from its seed and input and check that it
ends with the recorded score, lines and pieces.

With --watch the game is played back in the terminal instead.

Examples:
  tetris replay 3
  tetris replay 3 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Play the recording back in the terminal")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	replay, err := store.Replay(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		if err := watchReplay(replay); err != nil {
			fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !verifyReplay(replay) {
		os.Exit(1)
	}
}

// replayConfig rebuilds the game configuration a replay was recorded with.
func replayConfig(r *storage.Replay) config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Board.Width = r.BoardWidth
	cfg.Board.Height = r.BoardHeight
	cfg.Gravity.TicksPerRow = r.TicksPerRow
	return cfg
}

// verifyReplay re-runs r headlessly, prints the comparison and reports
// whether the result matches the recording.
func verifyReplay(r *storage.Replay) bool {
	logger := newLogger(os.Stderr, "replay")
	logger.Debug("re-running", "id", r.ID, "seed", r.Seed, "ticks", r.Ticks, "frames", len(r.Frames))

	got := tetris.Rerun(replayConfig(r), r.Seed, r.Ticks, tui.ScriptFromFrames(r.Frames))

	fmt.Printf("Replay #%d  seed %d  %dx%d  %d ticks/row  %d ticks  (%s)\n",
		r.ID, r.Seed, r.BoardWidth, r.BoardHeight, r.TicksPerRow, r.Ticks, r.EndReason)
	fmt.Println()
	fmt.Printf("  %-8s  %10s  %10s\n", "", "Recorded", "Re-run")
	fmt.Printf("  %-8s  %10d  %10d\n", "Score", r.Score, got.Score)
	fmt.Printf("  %-8s  %10d  %10d\n", "Lines", r.Lines, got.Lines)
	fmt.Printf("  %-8s  %10d  %10d\n", "Pieces", r.Pieces, got.Pieces)
	fmt.Println()

	ok := got.Score == r.Score && got.Lines == r.Lines && got.Pieces == r.Pieces
	if r.EndReason == storage.EndGameOver && got.State != tetris.StateFinished {
		ok = false
	}
	if ok {
		fmt.Println("Match: the re-run reproduces the recording.")
	} else {
		logger.Error("replay diverged", "id", r.ID)
		fmt.Println("Mismatch: the re-run differs from the recording.")
	}
	return ok
}

// watchReplay plays r back in the terminal.
func watchReplay(r *storage.Replay) error {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := tetris.NewWithConfig(replayConfig(r))
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     r.Seed,
	}
	return tui.Run(game, runtime, tui.Options{
		Script: tui.ScriptFromFrames(r.Frames),
		Ticks:  r.Ticks,
	})
}
