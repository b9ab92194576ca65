package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/audio"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls (default bindings, change them in the config file):
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot

Finished games are recorded to the replay database.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --width 8 --height 16 --gravity 15
  tetris play --config ./my-tetris.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so the log goes to a file.
	logger, closeLog := openPlayLog()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(tetris.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		// Continue without recording - game still works
		store = nil
	}

	keys := tui.NewKeyMap(cfg.Keys)
	runErr := tui.Run(game, runtime, tui.Options{
		Store:  store,
		Audio:  newAudio(cfg.Audio, logger),
		Keys:   &keys,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newAudio builds the cue dispatcher. A missing sound device only costs
// the sound.
func newAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Dispatcher {
	if !cfg.Enabled {
		return nil
	}
	sink, err := audio.NewSpeakerSink(cfg.SampleRate)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}
	return audio.NewDispatcher(cfg, sink, audio.WithLogger(logger))
}

// openPlayLog opens ~/.arcade-tetris/tetris.log for appending. It falls
// back to discarding output when the file cannot be opened.
func openPlayLog() (*log.Logger, func()) {
	dir := config.UserDataDir()
	if dir == "" {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tetris.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, "tetris"), func() {}
	}
	return newLogger(f, "tetris"), func() { f.Close() }
}
