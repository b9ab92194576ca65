// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris serve             - Start SSH server for remote play
//	tetris replays           - Browse, list or delete recorded games
//	tetris replay <id>       - Re-run a recorded game and check the result
//	tetris shapes            - Print the piece catalog and rotations
//	tetris config            - Print the effective configuration
//	tetris list              - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade-tetris/replays.db)
//	--config <path> - Load a custom config YAML
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagWidth   int
	flagHeight  int
	flagGravity int
	flagMute    bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Every finished game is recorded and can be replayed exactly.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  replays  - Browse recorded games
  replay   - Re-run or watch a recorded game
  shapes   - Show the piece catalog
  config   - Show the effective configuration

Examples:
  tetris play
  tetris play --seed 42 --gravity 20
  tetris serve --ssh :2222
  tetris replays
  tetris replay 3 --watch`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		tetris.SetConfigPath(flagConfig)
		tetris.SetOverrides(currentOverrides())
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade-tetris/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagGravity, "gravity", 0, "Ticks per row of automatic fall (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

func currentOverrides() config.Overrides {
	return config.Overrides{
		Width:       flagWidth,
		Height:      flagHeight,
		TicksPerRow: flagGravity,
		Mute:        flagMute,
	}
}

// loadConfig resolves the configuration the game will use.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if err := currentOverrides().Apply(&cfg); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}

// newLogger creates a command logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
