package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagReplaysLimit int
	flagReplaysPlain bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded games",
	Long: `Show the most recent recorded games.

In a terminal this opens an interactive browser: Enter watches the
selected game, D deletes it. With --plain, or when output is not a
terminal, a table is printed instead.

Examples:
  tetris replays
  tetris replays --plain --limit 5
  tetris replays delete 3`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete recorded games",
	Args:  cobra.MinimumNArgs(1),
	Run:   runReplaysDelete,
}

func init() {
	replaysCmd.Flags().IntVarP(&flagReplaysLimit, "limit", "n", 20, "Number of games to list")
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print a table instead of the browser")
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}

	if flagReplaysPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		defer store.Close()
		printReplays(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	id, err := tui.RunReplayBrowser(store, width, height)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
	if id == 0 {
		store.Close()
		return
	}

	replay, err := store.Replay(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := watchReplay(replay); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

// printReplays writes the newest replays as a plain table.
func printReplays(store *storage.Store) {
	replays, err := store.RecentReplays(flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to record one!")
		return
	}

	header := []string{"ID", "Score", "Lines", "Pieces", "Ticks", "End", "Date"}
	fmt.Printf("  %-5s  %-8s  %-6s  %-6s  %-8s  %-10s  %s\n", toAny(header)...)
	fmt.Printf("  %-5s  %-8s  %-6s  %-6s  %-8s  %-10s  %s\n",
		"--", "-----", "-----", "------", "-----", "---", "----")
	for _, r := range replays {
		fmt.Printf("  %-5s  %-8s  %-6s  %-6s  %-8s  %-10s  %s\n", toAny(tui.ReplayRow(r))...)
	}
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

func runReplaysDelete(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var failed []string
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			failed = append(failed, arg)
			fmt.Fprintf(os.Stderr, "Error: invalid replay id %q\n", arg)
			continue
		}
		if err := store.DeleteReplay(id); err != nil {
			failed = append(failed, arg)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf("Deleted replay #%d\n", id)
	}

	if len(failed) > 0 {
		store.Close()
		fmt.Fprintf(os.Stderr, "Could not delete: %s\n", strings.Join(failed, ", "))
		os.Exit(1)
	}
}
