package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the piece catalog",
	Long: `Print every piece kind with its four rotations, in the order the
rotate key cycles through them.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

var shapeBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

func runShapes(_ *cobra.Command, _ []string) {
	for _, kind := range tetris.Kinds() {
		piece := tetris.Catalog(kind)
		style := tui.ColorStyle(tetris.KindColor(kind))

		boxes := make([]string, 0, 4)
		for n := range 4 {
			boxes = append(boxes, shapeBox.Render(drawShape(piece.RotatedN(n), style)))
		}

		fmt.Printf("%s  %s\n", kind, piece)
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
}

// drawShape renders a piece in a fixed 4x4 grid so rotations line up.
func drawShape(p tetris.Piece, style lipgloss.Style) string {
	var grid [4][4]bool
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < 4 && c.Y >= 0 && c.Y < 4 {
			grid[c.Y][c.X] = true
		}
	}

	rows := make([]string, 0, 4)
	for _, row := range grid {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString(style.Render("██"))
			} else {
				b.WriteString("  ")
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}
