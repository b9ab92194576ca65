package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	// ErrOutOfBounds is returned by Board.Test when a point lies outside the grid.
	ErrOutOfBounds = errors.New("tetris: point out of bounds")

	// ErrCellMismatch is returned by Board.Test when a cell does not hold the
	// expected value.
	ErrCellMismatch = errors.New("tetris: cell mismatch")
)

// Board is a fixed-size occupancy grid. Row 0 is the top. Cells are stored
// row-major; the dimensions never change after NewBoard.
type Board struct {
	size  core.Extent
	cells []bool
}

// ClearResult lists the rows removed by a line clear, as indices before the
// removal, in ascending order.
type ClearResult struct {
	Rows []int
}

// Count returns the number of cleared rows.
func (r ClearResult) Count() int {
	return len(r.Rows)
}

// NewBoard creates an empty board. Negative dimensions are treated as zero.
func NewBoard(size core.Extent) *Board {
	size.Width = core.Max(size.Width, 0)
	size.Height = core.Max(size.Height, 0)
	return &Board{
		size:  size,
		cells: make([]bool, size.Area()),
	}
}

// Size returns the board dimensions.
func (b *Board) Size() core.Extent {
	return b.size
}

func (b *Board) index(p core.Point) int {
	return p.Y*b.size.Width + p.X
}

// Occupied reports whether p is inside the board and filled.
func (b *Board) Occupied(p core.Point) bool {
	if !b.size.Contains(p) {
		return false
	}
	return b.cells[b.index(p)]
}

// Test succeeds only if every point is inside the board and currently holds
// want. It never modifies the board.
func (b *Board) Test(points []core.Point, want bool) error {
	for _, p := range points {
		if !b.size.Contains(p) {
			return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, p.X, p.Y)
		}
		if b.cells[b.index(p)] != want {
			return fmt.Errorf("%w: (%d, %d) is %v", ErrCellMismatch, p.X, p.Y, !want)
		}
	}
	return nil
}

// Set writes flag to every point. Callers validate with Test first; points
// outside the board are ignored.
func (b *Board) Set(points []core.Point, flag bool) {
	for _, p := range points {
		if b.size.Contains(p) {
			b.cells[b.index(p)] = flag
		}
	}
}

// SetRegion fills the rectangle at origin with the given extent, clipped to
// the board.
func (b *Board) SetRegion(origin core.Point, size core.Extent, flag bool) {
	x0 := core.Max(origin.X, 0)
	y0 := core.Max(origin.Y, 0)
	x1 := core.Min(origin.X+size.Width, b.size.Width)
	y1 := core.Min(origin.Y+size.Height, b.size.Height)

	for y := y0; y < y1; y++ {
		row := b.cells[y*b.size.Width : (y+1)*b.size.Width]
		for x := x0; x < x1; x++ {
			row[x] = flag
		}
	}
}

// Clear empties the whole board.
func (b *Board) Clear() {
	b.SetRegion(core.Point{}, b.size, false)
}

func (b *Board) rowFull(y int) bool {
	if b.size.Width == 0 {
		return false
	}
	for _, filled := range b.cells[y*b.size.Width : (y+1)*b.size.Width] {
		if !filled {
			return false
		}
	}
	return true
}

// TryClearFullLines removes every fully occupied row and inserts the same
// number of empty rows at the top. Retained rows keep their relative order.
// It returns false when no row was full.
func (b *Board) TryClearFullLines() (ClearResult, bool) {
	var full []int
	for y := range b.size.Height {
		if b.rowFull(y) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return ClearResult{}, false
	}

	w := b.size.Width
	next := make([]bool, len(b.cells))
	// Walk from the bottom so retained rows pack downward in order.
	dst := b.size.Height - 1
	fi := len(full) - 1
	for y := b.size.Height - 1; y >= 0; y-- {
		if fi >= 0 && full[fi] == y {
			fi--
			continue
		}
		copy(next[dst*w:(dst+1)*w], b.cells[y*w:(y+1)*w])
		dst--
	}
	b.cells = next

	return ClearResult{Rows: full}, true
}

// Row returns a copy of row y, or nil when y is out of range.
func (b *Board) Row(y int) []bool {
	if y < 0 || y >= b.size.Height {
		return nil
	}
	out := make([]bool, b.size.Width)
	copy(out, b.cells[y*b.size.Width:(y+1)*b.size.Width])
	return out
}

// Rows returns a deep copy of the grid, one slice per row.
func (b *Board) Rows() [][]bool {
	out := make([][]bool, b.size.Height)
	for y := range out {
		out[y] = b.Row(y)
	}
	return out
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}
