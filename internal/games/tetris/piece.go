// Package tetris implements the falling-block puzzle: the piece catalog, the
// occupancy board, the game panel that moves pieces around, and the Game that
// drives them tick by tick for the platform.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// CellsPerPiece is the number of cells in every piece.
const CellsPerPiece = 4

// Kind identifies one of the seven canonical pieces.
type Kind int

const (
	KindO Kind = iota
	KindZ
	KindT
	KindS
	KindL
	KindJ
	KindI
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

var kindNames = [KindCount]string{"O", "Z", "T", "S", "L", "J", "I"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns all kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindO, KindZ, KindT, KindS, KindL, KindJ, KindI}
}

// Layout is the fixed set of cell offsets of a piece, relative to its
// top-left origin.
type Layout [CellsPerPiece]core.Point

// catalog holds the canonical layouts, indexed by Kind.
var catalog = [KindCount]Layout{
	KindO: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	KindZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindT: {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindS: {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	KindL: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindJ: {{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	KindI: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
}

// Piece is a value: four cells plus the kind it came from.
// Copying a Piece copies its cells; nothing is shared.
type Piece struct {
	kind  Kind
	cells Layout
}

// Catalog returns the canonical, unrotated piece of the given kind.
// Unknown kinds fall back to O.
func Catalog(kind Kind) Piece {
	if kind < 0 || int(kind) >= KindCount {
		kind = KindO
	}
	return Piece{kind: kind, cells: catalog[kind]}
}

// NewPiece builds a piece from an explicit layout.
func NewPiece(kind Kind, cells Layout) Piece {
	return Piece{kind: kind, cells: cells}
}

// Kind returns the catalog kind the piece was created from.
func (p Piece) Kind() Kind {
	return p.kind
}

// Cells returns the piece's cell offsets.
func (p Piece) Cells() Layout {
	return p.cells
}

// At returns the absolute cells of the piece anchored at origin.
func (p Piece) At(origin core.Point) []core.Point {
	out := make([]core.Point, 0, CellsPerPiece)
	for _, c := range p.cells {
		out = append(out, c.Add(origin))
	}
	return out
}

// Bounds returns the size of the piece's bounding box measured from its
// local origin.
func (p Piece) Bounds() core.Extent {
	maxX, maxY := 0, 0
	for _, c := range p.cells {
		maxX = core.Max(maxX, c.X)
		maxY = core.Max(maxY, c.Y)
	}
	return core.Extent{Width: maxX + 1, Height: maxY + 1}
}

// Rotated returns the piece turned 90° clockwise inside its own bounding
// square: (x, y) becomes (y, maxX-x). The layout is not translated.
func (p Piece) Rotated() Piece {
	maxX := 0
	for _, c := range p.cells {
		maxX = core.Max(maxX, c.X)
	}

	out := p
	for i, c := range p.cells {
		newY := maxX - c.X
		if maxX == 0 {
			newY = 0
		}
		out.cells[i] = core.Point{X: c.Y, Y: newY}
	}
	return out
}

// RotatedN applies Rotated n times (n is taken modulo 4).
func (p Piece) RotatedN(n int) Piece {
	n = ((n % 4) + 4) % 4
	for range n {
		p = p.Rotated()
	}
	return p
}

// SameShape reports whether two pieces cover the same set of cells,
// regardless of cell order.
func (p Piece) SameShape(other Piece) bool {
	for _, c := range p.cells {
		found := false
		for _, o := range other.cells {
			if c == o {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return distinct(p.cells) == distinct(other.cells)
}

// distinct counts unique cells in a layout.
func distinct(l Layout) int {
	n := 0
	for i, c := range l {
		dup := false
		for _, prev := range l[:i] {
			if prev == c {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}

// String renders the piece as a small ASCII grid, rows separated by '/'.
func (p Piece) String() string {
	b := p.Bounds()
	grid := make([][]byte, b.Height)
	for y := range grid {
		grid[y] = make([]byte, b.Width)
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, c := range p.cells {
		if c.X >= 0 && c.Y >= 0 {
			grid[c.Y][c.X] = '#'
		}
	}

	out := ""
	for y, row := range grid {
		if y > 0 {
			out += "/"
		}
		out += string(row)
	}
	return out
}
