package tetris

import (
	"errors"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MinBoardSide is the smallest accepted board width and height. Spawning
// anchors pieces at width/2-2, which needs at least four columns.
const MinBoardSide = 4

// ErrBoardTooSmall is returned by NewPanel for boards below MinBoardSide.
var ErrBoardTooSmall = errors.New("tetris: board must be at least 4x4")

// PanelState is the lifecycle state of a Panel.
type PanelState int

const (
	StateEmpty    PanelState = iota // No live piece; waiting for Spawn
	StateFalling                    // A live piece is on the board
	StateGameOver                   // Spawn failed; only Reset leaves this state
)

// String returns the state name.
func (s PanelState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFalling:
		return "falling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SpawnResult is the outcome of Panel.Spawn.
type SpawnResult int

const (
	SpawnOK SpawnResult = iota
	SpawnGameOver
)

// TickResult is the outcome of Panel.TickDown.
type TickResult int

const (
	TickMoved      TickResult = iota // Piece moved down one row
	TickNeedsPiece                   // Piece locked (or none was live); spawn the next one
)

// MoveResult is the outcome of Panel.TryMove.
type MoveResult int

const (
	MoveAccepted MoveResult = iota
	MoveRejected
)

// LivePiece is the falling piece and its top-left anchor in board space.
type LivePiece struct {
	Piece    Piece
	Position core.Point
}

// Cells returns the absolute board cells covered by the live piece.
func (l LivePiece) Cells() []core.Point {
	return l.Piece.At(l.Position)
}

// Panel owns the board and the single live piece. The board only ever holds
// locked cells; the live piece is projected on top of it for queries and
// written into it when it locks.
type Panel struct {
	board *Board
	live  *LivePiece
	state PanelState
}

// NewPanel creates an empty panel with a board of the given size.
func NewPanel(size core.Extent) (*Panel, error) {
	if size.Width < MinBoardSide || size.Height < MinBoardSide {
		return nil, ErrBoardTooSmall
	}
	return &Panel{
		board: NewBoard(size),
		state: StateEmpty,
	}, nil
}

// SpawnPoint returns the anchor used for new pieces.
func (p *Panel) SpawnPoint() core.Point {
	return core.Point{X: p.board.Size().Width/2 - 2, Y: 0}
}

// plan validates candidate against the locked cells. The board is only read.
func plan(b *Board, candidate LivePiece) (LivePiece, bool) {
	if err := b.Test(candidate.Cells(), false); err != nil {
		return LivePiece{}, false
	}
	return candidate, true
}

// Spawn places piece at the spawn point. If any target cell is taken the
// game is over and the board is left untouched. A live piece still on the
// board is discarded without locking.
func (p *Panel) Spawn(piece Piece) SpawnResult {
	if p.state == StateGameOver {
		return SpawnGameOver
	}

	next, ok := plan(p.board, LivePiece{Piece: piece, Position: p.SpawnPoint()})
	if !ok {
		p.live = nil
		p.state = StateGameOver
		return SpawnGameOver
	}

	p.live = &next
	p.state = StateFalling
	return SpawnOK
}

// TryMove shifts the live piece by (dx, dy). Rejected moves leave the panel
// exactly as it was.
func (p *Panel) TryMove(dx, dy int) MoveResult {
	if p.live == nil {
		return MoveRejected
	}

	candidate := *p.live
	candidate.Position = candidate.Position.Add(core.Point{X: dx, Y: dy})
	for _, c := range candidate.Cells() {
		if c.X < 0 || c.Y < 0 {
			return MoveRejected
		}
	}

	next, ok := plan(p.board, candidate)
	if !ok {
		return MoveRejected
	}
	*p.live = next
	return MoveAccepted
}

// TickDown moves the live piece one row down. When it cannot move, its cells
// lock into the board at once and the panel waits for the next spawn.
func (p *Panel) TickDown() TickResult {
	if p.live == nil {
		return TickNeedsPiece
	}
	if p.TryMove(0, 1) == MoveAccepted {
		return TickMoved
	}
	p.lock()
	return TickNeedsPiece
}

func (p *Panel) lock() {
	p.board.Set(p.live.Cells(), true)
	p.live = nil
	p.state = StateEmpty
}

// RotateCurrent rotates the live piece clockwise in place. If the rotated
// cells are blocked the rotation is dropped; there is no wall kick.
func (p *Panel) RotateCurrent() bool {
	if p.live == nil {
		return false
	}

	candidate := *p.live
	candidate.Piece = candidate.Piece.Rotated()
	next, ok := plan(p.board, candidate)
	if !ok {
		return false
	}
	*p.live = next
	return true
}

// HardDrop moves the live piece down until it rests and returns how many
// rows it fell. The piece is not locked; the next TickDown does that.
func (p *Panel) HardDrop() int {
	rows := 0
	for p.TryMove(0, 1) == MoveAccepted {
		rows++
	}
	return rows
}

// TryClearLines clears full rows on the board.
func (p *Panel) TryClearLines() (ClearResult, bool) {
	return p.board.TryClearFullLines()
}

// Reset empties the board and drops the live piece.
func (p *Panel) Reset() {
	p.board.Clear()
	p.live = nil
	p.state = StateEmpty
}

// Size returns the board dimensions.
func (p *Panel) Size() core.Extent {
	return p.board.Size()
}

// State returns the lifecycle state.
func (p *Panel) State() PanelState {
	return p.state
}

// Live returns a copy of the live piece.
func (p *Panel) Live() (LivePiece, bool) {
	if p.live == nil {
		return LivePiece{}, false
	}
	return *p.live, true
}

// Locked reports whether a locked cell sits at pt.
func (p *Panel) Locked(pt core.Point) bool {
	return p.board.Occupied(pt)
}

// Live cell check without allocating.
func (p *Panel) liveAt(pt core.Point) bool {
	if p.live == nil {
		return false
	}
	for _, c := range p.live.Piece.cells {
		if c.Add(p.live.Position) == pt {
			return true
		}
	}
	return false
}

// Occupied reports whether pt is filled by a locked cell or the live piece.
func (p *Panel) Occupied(pt core.Point) bool {
	return p.board.Occupied(pt) || p.liveAt(pt)
}

// Grid returns the board with the live piece projected onto it.
func (p *Panel) Grid() [][]bool {
	rows := p.board.Rows()
	if p.live != nil {
		for _, c := range p.live.Cells() {
			if p.board.Size().Contains(c) {
				rows[c.Y][c.X] = true
			}
		}
	}
	return rows
}

// LockedCount returns the number of locked cells.
func (p *Panel) LockedCount() int {
	return p.board.Filled()
}

// DropPosition returns where the live piece would come to rest, for drawing
// a ghost. ok is false when there is no live piece.
func (p *Panel) DropPosition() (pos core.Point, ok bool) {
	if p.live == nil {
		return core.Point{}, false
	}
	current := *p.live
	for {
		candidate := current
		candidate.Position.Y++
		next, legal := plan(p.board, candidate)
		if !legal {
			return current.Position, true
		}
		current = next
	}
}
