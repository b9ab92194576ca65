package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestPanel(t *testing.T, w, h int) *Panel {
	t.Helper()
	p, err := NewPanel(core.Ext(w, h))
	require.NoError(t, err)
	return p
}

func TestNewPanelRejectsTinyBoards(t *testing.T) {
	_, err := NewPanel(core.Ext(3, 20))
	assert.ErrorIs(t, err, ErrBoardTooSmall)

	_, err = NewPanel(core.Ext(10, 0))
	assert.ErrorIs(t, err, ErrBoardTooSmall)
}

func TestSpawnCentersPiece(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	assert.Equal(t, StateEmpty, p.State())

	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindS)))
	assert.Equal(t, StateFalling, p.State())

	live, ok := p.Live()
	require.True(t, ok)
	assert.Equal(t, core.Pt(3, 0), live.Position)

	for _, c := range live.Cells() {
		assert.True(t, p.Occupied(c), "cell %v should be occupied", c)
	}
	assert.Equal(t, 0, p.LockedCount(), "live cells are not locked")

	filled := 0
	for _, row := range p.Grid() {
		for _, cell := range row {
			if cell {
				filled++
			}
		}
	}
	assert.Equal(t, CellsPerPiece, filled)
}

func TestSpawnGameOverLeavesBoardUntouched(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	p.board.SetRegion(core.Pt(3, 0), core.Ext(4, 2), true)
	before := p.board.Rows()

	assert.Equal(t, SpawnGameOver, p.Spawn(Catalog(KindO)))
	assert.Equal(t, StateGameOver, p.State())
	assert.Equal(t, before, p.board.Rows())
	_, ok := p.Live()
	assert.False(t, ok)

	// Terminal until Reset.
	p.board.Clear()
	assert.Equal(t, SpawnGameOver, p.Spawn(Catalog(KindO)))

	p.Reset()
	assert.Equal(t, StateEmpty, p.State())
	assert.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))
}

func TestTryMove(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))

	for range 3 {
		assert.Equal(t, MoveAccepted, p.TryMove(-1, 0))
	}
	live, _ := p.Live()
	assert.Equal(t, core.Pt(0, 0), live.Position)

	assert.Equal(t, MoveRejected, p.TryMove(-1, 0), "left wall")
	assert.Equal(t, MoveRejected, p.TryMove(0, -1), "ceiling")

	after, _ := p.Live()
	assert.Equal(t, live, after)
}

func TestTryMoveBlockedDoesNotMutate(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))
	p.board.Set([]core.Point{{X: 5, Y: 1}}, true)

	before, _ := p.Live()
	boardBefore := p.board.Rows()

	assert.Equal(t, MoveRejected, p.TryMove(1, 0))
	assert.Equal(t, MoveRejected, p.TryMove(20, 0))

	after, _ := p.Live()
	assert.Equal(t, before, after)
	assert.Equal(t, boardBefore, p.board.Rows())
}

func TestTryMoveWithoutPiece(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	assert.Equal(t, MoveRejected, p.TryMove(1, 0))
	assert.False(t, p.RotateCurrent())
	assert.Equal(t, 0, p.HardDrop())
}

func TestRotateCurrent(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))

	require.True(t, p.RotateCurrent())
	live, _ := p.Live()
	assert.Equal(t, core.Pt(3, 0), live.Position, "rotation does not translate")
	assert.ElementsMatch(t,
		[]core.Point{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}},
		live.Cells())
}

func TestRotateBlockedDoesNotMutate(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))
	p.board.Set([]core.Point{{X: 3, Y: 2}}, true)

	before, _ := p.Live()
	assert.False(t, p.RotateCurrent())
	after, _ := p.Live()
	assert.Equal(t, before, after)
	assert.Equal(t, 1, p.LockedCount())
}

func TestRotateAtBottomEdge(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))
	p.HardDrop()

	// A vertical bar would stick out below the board.
	assert.False(t, p.RotateCurrent())
}

func TestTickDownLocksOnFilledBoard(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	p.board.SetRegion(core.Pt(0, 1), core.Ext(10, 19), true)

	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))
	live, _ := p.Live()

	assert.Equal(t, TickNeedsPiece, p.TickDown())
	assert.Equal(t, StateEmpty, p.State())
	_, ok := p.Live()
	assert.False(t, ok)

	for _, c := range live.Cells() {
		assert.True(t, p.Locked(c), "cell %v should stay locked", c)
	}
	assert.Equal(t, 19*10+CellsPerPiece, p.LockedCount())
}

func TestTickDownMovesAndLocks(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))

	for i := range 18 {
		require.Equal(t, TickMoved, p.TickDown(), "tick %d", i)
	}
	assert.Equal(t, TickNeedsPiece, p.TickDown())
	assert.Equal(t, 4, p.LockedCount())
	assert.True(t, p.Locked(core.Pt(3, 19)))
	assert.True(t, p.Locked(core.Pt(4, 18)))

	// With no live piece TickDown keeps asking for one.
	assert.Equal(t, TickNeedsPiece, p.TickDown())
}

func TestHardDrop(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))

	pos, ok := p.DropPosition()
	require.True(t, ok)
	assert.Equal(t, core.Pt(3, 18), pos)

	assert.Equal(t, 18, p.HardDrop())
	live, _ := p.Live()
	assert.Equal(t, core.Pt(3, 18), live.Position)
	assert.Equal(t, StateFalling, p.State())
	assert.Equal(t, 0, p.HardDrop())

	assert.Equal(t, TickNeedsPiece, p.TickDown())
	assert.Equal(t, 4, p.LockedCount())
}

func TestPanelClearLines(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	p.board.SetRegion(core.Pt(0, 19), core.Ext(10, 1), true)
	p.board.Set(Catalog(KindI).At(core.Pt(3, 19)), false)

	_, ok := p.TryClearLines()
	assert.False(t, ok)

	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))
	p.HardDrop()
	require.Equal(t, TickNeedsPiece, p.TickDown())

	res, ok := p.TryClearLines()
	require.True(t, ok)
	assert.Equal(t, []int{19}, res.Rows)
	assert.Equal(t, 0, p.LockedCount())
}

func TestPanelReset(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	p.board.SetRegion(core.Pt(0, 10), core.Ext(10, 5), true)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindT)))

	p.Reset()
	assert.Equal(t, StateEmpty, p.State())
	assert.Equal(t, 0, p.LockedCount())
	_, ok := p.Live()
	assert.False(t, ok)
	assert.Equal(t, core.Ext(10, 20), p.Size())
}

func TestSpawnWhileFallingReplacesPiece(t *testing.T) {
	p := newTestPanel(t, 10, 20)
	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindO)))
	p.TickDown()

	require.Equal(t, SpawnOK, p.Spawn(Catalog(KindI)))
	live, _ := p.Live()
	assert.Equal(t, KindI, live.Piece.Kind())
	assert.Equal(t, 0, p.LockedCount())
}

func TestPanelStateString(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "falling", StateFalling.String())
	assert.Equal(t, "game_over", StateGameOver.String())
}
