package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCatalogLayouts(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindO, "##/##"},
		{KindZ, "##./.##"},
		{KindT, ".#./###"},
		{KindS, ".##/##."},
		{KindL, "#../###"},
		{KindJ, "..#/###"},
		{KindI, "####"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := Catalog(tt.kind)
			assert.Equal(t, tt.kind, p.Kind())
			assert.Equal(t, tt.want, p.String())
			assert.Equal(t, CellsPerPiece, distinct(p.Cells()))
		})
	}
}

func TestCatalogUnknownKindFallsBack(t *testing.T) {
	assert.Equal(t, KindO, Catalog(Kind(42)).Kind())
	assert.Equal(t, KindO, Catalog(Kind(-1)).Kind())
}

func TestRotatedVectors(t *testing.T) {
	tests := []struct {
		name string
		in   Piece
		want Layout
	}{
		{
			name: "O is unchanged as a set",
			in:   Catalog(KindO),
			want: Layout{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
		},
		{
			name: "I becomes vertical",
			in:   Catalog(KindI),
			want: Layout{{X: 0, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		},
		{
			name: "Z becomes vertical",
			in:   Catalog(KindZ),
			want: Layout{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		},
		{
			name: "vertical Z turns back",
			in:   Catalog(KindZ).Rotated(),
			want: Layout{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
		},
		{
			name: "single column clamps y",
			in:   NewPiece(KindI, Layout{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}),
			want: Layout{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotated()
			assert.Equal(t, tt.want, got.Cells())
			assert.Equal(t, tt.in.Kind(), got.Kind())
		})
	}
}

func TestRotationIsFourCycle(t *testing.T) {
	for _, k := range Kinds() {
		p := Catalog(k)
		for start := range 4 {
			base := p.RotatedN(start)
			assert.True(t, base.RotatedN(4).SameShape(base), "%s rotated %d times", k, start)
		}
	}
}

func TestRotatedNNormalizesTurns(t *testing.T) {
	p := Catalog(KindL)
	assert.Equal(t, p.RotatedN(1).Cells(), p.RotatedN(5).Cells())
	assert.Equal(t, p.RotatedN(3).Cells(), p.RotatedN(-1).Cells())
	assert.Equal(t, p.Cells(), p.RotatedN(0).Cells())
}

func TestRotationDoesNotAliasReceiver(t *testing.T) {
	p := Catalog(KindT)
	before := p.Cells()
	_ = p.Rotated()
	assert.Equal(t, before, p.Cells())
}

func TestSameShapeIgnoresOrder(t *testing.T) {
	a := NewPiece(KindO, Layout{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})
	b := NewPiece(KindO, Layout{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}})
	assert.True(t, a.SameShape(b))
	assert.False(t, a.SameShape(Catalog(KindI)))
}

func TestPieceAt(t *testing.T) {
	got := Catalog(KindI).At(core.Pt(3, 5))
	require.Len(t, got, CellsPerPiece)
	assert.Equal(t, []core.Point{{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}}, got)
}

func TestPieceBounds(t *testing.T) {
	assert.Equal(t, core.Ext(4, 1), Catalog(KindI).Bounds())
	assert.Equal(t, core.Ext(1, 4), Catalog(KindI).Rotated().Bounds())
	assert.Equal(t, core.Ext(3, 2), Catalog(KindT).Bounds())
}
