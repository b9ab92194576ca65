package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryDeterministic(t *testing.T) {
	a := NewSeededFactory(7)
	b := NewSeededFactory(7)

	for i := range 100 {
		pa, pb := a.RandomPiece(), b.RandomPiece()
		require.Equal(t, pa.Kind(), pb.Kind(), "piece %d", i)
		require.Equal(t, pa.Cells(), pb.Cells(), "piece %d", i)
	}
}

func TestFactoryPiecesAreWellFormed(t *testing.T) {
	f := NewSeededFactory(99)
	seen := make(map[Kind]bool)

	for range 1000 {
		p := f.RandomPiece()
		seen[p.Kind()] = true

		assert.Equal(t, CellsPerPiece, distinct(p.Cells()))
		for _, c := range p.Cells() {
			assert.GreaterOrEqual(t, c.X, 0)
			assert.GreaterOrEqual(t, c.Y, 0)
		}

		// Whatever the rotation, it must be one of the kind's four orientations.
		base := Catalog(p.Kind())
		matched := false
		for n := range 4 {
			if base.RotatedN(n).SameShape(p) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "%s is not a rotation of %s", p, base)
	}

	assert.Len(t, seen, KindCount)
}
