package tetris

import (
	"math/rand"
)

// Factory hands out random pieces. Its only state is the random source, so
// two factories built from sources with the same seed produce the same
// sequence.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory drawing from src.
func NewFactory(src rand.Source) *Factory {
	return &Factory{rng: rand.New(src)}
}

// NewSeededFactory creates a factory from an integer seed.
func NewSeededFactory(seed int64) *Factory {
	return NewFactory(rand.NewSource(seed))
}

// RandomPiece picks one of the seven kinds uniformly and applies 0-3
// clockwise rotations, also uniformly.
func (f *Factory) RandomPiece() Piece {
	kind := Kind(f.rng.Intn(KindCount))
	turns := f.rng.Intn(4)
	return Catalog(kind).RotatedN(turns)
}
