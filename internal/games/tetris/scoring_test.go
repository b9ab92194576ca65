package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineScore(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
		{5, 10000},
		{20, 10000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LineScore(tt.lines), "LineScore(%d)", tt.lines)
	}
}
