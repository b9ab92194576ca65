package tetris

// lineScores maps simultaneous line clears to points.
var lineScores = [...]int{0, 100, 300, 700, 1500}

// maxLineScore is awarded for more than four rows at once, which classic
// pieces cannot produce.
const maxLineScore = 10000

// LineScore returns the points for clearing n rows in one lock.
func LineScore(n int) int {
	switch {
	case n <= 0:
		return 0
	case n < len(lineScores):
		return lineScores[n]
	default:
		return maxLineScore
	}
}
