package tetris

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateFinished GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Pieces   int
	State    GameStateType
	HasLive  bool
	LiveKind Kind
	LiveX    int
	LiveY    int
	NextKind Kind
	Board    string // locked cells, rows top to bottom, '#' filled and '.' empty
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateFinished
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		State:    state,
		NextKind: g.next.Kind(),
	}
	if g.panel == nil {
		return s
	}
	if live, ok := g.panel.Live(); ok {
		s.HasLive = true
		s.LiveKind = live.Piece.Kind()
		s.LiveX = live.Position.X
		s.LiveY = live.Position.Y
	}
	s.Board = boardString(g.panel)
	return s
}

func boardString(p *Panel) string {
	size := p.Size()
	var sb strings.Builder
	sb.Grow(size.Area() + size.Height)
	for y := range size.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range size.Width {
			if p.board.cells[y*size.Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
