package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventRotate    EventKind = iota + 1 // Live piece rotated
	EventLock                           // Piece locked into the board
	EventLineClear                      // One or more rows cleared; Count holds how many
	EventGameOver                       // Spawn failed
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRotate:
		return "rotate"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line_clear"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is an outcome reported back to the platform (audio cues, effects).
type Event struct {
	Kind  EventKind
	Count int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
