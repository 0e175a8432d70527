package core

// RuntimeConfig holds the terminal defaults used before the platform
// reports a real size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is a snapshot of the run as seen by the session layer.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventFireStarted
	EventFireStopped
	EventEnemyDestroyed
	EventPlayerHit
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "ShotFired"
	case EventFireStarted:
		return "FireStarted"
	case EventFireStopped:
		return "FireStopped"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventPlayerHit:
		return "PlayerHit"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a gameplay occurrence the session reacts to (sounds, phase changes).
type Event struct {
	Kind EventKind
	X, Y float64 // Field position, when meaningful
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred during the step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
