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

// Phase names the top-level state a game is in.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseEndOfGame
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseEndOfGame:
		return "end"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of game status handed to the platform.
type GameState struct {
	Phase    Phase
	Score    int
	MaxChain int
	Lives    int
	GameOver bool // Whether the last game has ended
	Quit     bool // Whether the player asked to leave
}
