package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic effects
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

// Cue names a sound effect or music directive emitted by the simulation.
// The audio collaborator maps cues to playback.
type Cue string

// Sound cues and music directives.
const (
	CueStartup   Cue = "startup"
	CueWallHit   Cue = "wall_hit"
	CuePaddleHit Cue = "paddle_hit"
	CueBrickHit  Cue = "brick_hit"
	CueFloorHit  Cue = "floor_hit"
	CueLifeLost  Cue = "life_lost"
	CueGameOver  Cue = "game_over"
	CuePlayMusic Cue = "play_music"
	CueStopMusic Cue = "stop_music"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked to leave
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
