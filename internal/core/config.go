package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int       // Screen width in characters
	ScreenH  int       // Screen height in characters
	TickRate int       // Simulation ticks per second (default 60)
	Seed     int64     // RNG seed for deterministic gameplay
	Start    time.Time // Clock origin; zero means the Unix epoch
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

// NewClock returns a frame clock matching this configuration.
func (c RuntimeConfig) NewClock() *FrameClock {
	origin := c.Start
	if origin.IsZero() {
		origin = time.Unix(0, 0)
	}
	return NewFrameClock(c.TickRate, origin)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Outcome  string // Optional label describing how the game ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
