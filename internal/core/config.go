package core

import "time"

// RuntimeConfig is what the host passes to Game.Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic boards
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

// TickDuration returns the length of one tick. Non-positive rates use the default.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is reported by Game.State and Game.Step.
type GameState struct {
	Busy   bool // A move is resolving
	Paused bool
	Moves  int // Swipes accepted since Reset
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
