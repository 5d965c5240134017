package core

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	TickRate  int     // Ticks per second (default 30)
	Seed      int64   // RNG seed for deterministic simulation
	TimeScale float64 // Game seconds per real second (default 1)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  30,
		Seed:      0, // 0 means use current time in platform layer
		TimeScale: 1,
	}
}

// TickDuration returns the length of one tick in seconds.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 30
	}
	return 1.0 / float64(c.TickRate)
}
