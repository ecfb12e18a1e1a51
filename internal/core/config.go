package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size the play area and for deterministic simulation.
type RuntimeConfig struct {
	World    Bounds // Play area in world units
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Touch    bool   // Running on a touch/pointer device (slower pace)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		World:    Bounds{W: 800, H: 600},
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
