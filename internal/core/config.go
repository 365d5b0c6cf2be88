package core

// RuntimeConfig contains configuration passed to a front end when a session starts.
type RuntimeConfig struct {
	ScreenW    int        // Screen width in characters
	ScreenH    int        // Screen height in characters
	Seed       int64      // RNG seed for fallback word selection (0 = time based)
	Difficulty Difficulty // Preselected difficulty tier
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: DefaultDifficulty,
	}
}
