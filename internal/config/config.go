// Package config provides YAML-based game configuration loading and
// difficulty management for Forest Journey.
package config

// ForestConfig contains all configuration for the forest brick breaker.
type ForestConfig struct {
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Items      ItemConfig       `yaml:"items"`
	Effects    EffectConfig     `yaml:"effects"`
	Laser      LaserConfig      `yaml:"laser"`
	Particles  ParticleConfig   `yaml:"particles"`
	Touch      TouchConfig      `yaml:"touch"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	LaunchDelay int `yaml:"launch_delay"` // Frames firing is ignored after a lost life
}

// PaddleConfig defines the paddle at level 1.
type PaddleConfig struct {
	WidthRatio   float64 `yaml:"width_ratio"`   // Fraction of play-area width
	Height       float64 `yaml:"height"`        // World units
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the paddle top from the floor
	Speed        float64 `yaml:"speed"`         // World units per frame
	MaxBounceDX  float64 `yaml:"max_bounce_dx"` // |dx| after an edge hit
	Color        string  `yaml:"color"`
}

// BallConfig defines the ball at level 1.
type BallConfig struct {
	Speed        float64 `yaml:"speed"`
	Radius       float64 `yaml:"radius"`
	LaunchSpread float64 `yaml:"launch_spread"` // dx drawn from [-spread, spread] on launch
	MultiSpread  float64 `yaml:"multi_spread"`  // dx drawn from [-spread, spread] for MULTI balls
	Color        string  `yaml:"color"`
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Columns    int      `yaml:"columns"`
	BaseRows   int      `yaml:"base_rows"`
	MaxExtra   int      `yaml:"max_extra_rows"` // Extra rows = min(level, max_extra_rows)
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Height     float64  `yaml:"height"`
	RowPoints  int      `yaml:"row_points"` // Points per row counted from the bottom
	Colors     []string `yaml:"colors"`
}

// ItemConfig defines falling power-up pickups.
type ItemConfig struct {
	DropChance float64 `yaml:"drop_chance"`
	Radius     float64 `yaml:"radius"`
	FallSpeed  float64 `yaml:"fall_speed"`
}

// EffectConfig defines timed effect durations (frames) and factors.
type EffectConfig struct {
	ExpandFrames   int     `yaml:"expand_frames"`
	SafetyFrames   int     `yaml:"safety_frames"`
	FireballFrames int     `yaml:"fireball_frames"`
	LaserFrames    int     `yaml:"laser_frames"`
	ExpandFactor   float64 `yaml:"expand_factor"`
	SlowFactor     float64 `yaml:"slow_factor"`
}

// LaserConfig defines bullets fired while the laser effect is active.
type LaserConfig struct {
	BulletSpeed  float64 `yaml:"bullet_speed"` // Upward, world units per frame
	BulletRadius float64 `yaml:"bullet_radius"`
	EdgeInset    float64 `yaml:"edge_inset"` // Distance of each emitter from the paddle edge
}

// ParticleConfig defines the cosmetic burst on brick destruction.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`
	MaxSpeed float64 `yaml:"max_speed"` // Velocity components in [-max, max)
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinDecay float64 `yaml:"min_decay"`
	MaxDecay float64 `yaml:"max_decay"`
}

// TouchConfig defines pointer/touch play.
type TouchConfig struct {
	SpeedFactor float64 `yaml:"speed_factor"` // Applied to ball and paddle speed
	Sensitivity float64 `yaml:"sensitivity"`  // Multiplier on pointer delta
}

// DifficultyConfig defines how each new level scales the arena.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SpeedStep       float64 `yaml:"speed_step"`        // Speed multiplier added per level
	SizeStep        float64 `yaml:"size_step"`         // Size multiplier removed per level
	MinSizeScale    float64 `yaml:"min_size_scale"`    // Floor for the size multiplier
	PaddleSpeedStep float64 `yaml:"paddle_speed_step"` // Paddle speed added per level
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AudioConfig defines procedural sound output.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables per-level scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
