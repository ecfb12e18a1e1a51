package config

import (
	_ "embed"
)

//go:embed defaults/forest.yaml
var defaultForestYAML []byte

// DefaultConfig returns the default Forest Journey configuration.
func DefaultConfig() ForestConfig {
	return ForestConfig{
		Gameplay: GameplayConfig{
			Lives:       3,
			LaunchDelay: 30, // half a second at 60 FPS
		},
		Paddle: PaddleConfig{
			WidthRatio:   0.15,
			Height:       12,
			BottomOffset: 40,
			Speed:        10,
			MaxBounceDX:  7,
			Color:        "#a0522d",
		},
		Ball: BallConfig{
			Speed:        7,
			Radius:       9,
			LaunchSpread: 3,
			MultiSpread:  4,
			Color:        "#ff7f50",
		},
		Bricks: BrickConfig{
			Columns:    8,
			BaseRows:   3,
			MaxExtra:   5,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 40,
			Height:     22,
			RowPoints:  10,
			Colors:     []string{"#ff9b9b", "#7fb5b5", "#fdfd96", "#91c18e", "#b19cd9"},
		},
		Items: ItemConfig{
			DropChance: 0.25,
			Radius:     16,
			FallSpeed:  2,
		},
		Effects: EffectConfig{
			ExpandFrames:   600,
			SafetyFrames:   600,
			FireballFrames: 400,
			LaserFrames:    500,
			ExpandFactor:   1.6,
			SlowFactor:     0.6,
		},
		Laser: LaserConfig{
			BulletSpeed:  10,
			BulletRadius: 4,
			EdgeInset:    10,
		},
		Particles: ParticleConfig{
			Burst:    8,
			MaxSpeed: 4,
			MinSize:  2,
			MaxSize:  6,
			MinDecay: 0.01,
			MaxDecay: 0.03,
		},
		Touch: TouchConfig{
			SpeedFactor: 0.75,
			Sensitivity: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpeedStep:       0.1,
			SizeStep:        0.05,
			MinSizeScale:    0.5,
			PaddleSpeedStep: 1,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultForestYAML
}
