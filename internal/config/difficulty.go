package config

import "math"

// LevelScaling calculates per-level arena parameters.
type LevelScaling struct {
	cfg         DifficultyConfig
	touch       bool
	touchFactor float64
}

// NewLevelScaling creates a scaling calculator. touch selects the reduced
// pace used on pointer/touch devices.
func NewLevelScaling(cfg ForestConfig, touch bool) *LevelScaling {
	return &LevelScaling{
		cfg:         cfg.Difficulty,
		touch:       touch,
		touchFactor: cfg.Touch.SpeedFactor,
	}
}

// IsEnabled returns whether levels get progressively harder.
func (s *LevelScaling) IsEnabled() bool {
	return s.cfg.Enabled
}

// TouchFactor returns the uniform speed multiplier for the input device.
func (s *LevelScaling) TouchFactor() float64 {
	if !s.touch || s.touchFactor <= 0 {
		return 1.0
	}
	return s.touchFactor
}

// SpeedScale returns the ball speed multiplier for a level:
// (1 + (level-1)*step) * touchFactor.
func (s *LevelScaling) SpeedScale(level int) float64 {
	return (1 + float64(s.steps(level))*s.cfg.SpeedStep) * s.TouchFactor()
}

// SizeScale returns the paddle/brick size multiplier for a level:
// max(minScale, 1 - (level-1)*step).
func (s *LevelScaling) SizeScale(level int) float64 {
	scale := 1 - float64(s.steps(level))*s.cfg.SizeStep
	return math.Max(s.cfg.MinSizeScale, scale)
}

// PaddleSpeed returns the paddle speed for a level.
func (s *LevelScaling) PaddleSpeed(base float64, level int) float64 {
	return (base + float64(s.steps(level))*s.cfg.PaddleSpeedStep) * s.TouchFactor()
}

// Rows returns the number of brick rows for a level: base + min(level, maxExtra).
// The row count grows with the level even when scaling is disabled.
func Rows(bricks BrickConfig, level int) int {
	return bricks.BaseRows + min(max(level, 0), bricks.MaxExtra)
}

// steps returns how many levels past the first apply.
func (s *LevelScaling) steps(level int) int {
	if !s.cfg.Enabled || level < 1 {
		return 0
	}
	return level - 1
}
