package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load loads the game configuration.
// Search order: customPath -> ~/.forest/configs/forest.yaml -> ./configs/forest.yaml -> embedded default
//
// Files are decoded on top of DefaultConfig, so a file only needs the keys it
// overrides. A custom path that cannot be read or parsed is an error; the
// implicit locations are skipped silently.
func Load(customPath string) (ForestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("forest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/forest.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultForestYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (ForestConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg ForestConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects values the simulation cannot run with.
func (c ForestConfig) Validate() error {
	switch {
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive", ErrInvalidConfig)
	case c.Bricks.Columns <= 0:
		return fmt.Errorf("%w: bricks.columns must be positive", ErrInvalidConfig)
	case len(c.Bricks.Colors) == 0:
		return fmt.Errorf("%w: bricks.colors must not be empty", ErrInvalidConfig)
	case c.Items.DropChance < 0 || c.Items.DropChance > 1:
		return fmt.Errorf("%w: items.drop_chance must be within [0, 1]", ErrInvalidConfig)
	case c.Ball.Radius <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("%w: ball.speed and ball.radius must be positive", ErrInvalidConfig)
	case c.Particles.MinDecay <= 0 || c.Particles.MaxDecay < c.Particles.MinDecay:
		return fmt.Errorf("%w: particles decay range is empty", ErrInvalidConfig)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: render cell size must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forest", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ForestConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.WidthRatio = 0.2
		cfg.Ball.Speed = 6
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.WidthRatio = 0.12
		cfg.Ball.Speed = 8.5
	}
}
