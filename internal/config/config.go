// Package config provides YAML-based game configuration loading and
// environment overrides for Color Match.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/colormatch/internal/game"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// GameConfig contains all configuration for the color-matching game.
type GameConfig struct {
	Difficulty string        `yaml:"difficulty"`
	Delays     DelayConfig   `yaml:"delays"`
	Hint       HintConfig    `yaml:"hint"`
	Display    DisplayConfig `yaml:"display"`
}

// DelayConfig defines pauses before deferred transitions, in milliseconds.
type DelayConfig struct {
	CorrectMS  int `yaml:"correct_ms"`
	GameOverMS int `yaml:"game_over_ms"`
}

// HintConfig controls the hint key.
type HintConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DisplayConfig sizes the swatches, in terminal cells.
type DisplayConfig struct {
	SwatchWidth  int `yaml:"swatch_width"`
	SwatchHeight int `yaml:"swatch_height"`
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// CorrectDelay returns the pause after a correct guess.
func (c GameConfig) CorrectDelay() time.Duration {
	return time.Duration(c.Delays.CorrectMS) * time.Millisecond
}

// GameOverDelay returns the pause after the session is lost.
func (c GameConfig) GameOverDelay() time.Duration {
	return time.Duration(c.Delays.GameOverMS) * time.Millisecond
}

// StartDifficulty returns the configured starting difficulty.
// Unknown names fall back to medium.
func (c GameConfig) StartDifficulty() game.Difficulty {
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return game.Medium
	}
	return d
}

// EngineOptions converts the config into engine options.
func (c GameConfig) EngineOptions() []game.Option {
	return []game.Option{game.WithDelays(c.CorrectDelay(), c.GameOverDelay())}
}

// Validate checks the config for values the game cannot run with.
func (c GameConfig) Validate() error {
	if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidConfig, c.Difficulty)
	}
	if c.Delays.CorrectMS < 0 || c.Delays.GameOverMS < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	d := c.Display
	if d.SwatchWidth <= 0 || d.SwatchHeight <= 0 || d.TargetWidth <= 0 || d.TargetHeight <= 0 {
		return fmt.Errorf("%w: swatch sizes must be positive", ErrInvalidConfig)
	}
	return nil
}

// ApplyDifficultyPreset overrides the starting difficulty.
// An empty preset leaves the config unchanged.
func ApplyDifficultyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	d, err := game.ParseDifficulty(string(preset))
	if err != nil {
		return fmt.Errorf("config: difficulty preset %q: %w", preset, err)
	}
	cfg.Difficulty = d.String()
	return nil
}
