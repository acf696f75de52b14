package config

import (
	_ "embed"
)

//go:embed defaults/colormatch.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
// Delays match the pacing of the browser version of the game.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Difficulty: string(DifficultyMedium),
		Delays: DelayConfig{
			CorrectMS:  800,
			GameOverMS: 1000,
		},
		Hint: HintConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			SwatchWidth:  10,
			SwatchHeight: 3,
			TargetWidth:  24,
			TargetHeight: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
