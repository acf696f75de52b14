// colormatch is a terminal color-matching game: pick the swatch that matches
// the target color before you run out of tries.
//
// Usage:
//
//	colormatch play              - Play a session
//	colormatch menu              - Pick a difficulty interactively
//	colormatch scores [level]    - Show finished sessions
//	colormatch best [--reset]    - Show or clear the best score
//	colormatch swatch <color>... - Preview color codes
//	colormatch serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.colormatch/scores.db)
//	--best-store <kind>   - Where the best score lives: sqlite or bolt
//	--config <path>       - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormatch/internal/config"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagBestStore string
	flagBoltPath  string
	flagConfig    string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colormatch",
	Short: "Color Match - Guess the color in your terminal",
	Long: `Color Match shows a target color and a grid of candidate swatches.
Pick the matching swatch to score a point; miss twice and the session ends.

Available commands:
  play     - Play a session directly
  menu     - Interactive difficulty menu
  scores   - View finished sessions
  best     - Show or reset the best score
  swatch   - Preview color codes
  serve    - Start SSH server for remote play

Settings can also come from the environment or a .env file:
  COLORMATCH_DB, COLORMATCH_BOLT, COLORMATCH_BEST_STORE,
  COLORMATCH_DIFFICULTY, COLORMATCH_LOG_LEVEL, COLORMATCH_CONFIG

Examples:
  colormatch play --difficulty hard
  colormatch menu
  colormatch scores easy
  colormatch swatch "#FF8800" 00aaff
  colormatch serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colormatch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagBestStore, "best-store", "sqlite", "Best score storage: sqlite or bolt")
	rootCmd.PersistentFlags().StringVar(&flagBoltPath, "bolt", "~/.colormatch/best.db", "Path to bolt file used with --best-store bolt")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnv loads .env and lets environment variables fill in flags the user
// did not set on the command line.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	bind := func(name, env string, dst *string) {
		if f := cmd.Flag(name); f != nil && !f.Changed {
			*dst = config.Env(env, *dst)
		}
	}
	bind("db", config.EnvDB, &flagDBPath)
	bind("bolt", config.EnvBoltPath, &flagBoltPath)
	bind("best-store", config.EnvBestStore, &flagBestStore)
	bind("config", config.EnvConfig, &flagConfig)
	bind("log-level", config.EnvLogLevel, &flagLogLevel)
	bind("difficulty", config.EnvDifficulty, &flagDifficulty)

	return nil
}
