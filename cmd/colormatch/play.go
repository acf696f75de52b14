package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormatch/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session right away.

A target color is shown above a grid of candidates. Pick the candidate that
matches. A correct pick scores a point and deals a new round; two misses in
the same round end the session.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Guess the swatch under the cursor
  1-9          - Guess a swatch directly
  Mouse click  - Guess the clicked swatch
  I            - Reveal a hint
  N            - New game
  D            - Next difficulty (starts a new game)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 3 candidates
  medium - 6 candidates (also: normal)
  hard   - 9 candidates

Examples:
  colormatch play
  colormatch play --difficulty hard
  colormatch play --seed 42
  colormatch play --config ./my-colormatch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := openApp(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, runErr := tui.Run(a.deps(), a.cfg.StartDifficulty(), runtimeConfig())

	// Close stores before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
