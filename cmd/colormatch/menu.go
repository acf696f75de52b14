package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormatch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty menu",
	Long: `Start Color Match in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Esc or B in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  colormatch menu
  colormatch menu --difficulty easy
  colormatch menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty the menu starts on")
}

func runMenu(_ *cobra.Command, _ []string) {
	a, err := openApp(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	deps := a.deps()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(deps, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(deps, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		// The menu starts on the last difficulty played.
		deps.Config.Difficulty = menuResult.Difficulty.String()

		backToMenu, err := tui.Run(deps, menuResult.Difficulty, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}

		// Only the first game uses --seed
		cfg.Seed = 0
	}
}
