package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagBestReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score, the one shown as BEST in the game.

The best score lives in the SQLite database by default, or in a bolt file
with --best-store bolt.

Examples:
  colormatch best
  colormatch best --reset
  colormatch best --best-store bolt --bolt ./best.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagBestReset, "reset", false, "Clear the best score")
}

func runBest(_ *cobra.Command, _ []string) {
	a, err := openApp(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if !flagBestReset {
		fmt.Printf("Best: %d\n", a.best.Get())
		return
	}

	store, ok := a.best.(resettable)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no persistent best score to reset")
		os.Exit(1)
	}
	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Best score cleared.")
}
