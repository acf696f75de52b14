package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormatch/internal/game"
	"github.com/vovakirdan/colormatch/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|medium|hard]",
	Short: "Show finished sessions",
	Long: `Display the top finished sessions, for one difficulty or all of them.

Only sessions that ended with at least one point are recorded.

Examples:
  colormatch scores
  colormatch scores hard
  colormatch scores --limit 25
  colormatch scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the listed history instead of showing it")
}

func runScores(_ *cobra.Command, args []string) {
	difficulty, title := "", "All"
	if len(args) == 1 {
		d, err := game.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty, title = d.String(), d.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearSessions(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared history - %s\n", title)
		return
	}

	sessions, err := store.TopSessions(difficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'colormatch play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Hints", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8s  %-5d  %s\n", i+1, s.Score, s.Difficulty, s.Hints, dateStr)
	}

	if difficulty != "" {
		if stats, err := store.Stats(difficulty); err == nil {
			fmt.Println()
			fmt.Printf("Sessions: %d  Best: %d  Average: %.1f\n", stats.Sessions, stats.BestScore, stats.AvgScore)
		}
	}
}
