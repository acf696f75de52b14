package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormatch/internal/game"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch <color>...",
	Short: "Preview color codes",
	Long: `Render each color code as a swatch with its RGB components and the hint
the game would give for it.

Codes are six hex digits with an optional leading '#', in any case.

Examples:
  colormatch swatch "#FF8800"
  colormatch swatch 00aaff 123456`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwatch,
}

func runSwatch(_ *cobra.Command, args []string) {
	failed := false
	for _, arg := range args {
		c, err := game.ParseColor(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}

		fg := lipgloss.Color("#FFFFFF")
		if c.IsLight() {
			fg = lipgloss.Color("#000000")
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.String())).
			Foreground(fg).
			Width(12).
			Align(lipgloss.Center).
			Render(c.String())

		r, g, b := c.RGB()
		fmt.Printf("%s  rgb(%d, %d, %d)  %s\n", block, r, g, b, game.HintFor(c))
	}
	if failed {
		os.Exit(1)
	}
}
