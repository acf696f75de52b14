package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colormatch/internal/config"
	"github.com/vovakirdan/colormatch/internal/core"
	"github.com/vovakirdan/colormatch/internal/game"
)

// Game screen layout. Rows are fixed so mouse clicks can be mapped back to
// swatches without re-measuring the rendered view.
const (
	gridColumns = 3
	gridGap     = 2

	titleY  = 1
	headerY = 3
	promptY = 5
	targetY = 7
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hintStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	bestStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

// layout holds where each part of the game screen lands.
type layout struct {
	left    int
	width   int
	target  core.Rect
	cells   []core.Rect
	statusY int
	hintY   int
	helpY   int
}

// computeLayout centers the target and the candidate grid on a screen
// screenW cells wide.
func computeLayout(screenW, n int, d config.DisplayConfig) layout {
	cols := core.Clamp(n, 1, gridColumns)
	gridW := cols*d.SwatchWidth + (cols-1)*gridGap
	width := max(gridW, d.TargetWidth)
	left := max(0, (screenW-width)/2)

	target := core.NewRect(left+(width-d.TargetWidth)/2, targetY, d.TargetWidth, d.TargetHeight)

	gridTop := target.Bottom() + 1
	cells := core.Grid(n, cols, left+(width-gridW)/2, gridTop, d.SwatchWidth, d.SwatchHeight, gridGap)

	rows := (n + cols - 1) / cols
	gridBottom := gridTop + rows*(d.SwatchHeight+1) - 1

	return layout{
		left:    left,
		width:   width,
		target:  target,
		cells:   cells,
		statusY: gridBottom + 1,
		hintY:   gridBottom + 2,
		helpY:   gridBottom + 4,
	}
}

// cellAt returns the index of the swatch under (x, y), or -1.
func (l layout) cellAt(x, y int) int {
	for i, r := range l.cells {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// block is a pre-rendered rectangle; each row is exactly rect.W cells wide.
type block struct {
	rect core.Rect
	rows []string
}

// composeLine draws the row y of every block that covers it. Blocks sharing
// a row must be ordered left to right.
func composeLine(y int, blocks []block) string {
	var b strings.Builder
	x := 0
	for _, bl := range blocks {
		if y < bl.rect.Y || y >= bl.rect.Bottom() {
			continue
		}
		if bl.rect.X > x {
			b.WriteString(strings.Repeat(" ", bl.rect.X-x))
		}
		b.WriteString(bl.rows[y-bl.rect.Y])
		x = bl.rect.Right()
	}
	return b.String()
}

// swatch renders a solid block of color c with label on its middle row.
// The label is drawn in black or white, whichever reads better.
func swatch(c game.Color, r core.Rect, label string) block {
	fg := lipgloss.Color("#FFFFFF")
	if c.IsLight() {
		fg = lipgloss.Color("#000000")
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(fg).
		Bold(true)

	rows := make([]string, r.H)
	for i := range rows {
		text := ""
		if i == r.H/2 {
			text = label
		}
		rows[i] = style.Render(padCenter(text, r.W))
	}
	return block{rect: r, rows: rows}
}

// swatchLabel picks the label for candidate i.
func swatchLabel(i int, c game.Color, round game.Round, cursor bool) string {
	label := fmt.Sprintf("%d", i+1)
	switch {
	case round.Status == game.StatusCorrect && c == round.Selected:
		label = "✓ " + label
	case round.Status == game.StatusGameOver && c == round.Target:
		label = "✓ " + label
	case round.Status != game.StatusIdle && c == round.Selected:
		label = "✗ " + label
	}
	if cursor {
		label = "▸ " + label + " ◂"
	}
	return label
}

// padCenter pads text with spaces to width cells, centered.
func padCenter(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-w-left)
}

// spread places left and right at the two ends of a line width cells wide.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// statusLine renders the message for the round status.
func statusLine(round game.Round, newBest bool) string {
	msg := round.Status.Message()
	switch round.Status {
	case game.StatusCorrect:
		line := correctStyle.Render(msg)
		if newBest {
			line += "  " + bestStyle.Render("★ New best!")
		}
		return line
	case game.StatusWrong, game.StatusGameOver:
		return wrongStyle.Render(msg)
	default:
		left := game.MaxAttempts - round.AttemptsUsed
		return dimStyle.Render(fmt.Sprintf("%d tries left", left))
	}
}
