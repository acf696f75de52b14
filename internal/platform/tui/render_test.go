package tui

import (
	"testing"

	"github.com/vovakirdan/colormatch/internal/config"
	"github.com/vovakirdan/colormatch/internal/game"
)

func TestComputeLayout(t *testing.T) {
	display := config.DefaultGameConfig().Display

	for _, d := range game.Difficulties {
		n := d.Candidates()
		lay := computeLayout(80, n, display)

		if len(lay.cells) != n {
			t.Fatalf("%v: %d cells, expected %d", d, len(lay.cells), n)
		}

		for i, a := range lay.cells {
			if a.Y <= lay.target.Bottom() {
				t.Errorf("%v: cell %d overlaps the target", d, i)
			}
			if a.Bottom() >= lay.statusY {
				t.Errorf("%v: cell %d reaches the status line", d, i)
			}
			if a.X < 0 || a.Right() > 80 {
				t.Errorf("%v: cell %d outside the screen: %+v", d, i, a)
			}
			for j, b := range lay.cells[i+1:] {
				if a.Contains(b.X, b.Y) || b.Contains(a.X, a.Y) {
					t.Errorf("%v: cells %d and %d overlap", d, i, i+1+j)
				}
			}
			if got := lay.cellAt(a.X, a.Y); got != i {
				t.Errorf("%v: cellAt(corner of %d) = %d", d, i, got)
			}
		}

		if lay.cellAt(0, 0) != -1 {
			t.Errorf("%v: cellAt(0, 0) should miss", d)
		}
	}
}

func TestComputeLayoutNarrowScreen(t *testing.T) {
	lay := computeLayout(10, 9, config.DefaultGameConfig().Display)
	if lay.left != 0 {
		t.Errorf("left = %d on a narrow screen, expected 0", lay.left)
	}
}

func TestPadCenter(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"1", 5, "  1  "},
		{"ab", 5, " ab  "},
		{"toolong", 3, "toolong"},
		{"", 3, "   "},
	}

	for _, tc := range tests {
		if got := padCenter(tc.text, tc.width); got != tc.expected {
			t.Errorf("padCenter(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}

func TestSwatchLabel(t *testing.T) {
	round := game.Round{
		Candidates: []game.Color{"#111111", "#222222"},
		Target:     "#222222",
		Selected:   "#111111",
		Status:     game.StatusWrong,
	}

	if got := swatchLabel(0, "#111111", round, false); got != "✗ 1" {
		t.Errorf("wrong pick label = %q", got)
	}
	if got := swatchLabel(1, "#222222", round, true); got != "▸ 2 ◂" {
		t.Errorf("cursor label = %q", got)
	}

	round.Status = game.StatusGameOver
	if got := swatchLabel(1, "#222222", round, false); got != "✓ 2" {
		t.Errorf("game over should reveal the target, got %q", got)
	}
}
