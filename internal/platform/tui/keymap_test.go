package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{keyRunes("k"), MenuActionUp},
		{keyRunes("w"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{keyRunes("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{keyRunes("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestGameKeyMapHintDisabledHidesHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	keys.Hint.SetEnabled(false)

	for _, b := range keys.ShortHelp() {
		if b.Enabled() && b.Help().Desc == "hint" {
			t.Error("disabled hint binding should not be active")
		}
	}
}
