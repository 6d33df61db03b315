package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg    tea.KeyMsg
		action Action
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlAt}, ActionComplete},
		{tea.KeyMsg{Type: tea.KeyCtrlG}, ActionTogglePathCompletion},
		{tea.KeyMsg{Type: tea.KeyTab}, ActionAccept},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionAccept},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionSelectPrevious},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionSelectNext},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionDismiss},
		{tea.KeyMsg{Type: tea.KeyCtrlT}, ActionNewTab},
		{tea.KeyMsg{Type: tea.KeyCtrlX}, ActionCloseTab},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true}, ActionNextTab},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true}, ActionPreviousTab},
		{tea.KeyMsg{Type: tea.KeyCtrlV}, ActionPaste},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyBackspace}, ActionDeleteCharacterBackward},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionCharacterBackward},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, ActionNone},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.msg); got != tt.action {
			t.Errorf("Lookup(%q) = %s, want %s", tt.msg.String(), got, tt.action)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	short := km.ShortHelp()
	if len(short) != 5 {
		t.Errorf("expected 5 short help bindings, got %d", len(short))
	}
	if short[0].Help().Key != "ctrl+space" {
		t.Errorf("unexpected first help key %q", short[0].Help().Key)
	}

	for _, column := range km.FullHelp() {
		if len(column) == 0 {
			t.Error("full help columns should not be empty")
		}
	}

	if _, ok := km.Binding(ActionNone); ok {
		t.Error("ActionNone should have no binding")
	}
}
