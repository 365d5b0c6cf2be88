package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSubmit},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, core.ActionNewGame},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextDifficulty},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevDifficulty},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, core.ActionHelp},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
