package browse

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newCopyTestModel(t *testing.T, write func(string) error) Model {
	t.Helper()
	tv := newTestTableView(func(ctx context.Context) ([]testItem, error) { return nil, nil })
	updated, _ := tv.Update(tableDataMsg{viewID: tv.viewID(), items: []testItem{{id: "pool-1"}}})

	m := NewModel(nil, "dev", "us-east-1", "")
	m.writeClip = write
	m.stack = []View{updated}
	return m
}

func TestModel_CopyKeySetsConfirmation(t *testing.T) {
	var wrote string
	m := newCopyTestModel(t, func(s string) error {
		wrote = s
		return nil
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(Model)

	if wrote != "pool-1" {
		t.Errorf("wrote %q to clipboard, want pool-1", wrote)
	}
	if !strings.Contains(m.View(), "Copied: pool-1") {
		t.Error("View() should show the copy confirmation")
	}
}

func TestModel_CopyFailureSkipsConfirmation(t *testing.T) {
	m := newCopyTestModel(t, func(string) error {
		return errors.New("no clipboard utilities available")
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(Model)

	if m.copiedText != "" {
		t.Errorf("copiedText = %q, want empty after a failed write", m.copiedText)
	}
	if strings.Contains(m.View(), "Copied:") {
		t.Error("View() must not claim a copy that failed")
	}
}
