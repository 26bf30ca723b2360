package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) *replModel {
	t.Helper()
	m, ok := NewReplModel(func(src string) (string, error) {
		if src == "boom" {
			return "", errors.New("kaput")
		}
		return "ok:" + src, nil
	}).(*replModel)
	if !ok {
		t.Fatal("NewReplModel returned an unexpected type")
	}
	return m
}

func enter(m *replModel, src string) (tea.Model, tea.Cmd) {
	m.input.SetValue(src)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestReplEvaluatesOnEnter(t *testing.T) {
	m := testModel(t)
	enter(m, " 1 + 1 ")
	if len(m.history) != 1 {
		t.Fatalf("history length = %d", len(m.history))
	}
	e := m.history[0]
	if e.Input != "1 + 1" || e.Output != "ok:1 + 1" || e.IsErr {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if m.input.Value() != "" {
		t.Fatal("input not cleared after enter")
	}
}

func TestReplRecordsErrors(t *testing.T) {
	m := testModel(t)
	enter(m, "boom")
	if len(m.history) != 1 || !m.history[0].IsErr || m.history[0].Output != "kaput" {
		t.Fatalf("unexpected history: %+v", m.history)
	}
	if !strings.Contains(m.View(), "kaput") {
		t.Fatal("error missing from view")
	}
}

func TestReplQuitKeywords(t *testing.T) {
	m := testModel(t)
	_, cmd := enter(m, "exit")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}

func TestReplIgnoresEmptyInput(t *testing.T) {
	m := testModel(t)
	enter(m, "   ")
	if len(m.history) != 0 {
		t.Fatalf("history length = %d", len(m.history))
	}
}

func TestReplHistoryBounded(t *testing.T) {
	m := testModel(t)
	for range historyLimit + 10 {
		enter(m, "1")
	}
	if len(m.history) != historyLimit {
		t.Fatalf("history length = %d, want %d", len(m.history), historyLimit)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("truncate short = %q", got)
	}
	got := truncate(strings.Repeat("1", 20), 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate long = %q", got)
	}
}
