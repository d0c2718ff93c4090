package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/outloud/pkg/engine"
)

func newTestEditor(t *testing.T, historySize int) editorModel {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	s, err := engine.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Release)
	return newEditorModel(s, historySize)
}

func press(t *testing.T, m editorModel, msg tea.KeyMsg) (editorModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	em, ok := next.(editorModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return em, cmd
}

func typeWord(t *testing.T, m editorModel, word string) editorModel {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	return m
}

func words(history []exchange) []string {
	var out []string
	for _, ex := range history {
		out = append(out, ex.word+":"+strings.Join(ex.replies, " "))
	}
	return out
}

func TestEditorHistory(t *testing.T) {
	m := newTestEditor(t, 3)
	for _, w := range []string{"hi", "new", "right", "abc", "done"} {
		m = typeWord(t, m, w)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})

	want := []string{"abc:", "done:ok", "up:edge"}
	if diff := cmp.Diff(want, words(m.history)); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	view := m.View()
	for _, want := range []string{"navigate", "* ", "abc", "edge"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestEditorFailedDig(t *testing.T) {
	m := newTestEditor(t, 8)
	for _, w := range []string{"hi", "new", "right", "apple", "done", "dig", "zebra"} {
		m = typeWord(t, m, w)
	}

	view := m.View()
	for _, want := range []string{"dig", "apple", "zebra"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	m = typeWord(t, m, "done")
	if diff := cmp.Diff([]string{"done:edge"}, words(m.history[len(m.history)-1:])); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorInput(t *testing.T) {
	m := newTestEditor(t, 8)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("aXb-1!")})
	if m.input != "ab-1" {
		t.Errorf("input = %q, want ab-1", m.input)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "ab-" {
		t.Errorf("input after backspace = %q", m.input)
	}

	// arrows are ignored while a word is typed
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if len(m.history) != 0 {
		t.Errorf("arrow sent a word: %v", words(m.history))
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if diff := cmp.Diff([]string{"a:hello"}, words(m.history)); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	// uppercase runes are dropped, leaving an empty word that changes nothing
	m = typeWord(t, m, "UP")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 1 {
		t.Errorf("empty word recorded: %v", words(m.history))
	}
}

func TestEditorQuit(t *testing.T) {
	m := newTestEditor(t, 8)
	m = typeWord(t, m, "hi")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
	if cmd != nil {
		t.Fatal("typing alone returned a command")
	}
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.quit {
		t.Errorf("quit: cmd = %v, quit = %v", cmd, m.quit)
	}
}

func TestEditorCtrlC(t *testing.T) {
	m := newTestEditor(t, 8)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || m.quit {
		t.Errorf("ctrl+c: cmd = %v, quit = %v", cmd, m.quit)
	}
}
