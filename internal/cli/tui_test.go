package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPuzzlePicker(t *testing.T) {
	dir := t.TempDir()
	path := runner.InputPath(dir, 2021, 1)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries := catalog.Year(2021)
	m := newPuzzlePicker(entries, dir)

	if m.Cursor != len(entries)-1 {
		t.Errorf("cursor = %d, want newest %d", m.Cursor, len(entries)-1)
	}
	if !m.Items[0].HasInput || m.Items[1].HasInput {
		t.Errorf("HasInput = %v, %v; want true, false", m.Items[0].HasInput, m.Items[1].HasInput)
	}

	var model tea.Model = m
	model, _ = model.Update(key("down"))
	if got := model.(PuzzlePickerModel).Cursor; got != len(entries)-1 {
		t.Errorf("cursor moved past end: %d", got)
	}
	model, _ = model.Update(key("g"))
	model, _ = model.Update(key("j"))
	model, _ = model.Update(key("up"))
	if got := model.(PuzzlePickerModel).Cursor; got != 0 {
		t.Errorf("cursor = %d, want 0", got)
	}
	if v := model.View(); !strings.Contains(v, "Sonar Sweep") || !strings.Contains(v, "[1/") {
		t.Errorf("view missing first puzzle:\n%s", v)
	}

	model, cmd := model.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	sel := model.(PuzzlePickerModel).Selected
	if sel == nil || sel.Year != 2021 || sel.Day != 1 {
		t.Fatalf("selected = %+v, want 2021/1", sel)
	}
}

func TestPuzzlePickerQuit(t *testing.T) {
	m := newPuzzlePicker(catalog.Year(2020), t.TempDir())
	model, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if model.(PuzzlePickerModel).Selected != nil {
		t.Error("quit should not select")
	}
}

func TestPuzzlePickerScroll(t *testing.T) {
	m := newPuzzlePicker(catalog.Year(2021), t.TempDir())
	if m.Offset != len(m.Items)-m.Height {
		t.Errorf("offset = %d, want %d", m.Offset, len(m.Items)-m.Height)
	}
	var model tea.Model = m
	model, _ = model.Update(key("g"))
	if got := model.(PuzzlePickerModel).Offset; got != 0 {
		t.Errorf("offset after home = %d, want 0", got)
	}
}
