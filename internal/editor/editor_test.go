package editor

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jnv/internal/config"
	"github.com/marcus/jnv/internal/keymap"
	"github.com/marcus/jnv/internal/search"
)

func newTestEditor() *Editor {
	cfg := config.Default()
	km := keymap.New(cfg.Keybinds)
	return New(cfg.Editor, km)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInsertPrintableAppendsToBuffer(t *testing.T) {
	e := newTestEditor()
	e.OnEvent(runes("."), nil)
	e.OnEvent(runes("a"), nil)
	if got := e.Text(); got != ".a" {
		t.Errorf("Text() = %q, want %q", got, ".a")
	}
}

func TestEraseDeletesGraphemeBeforeCursor(t *testing.T) {
	e := newTestEditor()
	e.OnEvent(runes("ab"), nil)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyBackspace}, nil)
	if got := e.Text(); got != "a" {
		t.Errorf("Text() = %q, want %q", got, "a")
	}
}

func TestEraseAllClearsBuffer(t *testing.T) {
	e := newTestEditor()
	e.OnEvent(runes("abc"), nil)
	out := e.OnEvent(tea.KeyMsg{Type: tea.KeyCtrlU}, nil)
	if !out.TextChanged {
		t.Error("expected TextChanged")
	}
	if got := e.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

func TestCompletionWithHeadEntersBrowsingSuggestions(t *testing.T) {
	e := newTestEditor()
	s := search.New(10, 10, 10)
	s.Load(context.Background(), func(yield func(string) bool) {
		yield(".a")
		yield(".abc")
	})
	e.OnEvent(runes("."), s)
	out := e.OnEvent(tea.KeyMsg{Type: tea.KeyTab}, s)
	if !out.TextChanged {
		t.Fatal("expected buffer to change to the completion head")
	}
	if e.Mode() != BrowsingSuggestions {
		t.Errorf("Mode() = %v, want BrowsingSuggestions", e.Mode())
	}
}

func TestCompletionWithNoMatchStaysInEditing(t *testing.T) {
	e := newTestEditor()
	s := search.New(10, 10, 10)
	s.Load(context.Background(), func(yield func(string) bool) { yield(".a") })
	e.OnEvent(runes(".z"), s)
	out := e.OnEvent(tea.KeyMsg{Type: tea.KeyTab}, s)
	if out.Hint == "" {
		t.Error("expected a no-match hint")
	}
	if e.Mode() != Editing {
		t.Errorf("Mode() = %v, want Editing", e.Mode())
	}
}

func TestNonNavigationEventInBrowsingSuggestionsRedispatches(t *testing.T) {
	e := newTestEditor()
	s := search.New(10, 10, 10)
	s.Load(context.Background(), func(yield func(string) bool) { yield(".abc") })
	e.OnEvent(runes("."), s)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyTab}, s)
	if e.Mode() != BrowsingSuggestions {
		t.Fatal("expected BrowsingSuggestions before redispatch test")
	}
	e.OnEvent(runes("x"), s)
	if e.Mode() != Editing {
		t.Errorf("expected printable key to pop BrowsingSuggestions, got mode %v", e.Mode())
	}
	if got := e.Text(); got[len(got)-1] != 'x' {
		t.Errorf("expected redispatched key to insert, got %q", got)
	}
}

func TestDefocusExitsBrowsingSuggestions(t *testing.T) {
	e := newTestEditor()
	s := search.New(10, 10, 10)
	s.Load(context.Background(), func(yield func(string) bool) { yield(".abc") })
	e.OnEvent(runes("."), s)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyTab}, s)
	e.Defocus()
	if e.Mode() != Editing {
		t.Errorf("Mode() = %v, want Editing after Defocus", e.Mode())
	}
}

func TestMoveToHeadAndTail(t *testing.T) {
	e := newTestEditor()
	e.OnEvent(runes("abc"), nil)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyHome}, nil)
	if e.cursor != 0 {
		t.Errorf("cursor = %d, want 0", e.cursor)
	}
	e.OnEvent(tea.KeyMsg{Type: tea.KeyEnd}, nil)
	if e.cursor != 3 {
		t.Errorf("cursor = %d, want 3", e.cursor)
	}
}

func TestWordWiseBoundaryMotion(t *testing.T) {
	e := newTestEditor()
	e.OnEvent(runes("foo.bar"), nil)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyHome}, nil)
	e.OnEvent(tea.KeyMsg{Type: tea.KeyRight, Alt: true}, nil)
	if e.cursor == 0 || e.cursor == len(e.graphemes) {
		t.Errorf("expected word-boundary motion to land mid-buffer, cursor=%d", e.cursor)
	}
}
