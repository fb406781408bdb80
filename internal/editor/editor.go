// Package editor implements the Filter Editor: a grapheme-aware text
// buffer with word-wise motion/erase, a two-submode state machine
// (Editing / BrowsingSuggestions), and a keybind dispatch table. Grounded
// on the teacher's internal/palette text-input-plus-filtered-list idiom
// (a mode entered by a keystroke, exited by any non-navigation key) and
// internal/modal's focus-index cycling for the "pop mode and redispatch"
// rule.
package editor

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/marcus/jnv/internal/config"
	"github.com/marcus/jnv/internal/keymap"
	"github.com/marcus/jnv/internal/search"
	"github.com/marcus/jnv/internal/theme"
)

// Mode is the editor's sub-state, per spec.md §4.5.
type Mode int

const (
	Editing Mode = iota
	BrowsingSuggestions
)

// Outcome reports the effect of dispatching one event: whether the
// buffer text changed (so the caller can forward it to the query
// debouncer) and an optional transient hint to show the user.
type Outcome struct {
	TextChanged bool
	Hint        string
}

// Editor is the Filter Editor's state.
type Editor struct {
	mu sync.Mutex

	graphemes []string
	cursor    int // index into graphemes, in [0, len(graphemes)]

	editMode config.EditMode
	wordBreak map[rune]struct{}

	focused          bool
	themeFocused     theme.EditorStyles
	themeDefocused   theme.EditorStyles

	mode Mode
	km   *keymap.Keymap
}

// New returns an Editor with an empty buffer, focused by default.
func New(cfg config.EditorConfig, km *keymap.Keymap) *Editor {
	wb := make(map[rune]struct{}, len(cfg.WordBreakChars))
	for _, r := range cfg.WordBreakChars {
		wb[r] = struct{}{}
	}
	return &Editor{
		editMode:       cfg.Mode,
		wordBreak:      wb,
		focused:        true,
		themeFocused:   theme.ResolveEditor(cfg.ThemeOnFocus),
		themeDefocused: theme.ResolveEditor(cfg.ThemeOnDefocus),
		km:             km,
	}
}

func splitGraphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Text returns the current buffer content without any cursor glyph.
func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.Join(e.graphemes, "")
}

// Focus swaps in the focused theme.
func (e *Editor) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = true
}

// Defocus swaps in the defocused theme and exits BrowsingSuggestions.
func (e *Editor) Defocus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = false
	e.mode = Editing
}

// Mode reports the current sub-state.
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *Editor) setBuffer(s string) {
	e.graphemes = splitGraphemes(s)
	e.cursor = len(e.graphemes)
}

// OnEvent dispatches msg through the keybind table for the current
// sub-state, per spec.md §4.5.
func (e *Editor) OnEvent(msg tea.KeyMsg, searcher *search.Searcher) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == BrowsingSuggestions {
		return e.dispatchBrowsing(msg, searcher)
	}
	return e.dispatchEditing(msg, searcher)
}

func (e *Editor) dispatchEditing(msg tea.KeyMsg, searcher *search.Searcher) Outcome {
	bind, ok := e.km.Match(msg)
	if !ok {
		if keymap.IsPrintable(msg) {
			return e.insertPrintable(msg)
		}
		return Outcome{}
	}
	switch bind {
	case keymap.Completion:
		return e.startCompletion(searcher)
	case keymap.Backward:
		if e.cursor > 0 {
			e.cursor--
		}
		return Outcome{}
	case keymap.Forward:
		if e.cursor < len(e.graphemes) {
			e.cursor++
		}
		return Outcome{}
	case keymap.MoveToHead:
		e.cursor = 0
		return Outcome{}
	case keymap.MoveToTail:
		e.cursor = len(e.graphemes)
		return Outcome{}
	case keymap.MoveToPreviousNearest:
		e.cursor = e.prevBoundary(e.cursor)
		return Outcome{}
	case keymap.MoveToNextNearest:
		e.cursor = e.nextBoundary(e.cursor)
		return Outcome{}
	case keymap.Erase:
		if e.cursor > 0 {
			e.graphemes = append(e.graphemes[:e.cursor-1], e.graphemes[e.cursor:]...)
			e.cursor--
			return Outcome{TextChanged: true}
		}
		return Outcome{}
	case keymap.EraseAll:
		changed := len(e.graphemes) > 0
		e.graphemes = nil
		e.cursor = 0
		return Outcome{TextChanged: changed}
	case keymap.EraseToPreviousNearest:
		b := e.prevBoundary(e.cursor)
		if b < e.cursor {
			e.graphemes = append(e.graphemes[:b], e.graphemes[e.cursor:]...)
			e.cursor = b
			return Outcome{TextChanged: true}
		}
		return Outcome{}
	case keymap.EraseToNextNearest:
		b := e.nextBoundary(e.cursor)
		if b > e.cursor {
			e.graphemes = append(e.graphemes[:e.cursor], e.graphemes[b:]...)
			return Outcome{TextChanged: true}
		}
		return Outcome{}
	default:
		return Outcome{}
	}
}

func (e *Editor) dispatchBrowsing(msg tea.KeyMsg, searcher *search.Searcher) Outcome {
	bind, ok := e.km.Match(msg)
	if ok {
		switch bind {
		case keymap.SearchDown, keymap.Completion:
			if item, has := searcher.DownWithLoad(); has {
				e.setBuffer(item)
				return Outcome{TextChanged: true}
			}
			return Outcome{}
		case keymap.SearchUp:
			if item, has := searcher.Up(); has {
				e.setBuffer(item)
				return Outcome{TextChanged: true}
			}
			return Outcome{}
		}
	}
	searcher.LeaveSearch()
	e.mode = Editing
	return e.dispatchEditing(msg, searcher)
}

func (e *Editor) startCompletion(searcher *search.Searcher) Outcome {
	res, err := searcher.StartSearch(strings.Join(e.graphemes, ""))
	if err != nil {
		return Outcome{Hint: "search busy, try again"}
	}
	if !res.HasHead {
		return Outcome{Hint: "no matching path"}
	}
	e.setBuffer(res.Head)
	e.mode = BrowsingSuggestions
	return Outcome{TextChanged: true}
}

func (e *Editor) insertPrintable(msg tea.KeyMsg) Outcome {
	for _, r := range msg.Runes {
		g := string(r)
		if e.editMode == config.EditModeOverwrite && e.cursor < len(e.graphemes) {
			e.graphemes[e.cursor] = g
			e.cursor++
			continue
		}
		e.graphemes = append(e.graphemes[:e.cursor], append([]string{g}, e.graphemes[e.cursor:]...)...)
		e.cursor++
	}
	return Outcome{TextChanged: len(msg.Runes) > 0}
}

func (e *Editor) prevBoundary(from int) int {
	i := from
	for i > 0 && e.isBreakAt(i-1) {
		i--
	}
	for i > 0 && !e.isBreakAt(i-1) {
		i--
	}
	return i
}

func (e *Editor) nextBoundary(from int) int {
	i := from
	n := len(e.graphemes)
	for i < n && e.isBreakAt(i) {
		i++
	}
	for i < n && !e.isBreakAt(i) {
		i++
	}
	return i
}

func (e *Editor) isBreakAt(i int) bool {
	if i < 0 || i >= len(e.graphemes) {
		return false
	}
	g := e.graphemes[i]
	if len([]rune(g)) != 1 {
		return false
	}
	_, ok := e.wordBreak[[]rune(g)[0]]
	return ok
}
