// Package app implements the Focus Router: the main event loop of
// spec.md §4.10, kept as one bubbletea Model/Update/View triad the way
// the teacher structures its whole dashboard, generalized from a
// multi-plugin tab/modal application down to the two focus targets
// spec.md names (Editor, Viewer).
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jnv/internal/config"
	"github.com/marcus/jnv/internal/debounce"
	"github.com/marcus/jnv/internal/editor"
	"github.com/marcus/jnv/internal/evalctx"
	"github.com/marcus/jnv/internal/keymap"
	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/search"
	"github.com/marcus/jnv/internal/spinner"
	"github.com/marcus/jnv/internal/theme"
)

// Focus names which component currently receives forwarded key events,
// per spec.md §3's Focus enum.
type Focus int

const (
	FocusEditor Focus = iota
	FocusViewer
)

// Model is the Focus Router's bubbletea model.
type Model struct {
	cfg *config.Config

	renderer  *render.Renderer
	evaluator *evalctx.Evaluator
	editor    *editor.Editor
	searcher  *search.Searcher

	editorStylesFocused   theme.EditorStyles
	editorStylesDefocused theme.EditorStyles

	queryDebounce  *debounce.Debouncer[string]
	resizeDebounce *debounce.Debouncer[evalctx.Area]
	queryCh        chan string
	resizeCh       chan evalctx.Area

	spin *spinner.Spinner

	focus  Focus
	width  int
	height int

	finalText string
	quitting  bool
}

// New builds the Focus Router's initial Model. The caller is expected to
// have already run the View Initializer (evaluator.Initialize) before
// starting the bubbletea program, per spec.md §4.11's startup ordering.
func New(cfg *config.Config, renderer *render.Renderer, ev *evalctx.Evaluator, ed *editor.Editor, se *search.Searcher, km *keymap.Keymap) *Model {
	queryCh := make(chan string, 1)
	resizeCh := make(chan evalctx.Area, 1)

	m := &Model{
		cfg:                   cfg,
		renderer:              renderer,
		evaluator:             ev,
		editor:                ed,
		searcher:              se,
		editorStylesFocused:   theme.ResolveEditor(cfg.Editor.ThemeOnFocus),
		editorStylesDefocused: theme.ResolveEditor(cfg.Editor.ThemeOnDefocus),
		queryCh:               queryCh,
		resizeCh:              resizeCh,
		queryDebounce:         debounce.New(time.Duration(cfg.QueryDebounceDuration), queryCh),
		resizeDebounce:        debounce.New(time.Duration(cfg.ResizeDebounceDuration), resizeCh),
		focus:                 FocusEditor,
	}
	m.spin = spinner.New(time.Duration(cfg.SpinDuration), m.evaluator.IsBusy, theme.Resolve(cfg.Completion.Cursor))
	return m
}

// Init starts the spinner ticker and the two debounced-channel readers.
func (m *Model) Init() tea.Cmd {
	m.renderer.Update(
		render.Update{Role: render.Editor, Pane: m.editorPane()},
		render.Update{Role: render.Search, Pane: m.searcher.Pane()},
	)
	return tea.Batch(m.spin.Tick(), waitForQuery(m.queryCh), waitForResize(m.resizeCh))
}

// FinalText returns the editor's text at the moment of clean shutdown,
// the string spec.md §6 requires main to print exactly once on exit.
func (m *Model) FinalText() string { return m.finalText }
