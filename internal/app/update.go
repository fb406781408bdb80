package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/jnv/internal/evalctx"
	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/spinner"
	"github.com/marcus/jnv/internal/viewer"
)

// queryDebouncedMsg carries a coalesced editor-text change, delivered
// once the query debounce window closes (spec.md §4.9).
type queryDebouncedMsg string

// resizeDebouncedMsg carries a coalesced terminal resize.
type resizeDebouncedMsg evalctx.Area

func waitForQuery(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		q, ok := <-ch
		if !ok {
			return nil
		}
		return queryDebouncedMsg(q)
	}
}

func waitForResize(ch <-chan evalctx.Area) tea.Cmd {
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return resizeDebouncedMsg(a)
	}
}

// Update dispatches incoming events per spec.md §4.10: global shortcuts
// first, then forwarding to the focused component.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeDebounce.Push(evalctx.Area{Width: msg.Width, Height: msg.Height})
		return m, nil

	case queryDebouncedMsg:
		m.evaluator.RenderResult(string(msg))
		return m, waitForQuery(m.queryCh)

	case resizeDebouncedMsg:
		m.evaluator.RenderOnResize(evalctx.Area(msg), m.editor.Text())
		return m, waitForResize(m.resizeCh)

	case spinner.TickMsg:
		if msg.Frame != "" {
			m.renderer.Update(render.Update{Role: render.Processor, Pane: render.Pane{Content: msg.Frame}})
		}
		return m, m.spin.Tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		m.finalText = m.editor.Text()
		return m, tea.Quit
	case tea.KeyCtrlQ:
		m.copyEditor()
		return m, nil
	case tea.KeyCtrlO:
		m.copyViewer()
		return m, nil
	}
	if msg.Type == tea.KeyShiftUp || msg.Type == tea.KeyShiftDown {
		m.toggleFocus()
		return m, nil
	}

	if m.focus == FocusEditor {
		m.dispatchEditor(msg)
	} else {
		m.dispatchViewer(msg)
	}
	return m, nil
}

func (m *Model) copyEditor() {
	if err := clipboard.WriteAll(m.editor.Text()); err != nil {
		m.setHint("copy failed: " + err.Error())
		return
	}
	m.setHint("editor text copied")
}

func (m *Model) copyViewer() {
	if m.evaluator.IsBusy() {
		m.setHint("can't copy during render")
		return
	}
	v := m.evaluator.Viewer()
	if v == nil {
		return
	}
	if err := clipboard.WriteAll(v.ContentToCopy()); err != nil {
		m.setHint("copy failed: " + err.Error())
		return
	}
	m.setHint("viewer content copied")
}

func (m *Model) toggleFocus() {
	if m.evaluator.IsBusy() {
		m.setHint("can't change focus during render")
		return
	}
	if m.focus == FocusEditor {
		m.focus = FocusViewer
		m.editor.Defocus()
	} else {
		m.focus = FocusEditor
		m.editor.Focus()
	}
	m.renderer.Update(render.Update{Role: render.Editor, Pane: m.editorPane()})
}

func (m *Model) dispatchEditor(msg tea.KeyMsg) {
	before := m.editor.Text()
	outcome := m.editor.OnEvent(msg, m.searcher)
	if outcome.Hint != "" {
		m.setHint(outcome.Hint)
	}
	m.renderer.Update(
		render.Update{Role: render.Editor, Pane: m.editorPane()},
		render.Update{Role: render.Search, Pane: m.searcher.Pane()},
	)
	if outcome.TextChanged && m.editor.Text() != before {
		m.queryDebounce.Push(m.editor.Text())
	}
}

func (m *Model) dispatchViewer(msg tea.KeyMsg) {
	v := m.evaluator.Viewer()
	if v == nil {
		return
	}
	ev, ok := viewerEvent(msg)
	if !ok {
		return
	}
	pane := v.OnEvent(m.viewerHeight(), ev)
	m.renderer.Update(render.Update{Role: render.Processor, Pane: pane})
}

func viewerEvent(msg tea.KeyMsg) (viewer.Event, bool) {
	switch msg.String() {
	case "up", "k":
		return viewer.EventUp, true
	case "down", "j":
		return viewer.EventDown, true
	case "g", "home":
		return viewer.EventHead, true
	case "G", "end":
		return viewer.EventTail, true
	case "enter", " ":
		return viewer.EventToggleFold, true
	case "e":
		return viewer.EventExpandAll, true
	case "c":
		return viewer.EventCollapseAll, true
	default:
		return 0, false
	}
}

func (m *Model) setHint(text string) {
	m.renderer.Update(render.Update{Role: render.Guide, Pane: render.Pane{Content: text}})
}

func (m *Model) viewerHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}
