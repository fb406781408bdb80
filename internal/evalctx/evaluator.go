package evalctx

import (
	stdcontext "context"
	"sync"

	"github.com/marcus/jnv/internal/cache"
	"github.com/marcus/jnv/internal/document"
	"github.com/marcus/jnv/internal/filterengine"
	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/theme"
	"github.com/marcus/jnv/internal/viewer"
)

// Evaluator owns the Evaluation Context and drives the JSON Viewer
// rebuild described in spec.md §4.6: render_result (query changed) and
// render_on_resize (area changed) share one procedure that cancels any
// in-flight evaluation, spawns a replacement, and — if not itself
// superseded before completion — writes the result to the renderer.
type Evaluator struct {
	ctx      context
	renderer *render.Renderer
	cache    *cache.Trie
	doc      *document.Document
	styles   theme.JSONStyles

	viewerMu sync.Mutex
	viewer   *viewer.Viewer
}

// New returns an Evaluator wired to renderer, cache and doc. cache
// should already be seeded with the identity query ("." → Document),
// per spec.md §3's Filter Cache lifetime.
func New(renderer *render.Renderer, c *cache.Trie, doc *document.Document, styles theme.JSONStyles) *Evaluator {
	return &Evaluator{renderer: renderer, cache: c, doc: doc, styles: styles}
}

// IsBusy reports whether the Evaluation Context's phase is non-Idle;
// wired into the Spinner as its Phase func.
func (e *Evaluator) IsBusy() bool {
	return e.ctx.getPhase() != Idle
}

// Viewer returns the most recently installed viewer, for operations
// (navigation, folding, copy) that bypass the Evaluator — it is not
// itself mutated by query evaluation concurrently with those reads,
// since both sides take viewerMu.
func (e *Evaluator) Viewer() *viewer.Viewer {
	e.viewerMu.Lock()
	defer e.viewerMu.Unlock()
	return e.viewer
}

// InstallInitialViewer sets the viewer built by the View Initializer
// (spec.md §4.7), bypassing query evaluation entirely.
func (e *Evaluator) InstallInitialViewer(v *viewer.Viewer) {
	e.viewerMu.Lock()
	e.viewer = v
	e.viewerMu.Unlock()
}

// RenderResult starts evaluating query over the current area. Any
// in-flight evaluation is cancelled first.
func (e *Evaluator) RenderResult(query string) {
	e.spawn(nil, query)
}

// RenderOnResize starts evaluating query (which may be unchanged) over
// a newly observed area, overwriting the Evaluation Context's stored
// area before the new task captures it.
func (e *Evaluator) RenderOnResize(area Area, query string) {
	e.spawn(&area, query)
}

func (e *Evaluator) spawn(overwriteArea *Area, query string) {
	taskCtx, cancel := stdcontext.WithCancel(stdcontext.Background())
	area := e.ctx.cancelAndReplace(overwriteArea, cancel)
	go e.run(taskCtx, area, query)
}

func (e *Evaluator) run(ctx stdcontext.Context, area Area, query string) {
	e.ctx.setPhase(Processing)
	guide, hasGuide, newViewer, hasResult := e.onQuery(ctx, query)

	select {
	case <-ctx.Done():
		// Cancelled: must not write to the renderer, per spec.md §4.6.
		return
	default:
	}

	var updates []render.Update
	if hasGuide {
		updates = append(updates, render.Update{Role: render.ProcessorGuide, Pane: render.Pane{Content: guide}})
	} else {
		updates = append(updates, render.Update{Role: render.ProcessorGuide, Pane: render.Pane{}})
	}
	if hasResult {
		e.viewerMu.Lock()
		e.viewer = newViewer
		e.viewerMu.Unlock()
		updates = append(updates, render.Update{Role: render.Processor, Pane: newViewer.Pane(area.Height)})
	}
	e.renderer.Update(updates...)
	e.ctx.setPhase(Idle)
}

// onQuery is the exclusive caller of the filter engine (spec.md §4.6):
// it checks the Filter Cache for an exact hit, falls back to
// compiling+evaluating query against the Document, and on failure or a
// degraded (empty / all-null) result additionally consults the cache's
// longest-prefix entry so the viewer keeps showing something useful.
func (e *Evaluator) onQuery(ctx stdcontext.Context, query string) (guide string, hasGuide bool, v *viewer.Viewer, hasResult bool) {
	if hit, ok := e.cache.Exact(query); ok {
		return "from cache", true, viewer.Build(hit.Values, e.styles), true
	}

	compiled, err := filterengine.Compile(query)
	if err != nil {
		return e.fallback(query, "filter failed")
	}

	values, err := filterengine.Eval(ctx, compiled, query, e.doc.Values)
	if err != nil {
		return e.fallback(query, "filter failed")
	}
	if len(values) == 0 {
		return e.fallback(query, "empty result")
	}
	if filterengine.IsAllNull(values) {
		return e.fallback(query, "all-null result")
	}

	e.cache.Insert(query, values)
	return "", false, viewer.Build(values, e.styles), true
}

func (e *Evaluator) fallback(query, guide string) (string, bool, *viewer.Viewer, bool) {
	if hit, ok := e.cache.LongestPrefix(query); ok {
		return guide, true, viewer.Build(hit.Values, e.styles), true
	}
	return guide, true, nil, false
}
