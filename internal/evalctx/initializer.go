package evalctx

import (
	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/viewer"
)

// Initialize is the View Initializer of spec.md §4.7: a single startup
// call that cancels any previous current_task (none exists yet in
// practice, but the contract is uniform), sets phase = Loading, builds
// the initial viewer directly from the Document (the identity query),
// writes its initial pane to Processor, and returns phase to Idle.
func (e *Evaluator) Initialize(area Area) {
	e.ctx.cancelAndReplace(&area, nil)
	e.ctx.setPhase(Loading)

	v := viewer.Build(e.doc.Values, e.styles)
	e.InstallInitialViewer(v)
	e.renderer.Update(render.Update{Role: render.Processor, Pane: v.Pane(area.Height)})
	e.ctx.setPhase(Idle)
}
