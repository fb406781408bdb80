// Package evalctx implements the Evaluation Context and Evaluator of
// spec.md §4.6: cancel-before-spawn task replacement driven by a
// per-task context.Context, guarded by a generation-free design where
// the context.CancelFunc itself is the "current_task" handle. Grounded
// on internal/plugins/conversations/content_search_exec.go's
// context.WithTimeout + defer cancel() shape, and on that package's
// DebounceVersion staleness-token idiom (content_search.go) for
// rejecting a task's results once a newer one has superseded it.
package evalctx

import "sync"

// Phase is the Evaluation Context's phase field.
type Phase int

const (
	Idle Phase = iota
	Loading
	Processing
)

// Area is the terminal area passed to viewer rendering.
type Area struct {
	Width, Height int
}

// context holds the Evaluation Context triple (area, phase,
// current_task) behind one lock, per spec.md §3's invariant that at
// most one current_task is live and starting a new one cancels the
// previous first.
type context struct {
	mu     sync.Mutex
	area   Area
	phase  Phase
	cancel func()
}

func (c *context) snapshotArea() Area {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.area
}

func (c *context) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *context) getPhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// cancelAndReplace cancels any live current_task, optionally overwrites
// area, installs newCancel as the new current_task handle, and returns
// the (possibly just-overwritten) area for the new task to capture.
func (c *context) cancelAndReplace(overwriteArea *Area, newCancel func()) Area {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	if overwriteArea != nil {
		c.area = *overwriteArea
	}
	c.cancel = newCancel
	return c.area
}
