// Package spinner implements the background periodic task of spec.md
// §4.8: a 10-frame Braille spinner advanced on every tick while the
// Evaluation Context's phase is non-Idle, overwriting the Processor pane
// with a single-line styled frame. Grounded on internal/ui's animated
// Skeleton loader (ticked by tea.Tick) referenced from
// internal/plugins/conversations/content_search.go.
package spinner

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Phase reports whether the Evaluator is currently busy (non-idle), read
// by the Spinner on every tick without taking a write lock.
type Phase func() bool // returns true when non-idle

// TickMsg is the tea.Msg a Spinner's ticks are delivered as.
type TickMsg struct{ Frame string }

// Spinner advances a Braille frame once per duration while isBusy
// reports non-idle, and ticks silently (without returning a new frame)
// once the evaluator returns to idle, per spec.md §4.8: "it ticks
// without writing" when phase = Idle.
type Spinner struct {
	duration time.Duration
	isBusy   Phase
	index    int
	style    lipgloss.Style
}

// New returns a Spinner that ticks every duration, consulting isBusy to
// decide whether to advance and emit a frame.
func New(duration time.Duration, isBusy Phase, style lipgloss.Style) *Spinner {
	return &Spinner{duration: duration, isBusy: isBusy, style: style}
}

// Tick returns a tea.Cmd that, after duration, yields a TickMsg carrying
// the next frame if isBusy is true, or a TickMsg with an empty Frame
// (meaning: no Processor pane write should occur) otherwise.
func (s *Spinner) Tick() tea.Cmd {
	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		if !s.isBusy() {
			return TickMsg{}
		}
		frame := frames[s.index%len(frames)]
		s.index++
		return TickMsg{Frame: s.style.Render(frame)}
	})
}
