// Package search implements the Incremental Searcher: a background
// chunked loader over the document's path sequence, plus the
// prefix-search/suggestion-window operations the Filter Editor's
// completion keybind drives. Grounded on
// internal/plugins/conversations/content_search_exec.go's
// goroutine-pool-with-context-cancellation shape for the load task, and
// on the non-blocking "sem <- struct{}{} / default:" idiom used
// throughout that file for the transient-busy semantics spec.md §4.3
// requires of start_search.
package search

import (
	"context"
	"errors"
	"iter"
	"sort"
	"strings"
	"sync"

	"github.com/marcus/jnv/internal/render"
)

// ErrTransientBusy is returned by StartSearch when the path set or load
// state could not be locked without blocking.
var ErrTransientBusy = errors.New("search: transiently busy")

// LoadState reports background-load progress.
type LoadState struct {
	LoadedItemCount int
	FullyLoaded     bool
}

// Result is what StartSearch returns: the head of the new suggestion
// window (if any match exists) and a snapshot of load progress taken at
// the same instant.
type Result struct {
	Head      string
	HasHead   bool
	LoadState LoadState
}

// Searcher owns the path set, its load state, and the current
// suggestion window, per spec.md §4.3's component contract.
type Searcher struct {
	chunkSize       int
	resultChunkSize int
	visibleLines    int

	setMu sync.Mutex
	items []string

	loadMu    sync.RWMutex
	loadState LoadState

	winMu  sync.Mutex
	prefix string
	window []string
	cursor int
	tail   []string
}

// New returns a Searcher with empty state. chunkSize paces the
// background load task's set insertions; resultChunkSize paces how many
// items move from the tail buffer into the visible window per page;
// visibleLines is the configured number of on-screen suggestion lines.
func New(chunkSize, resultChunkSize, visibleLines int) *Searcher {
	if chunkSize <= 0 {
		chunkSize = 100
	}
	if resultChunkSize <= 0 {
		resultChunkSize = 100
	}
	if visibleLines <= 0 {
		visibleLines = 10
	}
	return &Searcher{chunkSize: chunkSize, resultChunkSize: resultChunkSize, visibleLines: visibleLines}
}

// Load runs the one-shot background load task described in spec.md
// §4.3: pull paths, accumulate into a local buffer, flush every
// chunkSize items, and mark FullyLoaded once the sequence ends. It
// returns early, leaving FullyLoaded false, if ctx is cancelled first.
func (s *Searcher) Load(ctx context.Context, paths iter.Seq[string]) {
	var buf []string
	for p := range paths {
		select {
		case <-ctx.Done():
			return
		default:
		}
		buf = append(buf, p)
		if len(buf) >= s.chunkSize {
			s.flush(buf)
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		s.flush(buf)
	}
	s.loadMu.Lock()
	s.loadState.FullyLoaded = true
	s.loadMu.Unlock()
}

func (s *Searcher) flush(buf []string) {
	s.setMu.Lock()
	s.items = append(s.items, buf...)
	s.setMu.Unlock()

	s.loadMu.Lock()
	s.loadState.LoadedItemCount += len(buf)
	s.loadMu.Unlock()
}

// StartSearch filters the path set by prefix, takes the first
// resultChunkSize matches into a fresh suggestion window, stashes the
// remainder in the tail buffer, and returns the window's head plus a
// load-state snapshot. Locks are acquired non-blocking per spec.md
// §4.3/§5 ("tried-lock in hot path to avoid UI stalls"); either lock
// being held elsewhere fails fast with ErrTransientBusy rather than
// stalling the editor.
func (s *Searcher) StartSearch(prefix string) (Result, error) {
	if !s.setMu.TryLock() {
		return Result{}, ErrTransientBusy
	}
	defer s.setMu.Unlock()
	if !s.loadMu.TryRLock() {
		return Result{}, ErrTransientBusy
	}
	state := s.loadState
	s.loadMu.RUnlock()

	var matches []string
	for _, it := range s.items {
		if strings.HasPrefix(it, prefix) {
			matches = append(matches, it)
		}
	}
	sort.Strings(matches)

	s.winMu.Lock()
	defer s.winMu.Unlock()
	s.prefix = prefix
	s.cursor = 0
	if len(matches) == 0 {
		s.window = nil
		s.tail = nil
		return Result{LoadState: state}, nil
	}
	take := s.resultChunkSize
	if take > len(matches) {
		take = len(matches)
	}
	s.window = append([]string(nil), matches[:take]...)
	s.tail = append([]string(nil), matches[take:]...)
	return Result{Head: s.window[0], HasHead: true, LoadState: state}, nil
}

// Current returns the item at the window cursor, if any.
func (s *Searcher) Current() (string, bool) {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	if s.cursor < 0 || s.cursor >= len(s.window) {
		return "", false
	}
	return s.window[s.cursor], true
}

// DownWithLoad advances the cursor, pulling up to resultChunkSize items
// from the tail buffer into the window once the distance from cursor to
// the window's end drops below visibleLines, and returns the new
// current item.
func (s *Searcher) DownWithLoad() (string, bool) {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	if len(s.window) == 0 {
		return "", false
	}
	if s.cursor < len(s.window)-1 {
		s.cursor++
	}
	if len(s.window)-1-s.cursor < s.visibleLines && len(s.tail) > 0 {
		take := s.resultChunkSize
		if take > len(s.tail) {
			take = len(s.tail)
		}
		s.window = append(s.window, s.tail[:take]...)
		s.tail = s.tail[take:]
	}
	if s.cursor >= len(s.window) {
		return "", false
	}
	return s.window[s.cursor], true
}

// Up moves the cursor back one and returns the new current item.
func (s *Searcher) Up() (string, bool) {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
	if s.cursor < 0 || s.cursor >= len(s.window) {
		return "", false
	}
	return s.window[s.cursor], true
}

// LeaveSearch empties the window and tail buffer.
func (s *Searcher) LeaveSearch() {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	s.window = nil
	s.tail = nil
	s.cursor = 0
	s.prefix = ""
}

// WindowLen reports the number of items currently visible in the
// suggestion window.
func (s *Searcher) WindowLen() int {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	return len(s.window)
}

// Pane renders the Suggestion Window's visibleLines rows around the
// cursor, the content the Filter Editor's completion keybind drives
// into render.Search per spec.md §4.3/§4.1. An empty window (no active
// search, or no matches) renders as an empty pane.
func (s *Searcher) Pane() render.Pane {
	s.winMu.Lock()
	defer s.winMu.Unlock()
	if len(s.window) == 0 {
		return render.Pane{}
	}
	start := 0
	if s.cursor >= s.visibleLines {
		start = s.cursor - s.visibleLines + 1
	}
	end := start + s.visibleLines
	if end > len(s.window) {
		end = len(s.window)
	}
	var lines []string
	for i := start; i < end; i++ {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		lines = append(lines, marker+s.window[i])
	}
	return render.Pane{Content: strings.Join(lines, "\n")}
}
