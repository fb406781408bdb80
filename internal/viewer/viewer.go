package viewer

import (
	"strings"
	"sync"

	"github.com/marcus/jnv/internal/render"
	"github.com/marcus/jnv/internal/theme"
)

// Event is one of the recognized viewer events spec.md §4.4 names.
// Anything else is ignored by OnEvent, leaving the pane unchanged.
type Event int

const (
	EventUp Event = iota
	EventDown
	EventHead
	EventTail
	EventToggleFold
	EventExpandAll
	EventCollapseAll
)

// Viewer is the foldable JSON tree view over one Filter Result. Its
// internals (flattened node list, cursor) are opaque beyond the
// contract spec.md §4.4 specifies: construction from a result, pane
// rendering, event dispatch, and content-to-copy.
type Viewer struct {
	mu     sync.Mutex
	nodes  []*node
	roots  []int
	cursor int
	styles theme.JSONStyles
}

// Build constructs a Viewer from a Filter Result (the ordered sequence
// of top-level values produced by a query) plus the resolved JSON theme.
// All containers start expanded.
func Build(values []any, styles theme.JSONStyles) *Viewer {
	v := &Viewer{styles: styles}
	for i, val := range values {
		root := v.build(val, -1, 0, "", i == len(values)-1)
		v.roots = append(v.roots, root)
	}
	return v
}

// visibleRows returns the node ids currently visible, in display order,
// respecting each ancestor's collapsed state. Container nodes emit an
// opening row and (if expanded) a closing row around their children.
type row struct {
	id    int
	open  bool // true for a container's opening row, false for closing
	close bool
}

func (v *Viewer) visibleRows() []row {
	var rows []row
	var walk func(id int)
	walk = func(id int) {
		n := v.nodes[id]
		rows = append(rows, row{id: id, open: true})
		if n.kind != KindObject && n.kind != KindArray {
			return
		}
		if n.collapsed {
			return
		}
		for _, c := range n.children {
			walk(c)
		}
		rows = append(rows, row{id: id, close: true})
	}
	for _, r := range v.roots {
		walk(r)
	}
	return rows
}

// Up moves the cursor back one visible row.
func (v *Viewer) Up() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cursor > 0 {
		v.cursor--
	}
	return v.renderLocked(defaultHeight)
}

// Down moves the cursor forward one visible row.
func (v *Viewer) Down() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.visibleRows()
	if v.cursor < len(rows)-1 {
		v.cursor++
	}
	return v.renderLocked(defaultHeight)
}

// Head moves the cursor to the first visible row.
func (v *Viewer) Head() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cursor = 0
	return v.renderLocked(defaultHeight)
}

// Tail moves the cursor to the last visible row.
func (v *Viewer) Tail() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.visibleRows()
	if len(rows) > 0 {
		v.cursor = len(rows) - 1
	}
	return v.renderLocked(defaultHeight)
}

// ToggleFold toggles the collapsed state of the container node at the
// cursor, a no-op for scalar nodes.
func (v *Viewer) ToggleFold() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.visibleRows()
	if v.cursor >= 0 && v.cursor < len(rows) {
		n := v.nodes[rows[v.cursor].id]
		if n.kind == KindObject || n.kind == KindArray {
			n.collapsed = !n.collapsed
		}
	}
	v.clampCursorLocked()
	return v.renderLocked(defaultHeight)
}

// ExpandAll clears every container's collapsed flag.
func (v *Viewer) ExpandAll() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, n := range v.nodes {
		n.collapsed = false
	}
	return v.renderLocked(defaultHeight)
}

// CollapseAll sets every container's collapsed flag, collapsing to the
// root rows only.
func (v *Viewer) CollapseAll() render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, n := range v.nodes {
		if n.kind == KindObject || n.kind == KindArray {
			n.collapsed = true
		}
	}
	v.clampCursorLocked()
	return v.renderLocked(defaultHeight)
}

// OnEvent dispatches a recognized viewer event; events this package does
// not recognize are ignored, returning the pane unchanged, per spec.md
// §4.4.
func (v *Viewer) OnEvent(area int, ev Event) render.Pane {
	switch ev {
	case EventUp:
		return v.Up()
	case EventDown:
		return v.Down()
	case EventHead:
		return v.Head()
	case EventTail:
		return v.Tail()
	case EventToggleFold:
		return v.ToggleFold()
	case EventExpandAll:
		return v.ExpandAll()
	case EventCollapseAll:
		return v.CollapseAll()
	default:
		v.mu.Lock()
		defer v.mu.Unlock()
		return v.renderLocked(area)
	}
}

func (v *Viewer) clampCursorLocked() {
	rows := v.visibleRows()
	if v.cursor >= len(rows) {
		v.cursor = len(rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

const defaultHeight = 40

// Pane renders the current viewer state within a height-row window. The
// window starts at the first row and, once the cursor moves past it,
// scrolls so that the cursor row is the window's last row.
func (v *Viewer) Pane(area int) render.Pane {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderLocked(area)
}

func (v *Viewer) renderLocked(height int) render.Pane {
	if height <= 0 {
		height = defaultHeight
	}
	rows := v.visibleRows()
	if len(rows) == 0 {
		return render.Pane{}
	}
	start := 0
	if v.cursor >= height {
		start = v.cursor - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	var lines []string
	for i := start; i < end; i++ {
		text := v.rowText(rows[i])
		styled := renderTokens(text, v.styles)
		indent := strings.Repeat(" ", v.nodes[rows[i].id].depth*max(v.styles.Indent, 1))
		if rows[i].close {
			indent = strings.Repeat(" ", v.nodes[rows[i].id].depth*max(v.styles.Indent, 1))
		}
		line := indent + styled
		if i == v.cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return render.Pane{Content: strings.Join(lines, "\n")}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ContentToCopy returns the current visible content as canonical JSON
// text (without cursor/indent decoration), for the "viewer copy"
// clipboard action.
func (v *Viewer) ContentToCopy() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.visibleRows()
	var lines []string
	for _, r := range rows {
		lines = append(lines, v.rowText(r))
	}
	return strings.Join(lines, "\n")
}

// rowText renders one row's canonical JSON text fragment (sans
// indentation/cursor), e.g. `"name": "Alice",`, `{`, `}`, or `42,`.
func (v *Viewer) rowText(r row) string {
	n := v.nodes[r.id]
	comma := ""
	if !n.last {
		comma = ","
	}
	if r.close {
		closer := "}"
		if n.kind == KindArray {
			closer = "]"
		}
		return closer + comma
	}
	prefix := ""
	if n.label != "" {
		prefix = scalarText(n.label) + ": "
	}
	switch n.kind {
	case KindObject:
		if n.collapsed {
			return prefix + "{...}" + comma
		}
		return prefix + "{"
	case KindArray:
		if n.collapsed {
			return prefix + "[...]" + comma
		}
		return prefix + "["
	default:
		return prefix + scalarText(n.scalar) + comma
	}
}
