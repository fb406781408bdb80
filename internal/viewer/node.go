// Package viewer implements the foldable JSON tree viewer described in
// spec.md §4.4: a navigable, foldable view over a Filter Result, with
// per-node-kind styling. Folding/cursor/row-visibility state is grounded
// on the teacher's internal/modal/list.go (scroll-adjusted cursor over a
// flattened row list) and internal/ui/overlay.go's viewport windowing.
package viewer

import (
	"fmt"
	"sort"
)

// Kind classifies a tree node by its JSON shape.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// node is one entry in the flattened tree, identified by its index in
// Viewer.nodes (stable for the lifetime of one Build).
type node struct {
	id       int
	parent   int
	depth    int
	label    string // object key, rendered as `"key": `; empty for array items and roots
	kind     Kind
	scalar   any
	children []int
	collapsed bool
	last     bool // true if this is the last child of its parent (no trailing comma)
}

func kindOf(v any) Kind {
	switch v.(type) {
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	case string:
		return KindString
	case float64, int, int64:
		return KindNumber
	case bool:
		return KindBool
	case nil:
		return KindNull
	default:
		return KindString
	}
}

// build appends v (and its descendants) as nodes rooted under parent,
// labeled label, returning the new node's id.
func (v *Viewer) build(value any, parent, depth int, label string, last bool) int {
	n := &node{parent: parent, depth: depth, label: label, kind: kindOf(value), scalar: value, last: last}
	id := len(v.nodes)
	n.id = id
	v.nodes = append(v.nodes, n)

	switch t := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			child := v.build(t[k], id, depth+1, k, i == len(keys)-1)
			n.children = append(n.children, child)
		}
	case []any:
		for i, item := range t {
			child := v.build(item, id, depth+1, "", i == len(t)-1)
			n.children = append(n.children, child)
		}
	}
	return id
}

// scalarText renders a scalar node's value as canonical JSON text.
func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return formatFloat(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
