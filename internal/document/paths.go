package document

import (
	"fmt"
	"iter"
	"sort"
)

// Paths returns the lazy sequence of jq-style paths reachable in the
// document, deduplicated across all top-level values. The sequence is the
// external "path enumerator" primitive spec.md §4.3 asks the Incremental
// Searcher's load task to consume; the caller controls how much of it to
// pull by returning false from the iter.Seq yield function (the Go
// standard library's cooperative-generator idiom, used here in place of
// the original's Rust async stream).
func Paths(doc *Document) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		emit := func(p string) bool {
			if _, ok := seen[p]; ok {
				return true
			}
			seen[p] = struct{}{}
			return yield(p)
		}
		if !emit(".") {
			return
		}
		for _, v := range doc.Values {
			if !walk(v, ".", emit) {
				return
			}
		}
	}
}

// walk recursively visits v's descendants reached from parent (already a
// full jq-style path), emitting one path per object key and array index.
// Returns false to stop early once emit has returned false.
func walk(v any, parent string, emit func(string) bool) bool {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := childKeyPath(parent, k)
			if !emit(p) {
				return false
			}
			if !walk(t[k], p, emit) {
				return false
			}
		}
	case []any:
		for i, item := range t {
			p := childIndexPath(parent, i)
			if !emit(p) {
				return false
			}
			if !walk(item, p, emit) {
				return false
			}
		}
	}
	return true
}

// childKeyPath renders the path reached from parent by an object key
// access, special-casing the root so ".a" is produced instead of "..a".
// A key that isn't a bare identifier is rendered quoted-dot style
// (.\"key\") rather than bracketed, matching jnv.rs's JsonPathSegment::Key
// formatting.
func childKeyPath(parent, key string) string {
	var seg string
	if isBareIdent(key) {
		seg = "." + key
	} else {
		seg = fmt.Sprintf(".%q", key)
	}
	if parent == "." {
		return seg
	}
	return parent + seg
}

// childIndexPath renders the path reached from parent by an array index
// access. Bracket indexing never needs the root special-case since it
// does not insert a "." separator.
func childIndexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func isBareIdent(k string) bool {
	if k == "" {
		return false
	}
	for i, r := range k {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
