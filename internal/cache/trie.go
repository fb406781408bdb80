// Package cache implements the Filter Trie Cache: a store of filter query
// strings to their already-evaluated result sets, keyed so that a new
// query that fails or yields a degraded result can fall back to showing
// the result of its longest previously-evaluated prefix (spec.md §4.2).
// Grounded on
// original_source/src/trie.rs, which builds the same structure in Rust
// over radix_trie::Trie<String, Vec<Value>>; Go's standard library has no
// radix trie, so a byte-keyed trie is hand-rolled here in its place, the
// way the teacher repo hand-rolls small data structures it needs (see
// internal/plugins/conversations/content_search.go's own index building)
// rather than reaching for a third-party trie package the corpus never
// uses.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Entry is one cached evaluation: the full result set produced by running
// a query against its input, plus the query string that produced it.
type Entry struct {
	Query  string
	Values []any
}

type node struct {
	children map[byte]*node
	entry    *Entry
}

func newNode() *node { return &node{children: make(map[byte]*node)} }

// Trie is a query-string keyed cache with two lookup modes: an O(1)
// exact match accelerated by an xxhash-keyed side index (putting the
// teacher's otherwise-unwired cespare/xxhash/v2 dependency to work), and
// a longest-ancestor-prefix search that walks the byte trie, mirroring
// radix_trie's get_ancestor used by the original implementation.
type Trie struct {
	mu      sync.RWMutex
	root    *node
	exact   map[uint64]*Entry
	entries int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode(), exact: make(map[uint64]*Entry)}
}

func hashKey(query string) uint64 {
	return xxhash.Sum64String(query)
}

// Insert records the result of evaluating query, overwriting any prior
// entry for the same query string.
func (t *Trie) Insert(query string, values []any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e := &Entry{Query: query, Values: values}
	n := t.root
	for i := 0; i < len(query); i++ {
		b := query[i]
		child, ok := n.children[b]
		if !ok {
			child = newNode()
			n.children[b] = child
		}
		n = child
	}
	if n.entry == nil {
		t.entries++
	}
	n.entry = e
	t.exact[hashKey(query)] = e
}

// Exact returns the cached entry for query if query itself was
// previously inserted. The hash-keyed index is a 64-bit hash, not a
// collision-proof one, so a hit is only trusted once the stored entry's
// own query string is confirmed to equal query.
func (t *Trie) Exact(query string) (*Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.exact[hashKey(query)]
	if !ok || e.Query != query {
		return nil, false
	}
	return e, true
}

// LongestPrefix returns the entry whose query string is the longest
// prefix of query present in the trie, walking byte by byte and
// remembering the deepest node seen so far that carries a value — the
// same "deepest ancestor with a value" semantics as radix_trie's
// get_ancestor.
func (t *Trie) LongestPrefix(query string) (*Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.root
	var best *Entry
	for i := 0; i < len(query); i++ {
		child, ok := n.children[query[i]]
		if !ok {
			break
		}
		n = child
		if n.entry != nil {
			best = n.entry
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Len reports the number of distinct queries currently cached.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries
}
