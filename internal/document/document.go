// Package document owns the Input Document: an ordered sequence of JSON
// values parsed once from the input bytes and held immutably for the
// lifetime of the session (spec.md §3). Parsing is delegated to
// github.com/goccy/go-json, a drop-in encoding/json-compatible decoder
// grounded on its use as a direct dependency of the gravwell-gravwell
// example repo.
package document

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// Document is the immutable sequence of top-level JSON values parsed from
// the input. A single-value input (the common case: one JSON object or
// array) yields a one-element Document.
type Document struct {
	Values []any
	// Truncated is true if the input contained more than MaxStreams
	// top-level values and the remainder was discarded.
	Truncated bool
}

// Load decodes a stream of concatenated JSON values (NDJSON or simple
// back-to-back values) from r, capped at maxStreams top-level values. A
// maxStreams <= 0 means unbounded.
func Load(r io.Reader, maxStreams int) (*Document, error) {
	dec := gojson.NewDecoder(r)
	doc := &Document{}
	for {
		if maxStreams > 0 && len(doc.Values) >= maxStreams {
			// Peek for at least one more token to know if we truncated.
			var discard any
			if err := dec.Decode(&discard); err == nil {
				doc.Truncated = true
			}
			break
		}
		var v any
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		doc.Values = append(doc.Values, v)
	}
	return doc, nil
}
