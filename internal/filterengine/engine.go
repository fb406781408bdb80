// Package filterengine wraps github.com/itchyny/gojq, a real jq
// implementation in Go, behind the two primitives spec.md §1 treats as
// external collaborators: parse and evaluate. Grounded via
// other_examples/manifests/alzaem2002-ctrl-cli/go.mod, which names
// itchyny/gojq as a direct dependency of a real CLI tool.
package filterengine

import (
	"context"
	"fmt"

	"github.com/itchyny/gojq"
)

// ErrFilter wraps any parse or evaluation failure from the underlying
// engine so callers can distinguish it from other error classes without
// depending on gojq's concrete error types.
type ErrFilter struct {
	Query string
	Err   error
}

func (e *ErrFilter) Error() string {
	return fmt.Sprintf("filter %q: %v", e.Query, e.Err)
}

func (e *ErrFilter) Unwrap() error { return e.Err }

// Compiled is a parsed, ready-to-run filter program.
type Compiled struct {
	code *gojq.Code
}

// Compile parses and compiles a filter query. Both parse and compile
// failures are reported uniformly as *ErrFilter, matching spec.md §4.4's
// "on engine error" branch which does not distinguish parse-time from
// compile-time failure.
func Compile(query string) (*Compiled, error) {
	q, err := gojq.Parse(query)
	if err != nil {
		return nil, &ErrFilter{Query: query, Err: err}
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, &ErrFilter{Query: query, Err: err}
	}
	return &Compiled{code: code}, nil
}

// Eval runs the compiled filter over every value in inputs, in order,
// concatenating each value's result sequence. Evaluation is strictly
// sequential (spec.md §1 Non-goals: no parallel sharding) and checks ctx
// between input values so a cancelled evaluation can stop promptly
// without waiting for the whole document, mirroring the per-item
// ctx.Done() check in the teacher's content_search_exec.go session loop.
func Eval(ctx context.Context, c *Compiled, query string, inputs []any) ([]any, error) {
	var out []any
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iter := c.code.RunWithContext(ctx, in)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				if haltErr, ok := err.(*gojq.HaltError); ok && haltErr.Value() == nil {
					return out, nil
				}
				return nil, &ErrFilter{Query: query, Err: err}
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// IsAllNull reports whether result is non-empty and every element is
// JSON null. An empty result is deliberately NOT all-null (spec.md §9
// Open Questions: the two are distinct warning conditions).
func IsAllNull(result []any) bool {
	if len(result) == 0 {
		return false
	}
	for _, v := range result {
		if v != nil {
			return false
		}
	}
	return true
}
