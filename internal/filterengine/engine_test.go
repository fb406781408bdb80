package filterengine

import (
	"context"
	"testing"
)

func TestCompileAndEvalIdentity(t *testing.T) {
	c, err := Compile(".")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := Eval(context.Background(), c, ".", []any{map[string]any{"a": float64(1)}})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
}

func TestCompileAndEvalFieldAccess(t *testing.T) {
	c, err := Compile(".a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := Eval(context.Background(), c, ".a", []any{map[string]any{"a": float64(42)}})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(got) != 1 || got[0] != float64(42) {
		t.Fatalf("got %v, want [42]", got)
	}
}

func TestCompileInvalidQueryReturnsErrFilter(t *testing.T) {
	_, err := Compile(".[")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var ferr *ErrFilter
	if !isErrFilter(err, &ferr) {
		t.Fatalf("expected *ErrFilter, got %T: %v", err, err)
	}
}

func TestEvalRuntimeErrorReturnsErrFilter(t *testing.T) {
	c, err := Compile(".a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	_, err = Eval(context.Background(), c, ".a", []any{"not an object"})
	if err == nil {
		t.Fatal("expected runtime error indexing a string")
	}
	var ferr *ErrFilter
	if !isErrFilter(err, &ferr) {
		t.Fatalf("expected *ErrFilter, got %T: %v", err, err)
	}
}

func TestEvalAcrossMultipleInputsConcatenatesResults(t *testing.T) {
	c, err := Compile(".a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := Eval(context.Background(), c, ".a", []any{
		map[string]any{"a": float64(1)},
		map[string]any{"a": float64(2)},
	})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(got) != 2 || got[0] != float64(1) || got[1] != float64(2) {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestEvalRespectsCancelledContext(t *testing.T) {
	c, err := Compile(".")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Eval(ctx, c, ".", []any{1, 2, 3})
	if err == nil {
		t.Fatal("expected context.Canceled error")
	}
}

func TestIsAllNull(t *testing.T) {
	if IsAllNull(nil) {
		t.Error("empty result must not be all-null")
	}
	if IsAllNull([]any{}) {
		t.Error("empty result must not be all-null")
	}
	if !IsAllNull([]any{nil, nil}) {
		t.Error("expected all-nil slice to be all-null")
	}
	if IsAllNull([]any{nil, float64(1)}) {
		t.Error("mixed slice must not be all-null")
	}
}

func isErrFilter(err error, target **ErrFilter) bool {
	if fe, ok := err.(*ErrFilter); ok {
		*target = fe
		return true
	}
	return false
}
