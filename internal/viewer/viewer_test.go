package viewer

import (
	"strings"
	"testing"

	"github.com/marcus/jnv/internal/theme"
)

func TestBuildRendersObjectWithSortedKeys(t *testing.T) {
	v := Build([]any{map[string]any{"b": float64(2), "a": float64(1)}}, theme.JSONStyles{Indent: 2})
	content := v.ContentToCopy()
	ai := strings.Index(content, `"a"`)
	bi := strings.Index(content, `"b"`)
	if ai < 0 || bi < 0 || ai > bi {
		t.Fatalf("expected \"a\" before \"b\" in sorted-key output, got:\n%s", content)
	}
}

func TestToggleFoldCollapsesContainerToSingleRow(t *testing.T) {
	v := Build([]any{map[string]any{"a": map[string]any{"b": float64(1)}}}, theme.JSONStyles{Indent: 2})
	before := len(v.visibleRows())
	v.ToggleFold() // cursor starts at row 0, the outer object's opening row
	after := len(v.visibleRows())
	if after >= before {
		t.Fatalf("expected fewer visible rows after collapsing root, got before=%d after=%d", before, after)
	}
}

func TestCollapseAllThenExpandAllRoundTrips(t *testing.T) {
	v := Build([]any{map[string]any{"a": []any{float64(1), float64(2)}}}, theme.JSONStyles{Indent: 2})
	full := len(v.visibleRows())
	v.CollapseAll()
	collapsed := len(v.visibleRows())
	if collapsed >= full {
		t.Fatalf("expected CollapseAll to shrink visible rows: full=%d collapsed=%d", full, collapsed)
	}
	v.ExpandAll()
	if got := len(v.visibleRows()); got != full {
		t.Fatalf("ExpandAll did not restore full row count: got %d, want %d", got, full)
	}
}

func TestHeadAndTailMoveCursorToEnds(t *testing.T) {
	v := Build([]any{map[string]any{"a": float64(1), "b": float64(2), "c": float64(3)}}, theme.JSONStyles{Indent: 2})
	v.Tail()
	rows := v.visibleRows()
	if v.cursor != len(rows)-1 {
		t.Errorf("Tail: cursor = %d, want %d", v.cursor, len(rows)-1)
	}
	v.Head()
	if v.cursor != 0 {
		t.Errorf("Head: cursor = %d, want 0", v.cursor)
	}
}

func TestUnrecognizedEventLeavesPaneUnchanged(t *testing.T) {
	v := Build([]any{map[string]any{"a": float64(1)}}, theme.JSONStyles{Indent: 2})
	before := v.Pane(40)
	after := v.OnEvent(40, Event(999))
	if before.Content != after.Content {
		t.Errorf("expected unchanged pane for unrecognized event")
	}
}

func TestContentToCopyOmitsCursorDecoration(t *testing.T) {
	v := Build([]any{map[string]any{"a": float64(1)}}, theme.JSONStyles{Indent: 2})
	if strings.Contains(v.ContentToCopy(), ">") {
		t.Errorf("ContentToCopy should not include cursor glyph")
	}
}
