package render

import "testing"

func TestUpdateOverwritesNamedPanes(t *testing.T) {
	r := New(false)
	r.Update(Update{Role: Editor, Pane: Pane{Content: "e"}}, Update{Role: Processor, Pane: Pane{Content: "p"}})
	if r.Pane(Editor).Content != "e" {
		t.Errorf("Editor = %q, want %q", r.Pane(Editor).Content, "e")
	}
	if r.Pane(Processor).Content != "p" {
		t.Errorf("Processor = %q, want %q", r.Pane(Processor).Content, "p")
	}
	if r.Pane(Guide).Content != "" {
		t.Errorf("Guide should be untouched, got %q", r.Pane(Guide).Content)
	}
}

func TestHintsDisabledDropsGuideUpdates(t *testing.T) {
	r := New(true)
	r.Update(Update{Role: Guide, Pane: Pane{Content: "hint"}})
	r.Update(Update{Role: ProcessorGuide, Pane: Pane{Content: "hint2"}})
	if r.Pane(Guide).Content != "" {
		t.Errorf("expected Guide update dropped, got %q", r.Pane(Guide).Content)
	}
	if r.Pane(ProcessorGuide).Content != "" {
		t.Errorf("expected ProcessorGuide update dropped, got %q", r.Pane(ProcessorGuide).Content)
	}
}

func TestFrameJoinsPanesInRoleOrder(t *testing.T) {
	r := New(false)
	r.Update(
		Update{Role: Editor, Pane: Pane{Content: "1"}},
		Update{Role: Guide, Pane: Pane{Content: "2"}},
		Update{Role: ProcessorGuide, Pane: Pane{Content: "3"}},
		Update{Role: Search, Pane: Pane{Content: "4"}},
		Update{Role: Processor, Pane: Pane{Content: "5"}},
	)
	want := "1\n2\n3\n4\n5"
	if got := r.Frame(); got != want {
		t.Errorf("Frame() = %q, want %q", got, want)
	}
}

func TestSetHintsDisabledTogglesAtRuntime(t *testing.T) {
	r := New(false)
	r.Update(Update{Role: Guide, Pane: Pane{Content: "hint"}})
	if r.Pane(Guide).Content != "hint" {
		t.Fatal("expected hint to be written while hints enabled")
	}
	r.SetHintsDisabled(true)
	r.Update(Update{Role: Guide, Pane: Pane{Content: "ignored"}})
	if r.Pane(Guide).Content != "hint" {
		t.Errorf("expected Guide unchanged after disabling hints, got %q", r.Pane(Guide).Content)
	}
}
