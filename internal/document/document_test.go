package document

import (
	"strings"
	"testing"
)

func TestLoadSingleObject(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"a":1,"b":"x"}`), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Values) != 1 {
		t.Fatalf("len(Values) = %d, want 1", len(doc.Values))
	}
	if doc.Truncated {
		t.Errorf("did not expect truncation")
	}
}

func TestLoadMultipleStreams(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"a":1}
{"a":2}
{"a":3}`), 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Values) != 3 {
		t.Fatalf("len(Values) = %d, want 3", len(doc.Values))
	}
}

func TestLoadTruncatesAtMaxStreams(t *testing.T) {
	doc, err := Load(strings.NewReader(`1
2
3
4`), 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Values) != 2 {
		t.Fatalf("len(Values) = %d, want 2", len(doc.Values))
	}
	if !doc.Truncated {
		t.Errorf("expected Truncated = true")
	}
}

func TestLoadInvalidJSONErrors(t *testing.T) {
	if _, err := Load(strings.NewReader(`{not json`), 0); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestPathsEnumeratesNestedStructure(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"a":1,"b":{"c":[10,20]}}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for p := range Paths(doc) {
		got = append(got, p)
	}
	want := []string{".", ".a", ".b", ".b.c", ".b.c[0]", ".b.c[1]"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPathsDedupesAcrossStreams(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"a":1}
{"a":2,"b":3}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for p := range Paths(doc) {
		got = append(got, p)
	}
	want := []string{".", ".a", ".b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPathsStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"a":1,"b":2,"c":3}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for p := range Paths(doc) {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 paths pulled, got %v", got)
	}
}

func TestPathsQuotesNonBareIdentKeys(t *testing.T) {
	doc, err := Load(strings.NewReader(`{"weird key":1}`), 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for p := range Paths(doc) {
		got = append(got, p)
	}
	if len(got) != 2 || got[1] != `."weird key"` {
		t.Fatalf("got %v", got)
	}
}
