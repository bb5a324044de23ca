package fixture

import (
	"testing"
	"time"
)

func TestBuildReferenceGroups(t *testing.T) {
	header := NewHeader(NewProvenance("fixture_test", 0), time.Unix(1700000000, 0))

	groups, err := BuildReferenceGroups(header, 48000, 64, []int{8, 16})
	if err != nil {
		t.Fatalf("BuildReferenceGroups() error = %v", err)
	}

	wantFiles := []string{
		"pure_sine.json",
		"cosine.json",
		"multi_tone.json",
		"chirp.json",
		"special.json",
		"windows_dsp.json",
	}
	if len(groups) != len(wantFiles) {
		t.Fatalf("group count = %d, want %d", len(groups), len(wantFiles))
	}
	for i, g := range groups {
		if g.FileName != wantFiles[i] {
			t.Fatalf("group %d: file = %q, want %q", i, g.FileName, wantFiles[i])
		}
		if err := g.Doc.Validate(); err != nil {
			t.Fatalf("group %q: Validate() error = %v", g.FileName, err)
		}
	}
}

func TestWindowGroupOrdersRecordsBySize(t *testing.T) {
	header := NewHeader(NewProvenance("fixture_test", 0), time.Unix(1700000000, 0))

	groups, err := BuildReferenceGroups(header, 48000, 64, []int{8, 16})
	if err != nil {
		t.Fatalf("BuildReferenceGroups() error = %v", err)
	}

	doc, ok := groups[len(groups)-1].Doc.(*WindowDocument)
	if !ok {
		t.Fatalf("last group is %T, want *WindowDocument", groups[len(groups)-1].Doc)
	}

	// All families at a size come before the next size.
	want := []struct {
		typ string
		n   int
	}{
		{"rect", 8}, {"hann", 8}, {"hamming", 8}, {"blackman", 8},
		{"rect", 16}, {"hann", 16}, {"hamming", 16}, {"blackman", 16},
	}
	if len(doc.Cases) != len(want) {
		t.Fatalf("record count = %d, want %d", len(doc.Cases), len(want))
	}
	for i, w := range want {
		if doc.Cases[i].Type != w.typ || doc.Cases[i].N != w.n {
			t.Fatalf("record %d: %s n=%d, want %s n=%d",
				i, doc.Cases[i].Type, doc.Cases[i].N, w.typ, w.n)
		}
	}
}
