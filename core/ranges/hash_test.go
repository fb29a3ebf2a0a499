package ranges

import (
	"testing"
)

func TestRangeFingerprint(t *testing.T) {
	a := mustRange(t, 0, 10)
	b := mustRange(t, 0, 10)
	c := mustRange(t, 0, 11)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical ranges fingerprint differently")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different ranges share a fingerprint")
	}
	if a.Fingerprint() == a.WithName("x").Fingerprint() {
		t.Error("the name does not contribute to the fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex characters", len(a.Fingerprint()))
	}
}

func TestSeqRangeFingerprint(t *testing.T) {
	a := mustSeqRange(t, 0, 10, "chr1", StrandForward)
	b := mustSeqRange(t, 0, 10, "chr1", StrandForward)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical entries fingerprint differently")
	}

	// metadata does not contribute
	a.Set("gene", "DRD4")
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("metadata changed the fingerprint")
	}

	// seqname and strand do
	other := mustSeqRange(t, 0, 10, "chr2", StrandForward)
	if a.Fingerprint() == other.Fingerprint() {
		t.Error("different seqnames share a fingerprint")
	}
	flipped := mustSeqRange(t, 0, 10, "chr1", StrandReverse)
	if a.Fingerprint() == flipped.Fingerprint() {
		t.Error("different strands share a fingerprint")
	}
}

func TestRangesFingerprint(t *testing.T) {
	a, err := NewRanges([]int{0, 10}, []int{5, 15}, nil, nil)
	if err != nil {
		t.Fatalf("NewRanges error: %v", err)
	}
	b, err := NewRanges([]int{0, 10}, []int{5, 15}, nil, nil)
	if err != nil {
		t.Fatalf("NewRanges error: %v", err)
	}
	// same entries, reversed order
	c, err := NewRanges([]int{10, 0}, []int{15, 5}, nil, nil)
	if err != nil {
		t.Fatalf("NewRanges error: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical collections fingerprint differently")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("entry order does not contribute to the fingerprint")
	}
}

func TestSeqRangesFingerprint(t *testing.T) {
	a := buildSeqRanges(t)
	b := buildSeqRanges(t)

	// handles differ between the two builds, content does not
	if a.Handle(0) == b.Handle(0) {
		t.Fatal("independent builds share a handle")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("collections with the same content fingerprint differently")
	}

	// seqlengths contribute
	b.SetSeqLength("chr3", 100)
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("seqlengths do not contribute to the fingerprint")
	}
}

func TestHashString(t *testing.T) {
	if HashString("acgt") != HashBytes([]byte("acgt")) {
		t.Error("HashString disagrees with HashBytes")
	}
	if HashString("acgt") == HashString("acga") {
		t.Error("different inputs share a hash")
	}
}
