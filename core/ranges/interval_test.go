package ranges

import (
	"testing"

	"github.com/biogo/store/interval"
)

func TestSeqRangesIntIntervals(t *testing.T) {
	sc := buildSeqRanges(t)

	ivs := sc.IntIntervals()
	if len(ivs) != sc.Len() {
		t.Fatalf("len(IntIntervals()) = %d, want %d", len(ivs), sc.Len())
	}

	for i, iv := range ivs {
		want := sc.At(i)
		if iv.Start != want.Start() || iv.End != want.End() {
			t.Errorf("interval %d = [%d, %d], want [%d, %d]",
				i, iv.Start, iv.End, want.Start(), want.End())
		}
		if iv.ID() != uintptr(i) {
			t.Errorf("interval %d ID() = %d, want %d", i, iv.ID(), i)
		}
		if iv.Handle != sc.Handle(i) {
			t.Errorf("interval %d Handle = %q, want %q", i, iv.Handle, sc.Handle(i))
		}
		if r := iv.Range(); r.Start != iv.Start || r.End != iv.End {
			t.Errorf("interval %d Range() = %+v, want bounds [%d, %d]", i, r, iv.Start, iv.End)
		}
	}

	// tree hits resolve back through handles even after the collection shifts
	h := ivs[2].Handle
	sc.Delete(0)
	idx, ok := sc.FindHandle(h)
	if !ok {
		t.Fatal("handle from the adapter no longer resolves")
	}
	if got := sc.At(idx); got.Seqname() != "chr2" {
		t.Errorf("resolved entry on %q, want chr2", got.Seqname())
	}
}

func TestRangesIntIntervals(t *testing.T) {
	rs, err := NewRanges([]int{0, 20}, []int{10, 30}, nil, nil)
	if err != nil {
		t.Fatalf("NewRanges error: %v", err)
	}

	ivs := rs.IntIntervals()
	if len(ivs) != 2 {
		t.Fatalf("len(IntIntervals()) = %d, want 2", len(ivs))
	}
	if ivs[1].Start != 20 || ivs[1].End != 30 {
		t.Errorf("interval 1 = [%d, %d], want [20, 30]", ivs[1].Start, ivs[1].End)
	}
	if ivs[0].Handle != "" {
		t.Errorf("plain collection interval carries handle %q", ivs[0].Handle)
	}
}

func TestIntIntervalOverlap(t *testing.T) {
	iv := IntInterval{Start: 0, End: 10}

	tests := []struct {
		name string
		q    interval.IntRange
		want bool
	}{
		{name: "inside", q: interval.IntRange{Start: 3, End: 7}, want: true},
		{name: "touching end", q: interval.IntRange{Start: 10, End: 20}, want: true},
		{name: "touching start", q: interval.IntRange{Start: -5, End: 0}, want: true},
		{name: "disjoint", q: interval.IntRange{Start: 11, End: 20}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Overlap(tt.q); got != tt.want {
				t.Errorf("Overlap(%+v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestIntIntervalOverlapLength(t *testing.T) {
	iv := IntInterval{Start: 0, End: 10}

	if got := iv.OverlapLength(interval.IntRange{Start: 5, End: 20}); got != 6 {
		t.Errorf("OverlapLength = %d, want 6 shared positions", got)
	}
	if got := iv.OverlapLength(interval.IntRange{Start: 10, End: 20}); got != 1 {
		t.Errorf("OverlapLength at the boundary = %d, want 1", got)
	}
	if got := iv.OverlapLength(interval.IntRange{Start: 20, End: 30}); got > 0 {
		t.Errorf("OverlapLength of disjoint intervals = %d, want non-positive", got)
	}
}
