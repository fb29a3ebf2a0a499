package ranges

import (
	"fmt"

	"github.com/biogo/store/interval"
)

// IntInterval adapts one collection entry to the interval.IntInterface
// expected by interval-tree backed stores. It references its source entry
// by position (UID) and, for SeqRanges entries, by stable handle; it does
// not copy the entry.
type IntInterval struct {
	Start, End int
	UID        uintptr
	Handle     string
}

var _ interval.IntInterface = IntInterval{}

// Overlap reports intersection with b under closed-interval semantics, the
// same test Range.Overlaps applies.
func (i IntInterval) Overlap(b interval.IntRange) bool {
	return b.Start <= i.End && i.Start <= b.End
}

// OverlapLength returns the number of positions shared with b, or a
// non-positive value when the intervals are disjoint.
func (i IntInterval) OverlapLength(b interval.IntRange) int {
	return min(i.End, b.End) - max(i.Start, b.Start) + 1
}

// ID returns the position of the source entry at adapter-build time.
func (i IntInterval) ID() uintptr {
	return i.UID
}

// Range returns the interval bounds.
func (i IntInterval) Range() interval.IntRange {
	return interval.IntRange{Start: i.Start, End: i.End}
}

// String renders the interval with its source identity.
func (i IntInterval) String() string {
	if i.Handle != "" {
		return fmt.Sprintf("[%d, %d]#%s", i.Start, i.End, i.Handle)
	}
	return fmt.Sprintf("[%d, %d]#%d", i.Start, i.End, i.UID)
}

// IntIntervals exposes every entry as an interval.IntInterface value,
// ready for insertion into an external interval tree. Entries carry their
// position as UID.
func (rs *Ranges) IntIntervals() []IntInterval {
	out := make([]IntInterval, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = IntInterval{Start: r.start, End: r.end, UID: uintptr(i)}
	}
	return out
}

// IntIntervals exposes every entry as an interval.IntInterface value,
// ready for insertion into an external interval tree. Entries carry their
// position as UID and their stable handle, so tree hits can be resolved
// through FindHandle even after the collection shifts. Splitting the tree
// per sequence and strand is the engine's concern.
func (sc *SeqRanges) IntIntervals() []IntInterval {
	out := make([]IntInterval, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = IntInterval{
			Start:  sr.rng.start,
			End:    sr.rng.end,
			UID:    uintptr(i),
			Handle: sc.handles[i],
		}
	}
	return out
}
