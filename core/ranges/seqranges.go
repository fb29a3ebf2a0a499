package ranges

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iamciera/BioRanges/core/errors"
)

// SeqRanges is an ordered collection of SeqRange entries plus a map of
// sequence name to sequence length. Every entry carries a stable handle,
// minted at insertion, that survives index shifts from deletes and is
// never reused; external engines can reference entries by handle instead
// of by position. The zero value is an empty collection.
type SeqRanges struct {
	entries    []SeqRange
	handles    []string
	seqlengths map[string]int
}

// NewSeqRanges builds a collection from parallel attribute lists. The
// lists must all have the same length; dataList alone may be nil, in
// which case every entry gets a fresh empty metadata map. seqlengths is
// copied, so later changes to the caller's map do not leak in. The whole
// input is validated before any entry is added.
func NewSeqRanges(rngs []Range, seqnames []string, strands []Strand, seqlengths map[string]int, dataList []map[string]any) (*SeqRanges, error) {
	var lens []int
	if rngs != nil {
		lens = append(lens, len(rngs))
	}
	if seqnames != nil {
		lens = append(lens, len(seqnames))
	}
	if strands != nil {
		lens = append(lens, len(strands))
	}
	if dataList != nil {
		lens = append(lens, len(dataList))
	}
	size, err := sharedLength("lists of ranges, seqnames, strands, and data must be of the same length", lens)
	if err != nil {
		return nil, err
	}
	if size > 0 && (rngs == nil || seqnames == nil || strands == nil) {
		return nil, errors.NewValidation("lists",
			"ranges, seqnames, and strands must all be provided")
	}
	for i := 0; i < size; i++ {
		if !strands[i].IsValid() {
			return nil, &errors.ValidationError{
				Field:   "strand",
				Value:   string(strands[i]),
				Message: fmt.Sprintf("must be one of +, -, * at position %d", i),
			}
		}
	}

	sc := &SeqRanges{seqlengths: make(map[string]int, len(seqlengths))}
	for name, length := range seqlengths {
		sc.seqlengths[name] = length
	}
	for i := 0; i < size; i++ {
		var data map[string]any
		if dataList != nil {
			data = dataList[i]
		}
		sr, err := NewSeqRange(rngs[i], seqnames[i], strands[i], data)
		if err != nil {
			return nil, errors.Wrapf(err, "seqrange %d", i)
		}
		sc.push(sr)
	}
	return sc, nil
}

// push appends one entry and mints its handle.
func (sc *SeqRanges) push(sr SeqRange) {
	sc.entries = append(sc.entries, sr)
	sc.handles = append(sc.handles, uuid.New().String())
}

// Len returns the number of entries.
func (sc *SeqRanges) Len() int { return len(sc.entries) }

// At returns the entry at index i.
func (sc *SeqRanges) At(i int) SeqRange { return sc.entries[i] }

// Set replaces the entry at index i wholesale. The replacement is a new
// entry and gets a fresh handle.
func (sc *SeqRanges) Set(i int, sr SeqRange) {
	sc.entries[i] = sr
	sc.handles[i] = uuid.New().String()
}

// Delete removes the entry at index i, shifting later entries down. The
// entry's handle is retired with it.
func (sc *SeqRanges) Delete(i int) {
	sc.entries = append(sc.entries[:i], sc.entries[i+1:]...)
	sc.handles = append(sc.handles[:i], sc.handles[i+1:]...)
}

// Handle returns the stable handle of the entry at index i.
func (sc *SeqRanges) Handle(i int) string { return sc.handles[i] }

// Handles returns the handles of all entries in order.
func (sc *SeqRanges) Handles() []string {
	out := make([]string, len(sc.handles))
	copy(out, sc.handles)
	return out
}

// FindHandle returns the current index of the entry with the given handle.
func (sc *SeqRanges) FindHandle(handle string) (int, bool) {
	for i, h := range sc.handles {
		if h == handle {
			return i, true
		}
	}
	return 0, false
}

// Append adds entries to the collection. It accepts a single SeqRange,
// another *SeqRanges, a []SeqRange, or a []any holding only SeqRange
// values. Appending a *SeqRanges also merges its seqlengths, with the
// appended collection winning on conflicting names. The []any form is
// validated in full before any entry is appended, so a failed call leaves
// the collection untouched.
func (sc *SeqRanges) Append(v any) error {
	switch other := v.(type) {
	case SeqRange:
		sc.push(other)
	case *SeqRanges:
		for _, sr := range other.entries {
			sc.push(sr)
		}
		for name, length := range other.seqlengths {
			sc.SetSeqLength(name, length)
		}
	case []SeqRange:
		for _, sr := range other {
			sc.push(sr)
		}
	case []any:
		batch := make([]SeqRange, len(other))
		for i, e := range other {
			sr, ok := e.(SeqRange)
			if !ok {
				return errors.NewValidation("append",
					fmt.Sprintf("element %d is %T, not a SeqRange", i, e))
			}
			batch[i] = sr
		}
		for _, sr := range batch {
			sc.push(sr)
		}
	default:
		return errors.NewValidation("append",
			fmt.Sprintf("cannot append %T: want SeqRange, *SeqRanges, or a list of SeqRange", v))
	}
	return nil
}

// Starts returns the start coordinates of all entries in order.
func (sc *SeqRanges) Starts() []int {
	out := make([]int, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = sr.rng.start
	}
	return out
}

// Ends returns the end coordinates of all entries in order.
func (sc *SeqRanges) Ends() []int {
	out := make([]int, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = sr.rng.end
	}
	return out
}

// Widths returns the widths of all entries in order.
func (sc *SeqRanges) Widths() []int {
	out := make([]int, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = sr.rng.width
	}
	return out
}

// Strands returns the strands of all entries in order.
func (sc *SeqRanges) Strands() []Strand {
	out := make([]Strand, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = sr.strand
	}
	return out
}

// Seqnames returns the sequence names of all entries in order.
func (sc *SeqRanges) Seqnames() []string {
	out := make([]string, len(sc.entries))
	for i, sr := range sc.entries {
		out[i] = sr.seqname
	}
	return out
}

// DataValues returns, in collection order, the metadata value under key
// for every entry. Entries without the key contribute nil.
func (sc *SeqRanges) DataValues(key string) []any {
	out := make([]any, len(sc.entries))
	for i, sr := range sc.entries {
		if v, ok := sr.data[key]; ok {
			out[i] = v
		}
	}
	return out
}

// Seqlengths returns a copy of the sequence-length map.
func (sc *SeqRanges) Seqlengths() map[string]int {
	out := make(map[string]int, len(sc.seqlengths))
	for name, length := range sc.seqlengths {
		out[name] = length
	}
	return out
}

// SeqLength returns the recorded length of the named sequence.
func (sc *SeqRanges) SeqLength(name string) (int, bool) {
	length, ok := sc.seqlengths[name]
	return length, ok
}

// SetSeqLength records the length of the named sequence. Lengths are
// supplementary metadata; they are not checked against entry coordinates.
func (sc *SeqRanges) SetSeqLength(name string, length int) {
	if sc.seqlengths == nil {
		sc.seqlengths = make(map[string]int)
	}
	sc.seqlengths[name] = length
}

// Overlaps is unsupported on the lightweight collection, always. Pairwise
// tests live on SeqRange; collection-wide queries belong to an
// interval-tree backed store fed by IntIntervals.
func (sc *SeqRanges) Overlaps() error {
	return errors.NewUnsupported("overlaps",
		"lightweight SeqRanges collections do not support collection-wide overlap")
}

// AnyOverlaps reports whether any entry overlaps probe. Linear scan with an
// early exit.
func (sc *SeqRanges) AnyOverlaps(probe SeqRange) bool {
	for _, sr := range sc.entries {
		if sr.Overlaps(probe) {
			return true
		}
	}
	return false
}

// SubsetByOverlaps returns a new collection holding the entries that other
// overlaps. other is a single SeqRange or a *SeqRanges. Kept entries are
// shared with the source collection, so their metadata maps alias; they
// get fresh handles in the subset. The seqlengths carry over as a copy.
func (sc *SeqRanges) SubsetByOverlaps(other any) (*SeqRanges, error) {
	var match func(SeqRange) bool
	switch probe := other.(type) {
	case SeqRange:
		match = func(sr SeqRange) bool { return probe.Overlaps(sr) }
	case *SeqRanges:
		match = func(sr SeqRange) bool { return probe.AnyOverlaps(sr) }
	default:
		return nil, errors.NewValidation("subset",
			fmt.Sprintf("cannot subset by %T: want SeqRange or *SeqRanges", other))
	}

	out := &SeqRanges{seqlengths: make(map[string]int, len(sc.seqlengths))}
	for name, length := range sc.seqlengths {
		out.seqlengths[name] = length
	}
	for _, sr := range sc.entries {
		if match(sr) {
			out.push(sr)
		}
	}
	return out, nil
}
