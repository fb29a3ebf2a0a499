package ranges

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iamciera/BioRanges/core/errors"
)

// SeqRange anchors one Range to a named sequence with a strand, plus an
// arbitrary metadata map. The coordinates and strand are fixed at
// construction; only the metadata map is mutable. Copies of a SeqRange
// share the same metadata map, so a Set through one copy is visible
// through all of them.
type SeqRange struct {
	rng     Range
	seqname string
	strand  Strand
	data    map[string]any
}

// NewSeqRange anchors rng to seqname on the given strand. A nil data map
// gets a fresh empty map, never shared with another entry; a non-nil map
// is attached as passed, so the caller and the entry alias the same map.
func NewSeqRange(rng Range, seqname string, strand Strand, data map[string]any) (SeqRange, error) {
	if !strand.IsValid() {
		return SeqRange{}, &errors.ValidationError{
			Field:   "strand",
			Value:   string(strand),
			Message: "must be one of +, -, *",
		}
	}
	if data == nil {
		data = make(map[string]any)
	}
	return SeqRange{rng: rng, seqname: seqname, strand: strand, data: data}, nil
}

// Range returns the underlying coordinate range.
func (sr SeqRange) Range() Range { return sr.rng }

// Seqname returns the name of the sequence the range is anchored to.
func (sr SeqRange) Seqname() string { return sr.seqname }

// Strand returns the strand symbol.
func (sr SeqRange) Strand() Strand { return sr.strand }

// Start returns the start coordinate of the underlying range.
func (sr SeqRange) Start() int { return sr.rng.start }

// End returns the end coordinate of the underlying range.
func (sr SeqRange) End() int { return sr.rng.end }

// Width returns the width of the underlying range.
func (sr SeqRange) Width() int { return sr.rng.width }

// Name returns the name of the underlying range.
func (sr SeqRange) Name() string { return sr.rng.name }

// Get returns the metadata value stored under key.
func (sr SeqRange) Get(key string) (any, bool) {
	v, ok := sr.data[key]
	return v, ok
}

// Set stores a metadata value under key.
func (sr SeqRange) Set(key string, value any) {
	sr.data[key] = value
}

// Keys returns the metadata keys in sorted order.
func (sr SeqRange) Keys() []string {
	keys := make([]string, 0, len(sr.data))
	for k := range sr.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DataLen returns the number of metadata entries.
func (sr SeqRange) DataLen() int { return len(sr.data) }

// Overlaps reports whether the two entries overlap. Entries on different
// sequences or different strands never overlap; StrandNone is compared
// literally like any other symbol. On the same sequence and strand the
// closed-interval test of Range.Overlaps applies.
func (sr SeqRange) Overlaps(other SeqRange) bool {
	if sr.seqname != other.seqname || sr.strand != other.strand {
		return false
	}
	return sr.rng.Overlaps(other.rng)
}

// Contains reports whether other lies entirely inside this entry, on the
// same sequence and strand.
func (sr SeqRange) Contains(other SeqRange) bool {
	if sr.seqname != other.seqname || sr.strand != other.strand {
		return false
	}
	return sr.rng.ContainsRange(other.rng)
}

// clampSpan clips [start, end) to a sequence of length n, slice-style.
func clampSpan(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return start, end
}

// GetSeq returns the subsequence of seq covered by this entry. Extraction
// is half-open, [start, end), unlike the closed-interval Overlaps test; a
// range of width w yields w characters. Bounds outside seq are clamped.
func (sr SeqRange) GetSeq(seq string) string {
	lo, hi := clampSpan(sr.rng.start, sr.rng.end, len(seq))
	return seq[lo:hi]
}

// MaskSeq returns seq with the span GetSeq would extract replaced by the
// mask character.
func (sr SeqRange) MaskSeq(seq string, mask byte) string {
	lo, hi := clampSpan(sr.rng.start, sr.rng.end, len(seq))
	if lo == hi {
		return seq
	}
	return seq[:lo] + strings.Repeat(string(mask), hi-lo) + seq[hi:]
}

// OnForwardStrand returns this entry mirrored onto the forward strand of a
// sequence of the given length: [start, end] becomes
// [seqLength-end, seqLength-start]. An entry already on the forward strand
// is returned unchanged. The returned entry carries a shallow copy of the
// metadata map, so it does not alias the original.
func (sr SeqRange) OnForwardStrand(seqLength int) (SeqRange, error) {
	if seqLength <= 0 {
		return SeqRange{}, errors.NewValidation("seqlength",
			fmt.Sprintf("sequence length %d must be positive", seqLength))
	}
	if seqLength < sr.rng.end {
		return SeqRange{}, errors.NewValidation("seqlength",
			fmt.Sprintf("sequence length %d does not cover range end %d", seqLength, sr.rng.end))
	}
	if sr.strand == StrandForward {
		return sr, nil
	}
	data := make(map[string]any, len(sr.data))
	for k, v := range sr.data {
		data[k] = v
	}
	out := sr
	out.strand = StrandForward
	out.data = data
	out.rng.start = seqLength - sr.rng.end
	out.rng.end = seqLength - sr.rng.start
	// width is unchanged by the mirror
	return out, nil
}

// String renders the entry with its anchor, strand, bounds, and metadata
// key count.
func (sr SeqRange) String() string {
	return fmt.Sprintf("SeqRange on '%s', strand '%s' at [%d, %d], %d data keys",
		sr.seqname, sr.strand, sr.rng.start, sr.rng.end, len(sr.data))
}
