// Package ranges provides lightweight genomic interval types: plain
// coordinate ranges, sequence-anchored ranges with strand and metadata,
// and ordered collections of both.
//
// The package favors plain values and linear scans over indexed
// structures. Collections keep insertion order, render bounded tabular
// summaries, and deliberately refuse collection-wide overlap queries;
// those belong to an interval-tree backed engine, which can be fed
// through IntIntervals.
//
// # Core Types
//
// The types build on each other:
//
//   - Range: closed span [start, end] with a derived width and optional name
//   - Ranges: ordered collection of Range entries
//   - SeqRange: a Range anchored to a named sequence with a strand and metadata
//   - SeqRanges: ordered collection of SeqRange entries plus sequence lengths
//
// # Coordinate Conventions
//
// Overlap and containment tests treat ranges as closed intervals: a range
// contains both its start and its end, and two ranges that merely touch
// at a boundary overlap. Sequence extraction is the exception: GetSeq and
// MaskSeq slice half-open, [start, end), so a range of width w yields w
// characters.
//
// # Entry Identity
//
// Every SeqRanges entry carries a stable handle minted at insertion.
// Handles survive deletes of other entries and are never reused, so
// external engines can reference entries without copying them. Content
// identity is separate: Fingerprint hashes coordinates with BLAKE3 and
// ignores handles and metadata.
//
// # Example
//
//	rng, _ := ranges.NewRange(100, 200)
//	sr, _ := ranges.NewSeqRange(rng, "chr1", ranges.StrandForward, nil)
//	sr.Set("gene", "DRD4")
//
//	sc, _ := ranges.NewSeqRanges(nil, nil, nil, nil, nil)
//	if err := sc.Append(sr); err != nil {
//	    return err
//	}
//	fmt.Println(sc.Show("gene"))
package ranges
