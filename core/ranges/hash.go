package ranges

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

// HashBytes computes the BLAKE3 hash of bytes and returns it as a hex string.
func HashBytes(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// HashString computes the BLAKE3 hash of a string and returns it as a hex string.
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// canonical returns the stable serialization of the range used for
// fingerprinting.
func (r Range) canonical() string {
	return fmt.Sprintf("%d\t%d\t%d\t%s\n", r.start, r.end, r.width, r.name)
}

// Fingerprint computes a content hash of the range from its canonical
// start, end, width, and name tuple.
func (r Range) Fingerprint() string {
	return HashString(r.canonical())
}

// canonical returns the stable serialization of the entry used for
// fingerprinting. Metadata is excluded: a fingerprint identifies where an
// entry sits, not what hangs off it.
func (sr SeqRange) canonical() string {
	return fmt.Sprintf("%s\t%s\t%s", sr.seqname, sr.strand, sr.rng.canonical())
}

// Fingerprint computes a content hash of the entry from its seqname,
// strand, and coordinates. Attached metadata does not contribute.
func (sr SeqRange) Fingerprint() string {
	return HashString(sr.canonical())
}

// Fingerprint computes a content hash over the canonical serialization of
// every entry, in collection order.
func (rs *Ranges) Fingerprint() string {
	var sb strings.Builder
	for _, r := range rs.entries {
		sb.WriteString(r.canonical())
	}
	return HashString(sb.String())
}

// Fingerprint computes a content hash over the canonical serialization of
// every entry, in collection order, plus the seqlengths in sorted name
// order. Handles are excluded, so two collections with the same content
// fingerprint identically.
func (sc *SeqRanges) Fingerprint() string {
	var sb strings.Builder
	for _, sr := range sc.entries {
		sb.WriteString(sr.canonical())
	}
	names := make([]string, 0, len(sc.seqlengths))
	for name := range sc.seqlengths {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "%s=%d\n", name, sc.seqlengths[name])
	}
	return HashString(sb.String())
}
