package ranges

import (
	"fmt"

	"github.com/iamciera/BioRanges/core/errors"
)

// Ranges is an ordered collection of Range entries. Entries keep their
// insertion order; positional access follows slice conventions, so an index
// outside [0, Len()) panics. The zero value is an empty collection.
type Ranges struct {
	entries []Range
}

// sharedLength returns the common length of the supplied list lengths, or a
// validation error carrying msg when they disagree. Callers pass the
// lengths of the lists that were actually provided; an empty lens means an
// empty collection.
func sharedLength(msg string, lens []int) (int, error) {
	size := 0
	for i, l := range lens {
		if i == 0 {
			size = l
			continue
		}
		if l != size {
			return 0, errors.NewValidation("lists", msg)
		}
	}
	return size, nil
}

// NewRanges builds a collection from parallel attribute lists. Any of the
// lists may be nil; the non-nil lists must all have the same length, and
// each position must leave at most one of start, end, width to derive. The
// whole input is validated before the collection is returned.
func NewRanges(starts, ends, widths []int, names []string) (*Ranges, error) {
	var lens []int
	if starts != nil {
		lens = append(lens, len(starts))
	}
	if ends != nil {
		lens = append(lens, len(ends))
	}
	if widths != nil {
		lens = append(lens, len(widths))
	}
	if names != nil {
		lens = append(lens, len(names))
	}
	size, err := sharedLength("lists of starts, ends, widths, and names must be of the same length", lens)
	if err != nil {
		return nil, err
	}

	rs := &Ranges{entries: make([]Range, 0, size)}
	for i := 0; i < size; i++ {
		var spec RangeSpec
		if starts != nil {
			v := starts[i]
			spec.Start = &v
		}
		if ends != nil {
			v := ends[i]
			spec.End = &v
		}
		if widths != nil {
			v := widths[i]
			spec.Width = &v
		}
		if names != nil {
			spec.Name = names[i]
		}
		r, err := NewRangeFromSpec(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "range %d", i)
		}
		rs.entries = append(rs.entries, r)
	}
	return rs, nil
}

// Len returns the number of entries.
func (rs *Ranges) Len() int { return len(rs.entries) }

// At returns the entry at index i.
func (rs *Ranges) At(i int) Range { return rs.entries[i] }

// Set replaces the entry at index i wholesale.
func (rs *Ranges) Set(i int, r Range) { rs.entries[i] = r }

// Delete removes the entry at index i, shifting later entries down.
func (rs *Ranges) Delete(i int) {
	rs.entries = append(rs.entries[:i], rs.entries[i+1:]...)
}

// Append adds entries to the collection. It accepts a single Range, another
// *Ranges, a []Range, or a []any holding only Range values. The []any form
// is validated in full before any entry is appended, so a failed call
// leaves the collection untouched.
func (rs *Ranges) Append(v any) error {
	switch other := v.(type) {
	case Range:
		rs.entries = append(rs.entries, other)
	case *Ranges:
		rs.entries = append(rs.entries, other.entries...)
	case []Range:
		rs.entries = append(rs.entries, other...)
	case []any:
		batch := make([]Range, len(other))
		for i, e := range other {
			r, ok := e.(Range)
			if !ok {
				return errors.NewValidation("append",
					fmt.Sprintf("element %d is %T, not a Range", i, e))
			}
			batch[i] = r
		}
		rs.entries = append(rs.entries, batch...)
	default:
		return errors.NewValidation("append",
			fmt.Sprintf("cannot append %T: want Range, *Ranges, or a list of Range", v))
	}
	return nil
}

// Starts returns the start coordinates of all entries in order.
func (rs *Ranges) Starts() []int {
	out := make([]int, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.start
	}
	return out
}

// Ends returns the end coordinates of all entries in order.
func (rs *Ranges) Ends() []int {
	out := make([]int, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.end
	}
	return out
}

// Widths returns the widths of all entries in order.
func (rs *Ranges) Widths() []int {
	out := make([]int, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.width
	}
	return out
}

// Names returns the names of all entries in order; anonymous entries
// contribute "".
func (rs *Ranges) Names() []string {
	out := make([]string, len(rs.entries))
	for i, r := range rs.entries {
		out[i] = r.name
	}
	return out
}

// Contains reports whether any entry contains pos.
func (rs *Ranges) Contains(pos int) bool {
	for _, r := range rs.entries {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// ContainsRange reports whether any entry wholly contains other.
func (rs *Ranges) ContainsRange(other Range) bool {
	for _, r := range rs.entries {
		if r.ContainsRange(other) {
			return true
		}
	}
	return false
}

// Overlaps is unsupported on the lightweight collection, always. Pairwise
// tests live on Range; collection-wide queries belong to an interval-tree
// backed store fed by IntIntervals.
func (rs *Ranges) Overlaps() error {
	return errors.NewUnsupported("overlaps",
		"lightweight Ranges collections do not support collection-wide overlap")
}
