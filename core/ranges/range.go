package ranges

import (
	"fmt"

	"github.com/iamciera/BioRanges/core/errors"
)

// Range is a basic interval over integer coordinates: a closed span
// [start, end] with a derived width and an optional name. Width always
// equals end - start. A Range is a value: validated at construction and
// never mutated in place. Collections replace whole entries instead.
// The zero value is the anonymous empty range at the origin.
type Range struct {
	start int
	end   int
	width int
	name  string
}

// RangeSpec names the construction arguments of a Range for the general,
// keyword-style constructor. Nil fields are derived from the others; at
// most one of Start, End, Width may be nil.
type RangeSpec struct {
	Start *int
	End   *int
	Width *int
	Name  string
}

// NewRange returns the Range over [start, end]. The width is derived.
func NewRange(start, end int) (Range, error) {
	if start > end {
		return Range{}, errors.NewValidation("range",
			fmt.Sprintf("start %d is after end %d", start, end))
	}
	return Range{start: start, end: end, width: end - start}, nil
}

// NewRangeWithWidth returns the Range beginning at start with the given
// width. The end is derived as start + width.
func NewRangeWithWidth(start, width int) (Range, error) {
	if width < 0 {
		return Range{}, errors.NewValidation("width",
			fmt.Sprintf("negative width %d not allowed", width))
	}
	return Range{start: start, end: start + width, width: width}, nil
}

// NewRangeFromEnd returns the Range finishing at end with the given width.
// The start is derived as end - width.
func NewRangeFromEnd(end, width int) (Range, error) {
	if width < 0 {
		return Range{}, errors.NewValidation("width",
			fmt.Sprintf("negative width %d not allowed", width))
	}
	return Range{start: end - width, end: end, width: width}, nil
}

// NewRangeFromSpec builds a Range from any valid combination of start, end,
// and width. Exactly one of the three may be absent (nil) and is derived
// from the other two. When all three are supplied they must agree on
// width == end - start; an inconsistent triple is rejected.
func NewRangeFromSpec(spec RangeSpec) (Range, error) {
	absent := 0
	for _, p := range []*int{spec.Start, spec.End, spec.Width} {
		if p == nil {
			absent++
		}
	}
	if absent > 1 {
		return Range{}, errors.NewValidation("range",
			"need at least two of start, end, width")
	}
	if spec.Width != nil && *spec.Width < 0 {
		return Range{}, errors.NewValidation("width",
			fmt.Sprintf("negative width %d not allowed", *spec.Width))
	}
	if spec.Start != nil && spec.End != nil && *spec.Start > *spec.End {
		return Range{}, errors.NewValidation("range",
			fmt.Sprintf("start %d is after end %d", *spec.Start, *spec.End))
	}

	var start, end, width int
	switch {
	case spec.Start == nil:
		end, width = *spec.End, *spec.Width
		start = end - width
	case spec.End == nil:
		start, width = *spec.Start, *spec.Width
		end = start + width
	case spec.Width == nil:
		start, end = *spec.Start, *spec.End
		width = end - start
	default:
		start, end, width = *spec.Start, *spec.End, *spec.Width
		if width != end-start {
			return Range{}, errors.NewValidation("range",
				fmt.Sprintf("width %d does not equal end %d - start %d", width, end, start))
		}
	}

	return Range{start: start, end: end, width: width, name: spec.Name}, nil
}

// Start returns the start coordinate.
func (r Range) Start() int { return r.start }

// End returns the end coordinate.
func (r Range) End() int { return r.end }

// Width returns end - start.
func (r Range) Width() int { return r.width }

// Name returns the range name, or "" for an anonymous range.
func (r Range) Name() string { return r.name }

// WithName returns a copy of the range carrying the given name.
func (r Range) WithName(name string) Range {
	r.name = name
	return r
}

// Overlaps reports whether the two closed intervals intersect. Intervals
// that merely touch at a boundary count as overlapping.
func (r Range) Overlaps(other Range) bool {
	return other.start <= r.end && r.start <= other.end
}

// Contains reports whether pos falls inside the closed interval [start, end].
func (r Range) Contains(pos int) bool {
	return r.start <= pos && pos <= r.end
}

// ContainsRange reports whether other lies entirely inside this range.
func (r Range) ContainsRange(other Range) bool {
	return r.start <= other.start && other.end <= r.end
}

// String renders the range, naming it when it has a name.
func (r Range) String() string {
	if r.name != "" {
		return fmt.Sprintf("Range '%s' over [%d, %d]", r.name, r.start, r.end)
	}
	return fmt.Sprintf("Range over [%d, %d]", r.start, r.end)
}
