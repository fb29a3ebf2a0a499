package ranges

import (
	"github.com/iamciera/BioRanges/core/errors"
)

// Strand marks the orientation of a sequence-anchored range.
type Strand string

// Strand symbols. StrandNone is for ranges whose orientation is unknown or
// irrelevant; overlap tests compare it literally, not as a wildcard.
const (
	StrandForward Strand = "+"
	StrandReverse Strand = "-"
	StrandNone    Strand = "*"
)

// validStrands is the set of accepted strand symbols.
var validStrands = map[Strand]bool{
	StrandForward: true,
	StrandReverse: true,
	StrandNone:    true,
}

// IsValid returns true if the strand is one of the accepted symbols.
func (s Strand) IsValid() bool {
	return validStrands[s]
}

// String returns the strand symbol.
func (s Strand) String() string {
	return string(s)
}

// ParseStrand converts a strand symbol from boundary input (flags, region
// strings, report frames) into a Strand.
func ParseStrand(s string) (Strand, error) {
	st := Strand(s)
	if !st.IsValid() {
		return "", &errors.ValidationError{
			Field:   "strand",
			Value:   s,
			Message: "must be one of +, -, *",
		}
	}
	return st, nil
}
