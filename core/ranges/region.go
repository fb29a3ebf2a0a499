package ranges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/iamciera/BioRanges/core/errors"
)

// regionGrammar is the participle grammar for compact region strings.
// Examples: "chr1:100-200", "chr1:100-200:+", "scaffold_3:42", "1:5000-9000"
type regionGrammar struct {
	SeqPrefix string  `parser:"@Int?"`
	SeqName   string  `parser:"@Ident?"`
	Start     int     `parser:"\":\" @Int"`
	End       *int    `parser:"( \"-\" @Int )?"`
	Strand    *string `parser:"( \":\" @(\"+\" | \"-\" | \"*\") )?"`
}

// regionLexer defines the lexer for region strings.
// Note: seqnames may be bare numbers ("1" for chromosome 1), so the name is
// split into an optional number prefix and an optional ident tail.
var regionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "Punct", Pattern: `[:\-+*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// regionParser is the participle parser for region strings.
var regionParser = participle.MustBuild[regionGrammar](
	participle.Lexer(regionLexer),
	participle.Elide("Whitespace"),
)

// ParseRegion parses a compact region string into an anonymous SeqRange
// with a fresh metadata map.
// Supported formats:
//   - "chr1:100-200" (range, strand defaults to *)
//   - "chr1:100-200:+" (range with explicit strand)
//   - "chr1:100" (single position, the range [100, 100])
//
// Coordinates are taken literally; ParseRegion does not shift between
// coordinate conventions.
func ParseRegion(s string) (SeqRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SeqRange{}, errors.NewParse("region", "", "empty region string")
	}

	parsed, err := regionParser.ParseString("", s)
	if err != nil {
		return SeqRange{}, &errors.ParseError{
			Format:  "region",
			Message: fmt.Sprintf("invalid region format: %q: %v", s, err),
		}
	}

	seqname := parsed.SeqPrefix + parsed.SeqName
	if seqname == "" {
		return SeqRange{}, &errors.ParseError{
			Format:  "region",
			Message: fmt.Sprintf("invalid region format: %q: missing seqname", s),
		}
	}

	end := parsed.Start
	if parsed.End != nil {
		end = *parsed.End
	}
	rng, err := NewRange(parsed.Start, end)
	if err != nil {
		return SeqRange{}, errors.Wrapf(err, "region %q", s)
	}

	strand := StrandNone
	if parsed.Strand != nil {
		strand, err = ParseStrand(*parsed.Strand)
		if err != nil {
			return SeqRange{}, errors.Wrapf(err, "region %q", s)
		}
	}

	return NewSeqRange(rng, seqname, strand, nil)
}

// Region returns the compact region representation of the entry. The
// result round-trips through ParseRegion up to the metadata map.
func (sr SeqRange) Region() string {
	var sb strings.Builder
	sb.WriteString(sr.seqname)
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(sr.rng.start))

	if sr.rng.end != sr.rng.start {
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(sr.rng.end))
	}

	sb.WriteString(":")
	sb.WriteString(string(sr.strand))
	return sb.String()
}
