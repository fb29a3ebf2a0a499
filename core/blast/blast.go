// Package blast parses NCBI BLAST XML reports (outfmt 5) and projects
// their alignments into sequence range collections.
//
// BLAST coordinates are 1-based and inclusive on both ends. Projection
// shifts them to this library's convention, [from-1, to], so that a
// projected range has the alignment length as its width and GetSeq
// extracts exactly the aligned span.
package blast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/iamciera/BioRanges/core/errors"
	"github.com/iamciera/BioRanges/core/ranges"
	"github.com/iamciera/BioRanges/internal/logging"
)

// Report is a parsed BLAST XML report.
type Report struct {
	Program  string
	Version  string
	Database string
	QueryID  string
	QueryDef string
	QueryLen int

	Iterations []Iteration

	// Skipped records malformed elements the parser dropped instead of
	// failing the whole report.
	Skipped []Skip

	// Path is the source file, when the report came from ParseFile.
	Path string
}

// Iteration is one query iteration of a report.
type Iteration struct {
	Num      int
	QueryID  string
	QueryDef string
	QueryLen int
	Hits     []Hit
}

// Hit is one subject sequence with at least one alignment.
type Hit struct {
	Num       int
	ID        string
	Def       string
	Accession string
	Len       int
	Hsps      []Hsp
}

// Hsp is one high-scoring segment pair. Coordinates are as reported:
// 1-based, inclusive, with hit-from greater than hit-to on the minus
// strand.
type Hsp struct {
	Num        int
	BitScore   float64
	Score      float64
	EValue     float64
	QueryFrom  int
	QueryTo    int
	HitFrom    int
	HitTo      int
	QueryFrame int
	HitFrame   int
	Identity   int
	Positive   int
	Gaps       int
	AlignLen   int
}

// Skip records one dropped element.
type Skip struct {
	Element string
	Context string
	Err     error
}

var (
	blastOutputExpr = xpath.MustCompile("//BlastOutput")
	iterationExpr   = xpath.MustCompile("BlastOutput_iterations/Iteration")
	hitExpr         = xpath.MustCompile("Iteration_hits/Hit")
	hspExpr         = xpath.MustCompile("Hit_hsps/Hsp")
)

// Parse reads a BLAST XML report from r.
func Parse(r io.Reader) (*Report, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  "blastxml",
			Message: fmt.Sprintf("parsing report: %v", err),
		}
	}

	root := xmlquery.QuerySelector(doc, blastOutputExpr)
	if root == nil {
		return nil, errors.NewNotFound("element", "BlastOutput")
	}

	report := &Report{
		Program:  childText(root, "BlastOutput_program"),
		Version:  childText(root, "BlastOutput_version"),
		Database: childText(root, "BlastOutput_db"),
		QueryID:  childText(root, "BlastOutput_query-ID"),
		QueryDef: childText(root, "BlastOutput_query-def"),
		QueryLen: optionalInt(root, "BlastOutput_query-len"),
	}

	for _, itNode := range xmlquery.QuerySelectorAll(root, iterationExpr) {
		it := Iteration{
			Num:      optionalInt(itNode, "Iteration_iter-num"),
			QueryID:  childText(itNode, "Iteration_query-ID"),
			QueryDef: childText(itNode, "Iteration_query-def"),
			QueryLen: optionalInt(itNode, "Iteration_query-len"),
		}

		for _, hitNode := range xmlquery.QuerySelectorAll(itNode, hitExpr) {
			hit := Hit{
				Num:       optionalInt(hitNode, "Hit_num"),
				ID:        childText(hitNode, "Hit_id"),
				Def:       childText(hitNode, "Hit_def"),
				Accession: childText(hitNode, "Hit_accession"),
				Len:       optionalInt(hitNode, "Hit_len"),
			}

			for _, hspNode := range xmlquery.QuerySelectorAll(hitNode, hspExpr) {
				hsp, err := parseHsp(hspNode)
				if err != nil {
					logging.ParseSkip("blastxml", "Hsp", err, "context", hit.name())
					report.Skipped = append(report.Skipped, Skip{
						Element: "Hsp",
						Context: hit.name(),
						Err:     err,
					})
					continue
				}
				hit.Hsps = append(hit.Hsps, hsp)
			}

			it.Hits = append(it.Hits, hit)
		}

		report.Iterations = append(report.Iterations, it)
	}

	return report, nil
}

// ParseFile opens a report file, decompressing as needed, and parses it.
func ParseFile(path string) (*Report, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	report, err := Parse(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}
	report.Path = path
	return report, nil
}

// parseHsp decodes one Hsp element. The four alignment coordinates are
// required; everything else is optional and defaults to zero.
func parseHsp(n *xmlquery.Node) (Hsp, error) {
	hsp := Hsp{
		Num:        optionalInt(n, "Hsp_num"),
		BitScore:   optionalFloat(n, "Hsp_bit-score"),
		Score:      optionalFloat(n, "Hsp_score"),
		EValue:     optionalFloat(n, "Hsp_evalue"),
		QueryFrame: optionalInt(n, "Hsp_query-frame"),
		HitFrame:   optionalInt(n, "Hsp_hit-frame"),
		Identity:   optionalInt(n, "Hsp_identity"),
		Positive:   optionalInt(n, "Hsp_positive"),
		Gaps:       optionalInt(n, "Hsp_gaps"),
		AlignLen:   optionalInt(n, "Hsp_align-len"),
	}

	var err error
	if hsp.QueryFrom, err = requiredInt(n, "Hsp_query-from"); err != nil {
		return Hsp{}, err
	}
	if hsp.QueryTo, err = requiredInt(n, "Hsp_query-to"); err != nil {
		return Hsp{}, err
	}
	if hsp.HitFrom, err = requiredInt(n, "Hsp_hit-from"); err != nil {
		return Hsp{}, err
	}
	if hsp.HitTo, err = requiredInt(n, "Hsp_hit-to"); err != nil {
		return Hsp{}, err
	}
	return hsp, nil
}

// QueryRanges projects every alignment onto its query sequence. Each HSP
// becomes one entry anchored at the query seqname, with the hit identity
// and alignment statistics in the metadata map. Query lengths are recorded
// in the collection's seqlengths.
func (r *Report) QueryRanges() (*ranges.SeqRanges, error) {
	sc, err := ranges.NewSeqRanges(nil, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	for i := range r.Iterations {
		it := &r.Iterations[i]
		seqname := it.queryName(r)
		if length := it.queryLength(r); length > 0 {
			sc.SetSeqLength(seqname, length)
		}

		for _, hit := range it.Hits {
			for _, hsp := range hit.Hsps {
				rng, strand, err := projectSpan(hsp.QueryFrom, hsp.QueryTo, hsp.QueryFrame)
				if err != nil {
					return nil, errors.Wrapf(err, "hit %s hsp %d", hit.name(), hsp.Num)
				}
				sr, err := ranges.NewSeqRange(rng, seqname, strand, map[string]any{
					"hit":       hit.name(),
					"hit_def":   hit.Def,
					"hit_from":  hsp.HitFrom,
					"hit_to":    hsp.HitTo,
					"evalue":    hsp.EValue,
					"bitscore":  hsp.BitScore,
					"identity":  hsp.Identity,
					"align_len": hsp.AlignLen,
					"gaps":      hsp.Gaps,
				})
				if err != nil {
					return nil, err
				}
				if err := sc.Append(sr); err != nil {
					return nil, err
				}
			}
		}
	}
	return sc, nil
}

// HitRanges projects every alignment onto its subject sequence. Each HSP
// becomes one entry anchored at the hit seqname, with the query identity
// and alignment statistics in the metadata map. Hit lengths are recorded
// in the collection's seqlengths.
func (r *Report) HitRanges() (*ranges.SeqRanges, error) {
	sc, err := ranges.NewSeqRanges(nil, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	for i := range r.Iterations {
		it := &r.Iterations[i]
		query := it.queryName(r)

		for _, hit := range it.Hits {
			seqname := hit.name()
			if hit.Len > 0 {
				sc.SetSeqLength(seqname, hit.Len)
			}

			for _, hsp := range hit.Hsps {
				rng, strand, err := projectSpan(hsp.HitFrom, hsp.HitTo, hsp.HitFrame)
				if err != nil {
					return nil, errors.Wrapf(err, "hit %s hsp %d", seqname, hsp.Num)
				}
				sr, err := ranges.NewSeqRange(rng, seqname, strand, map[string]any{
					"query":      query,
					"query_from": hsp.QueryFrom,
					"query_to":   hsp.QueryTo,
					"evalue":     hsp.EValue,
					"bitscore":   hsp.BitScore,
					"identity":   hsp.Identity,
					"align_len":  hsp.AlignLen,
					"gaps":       hsp.Gaps,
				})
				if err != nil {
					return nil, err
				}
				if err := sc.Append(sr); err != nil {
					return nil, err
				}
			}
		}
	}
	return sc, nil
}

// projectSpan converts a reported 1-based inclusive [from, to] span into a
// library range and strand. Minus-strand alignments are flagged by a
// negative frame or by from > to; their coordinates come back ascending.
func projectSpan(from, to, frame int) (ranges.Range, ranges.Strand, error) {
	strand := ranges.StrandForward
	if frame < 0 || from > to {
		strand = ranges.StrandReverse
	}
	if from > to {
		from, to = to, from
	}

	rng, err := ranges.NewRange(from-1, to)
	if err != nil {
		return ranges.Range{}, "", err
	}
	return rng, strand, nil
}

// name returns the preferred identifier of the hit sequence: the
// accession, falling back to the first token of the ID and then of the
// definition line.
func (h *Hit) name() string {
	if h.Accession != "" {
		return h.Accession
	}
	if tok := firstToken(h.ID); tok != "" {
		return tok
	}
	return firstToken(h.Def)
}

// queryName returns the seqname of this iteration's query: the first token
// of the definition line, falling back to the query ID and then to the
// report header.
func (it *Iteration) queryName(r *Report) string {
	for _, s := range []string{it.QueryDef, it.QueryID, r.QueryDef, r.QueryID} {
		if tok := firstToken(s); tok != "" {
			return tok
		}
	}
	return ""
}

// queryLength returns this iteration's query length, falling back to the
// report header.
func (it *Iteration) queryLength(r *Report) int {
	if it.QueryLen > 0 {
		return it.QueryLen
	}
	return r.QueryLen
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// childText returns the trimmed text of the named direct child element.
func childText(n *xmlquery.Node, name string) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return strings.TrimSpace(c.InnerText())
		}
	}
	return ""
}

// requiredInt decodes the named child as an integer, erroring when the
// element is missing or malformed.
func requiredInt(n *xmlquery.Node, name string) (int, error) {
	s := childText(n, name)
	if s == "" {
		return 0, errors.NewParse("blastxml", "", fmt.Sprintf("missing %s", name))
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewParse("blastxml", "", fmt.Sprintf("bad %s %q", name, s))
	}
	return v, nil
}

// optionalInt decodes the named child as an integer, defaulting to zero.
func optionalInt(n *xmlquery.Node, name string) int {
	v, err := strconv.Atoi(childText(n, name))
	if err != nil {
		return 0
	}
	return v
}

// optionalFloat decodes the named child as a float, defaulting to zero.
func optionalFloat(n *xmlquery.Node, name string) float64 {
	v, err := strconv.ParseFloat(childText(n, name), 64)
	if err != nil {
		return 0
	}
	return v
}
