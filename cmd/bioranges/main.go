// Command bioranges is the CLI tool for the BioRanges library.
// It provides commands for parsing region strings, probing overlaps, and
// inspecting BLAST XML reports as range collections.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/iamciera/BioRanges/core/blast"
	"github.com/iamciera/BioRanges/core/ranges"
	"github.com/iamciera/BioRanges/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for bioranges.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (text, json)" enum:"text,json" default:"text"`

	// Command groups (noun-first organization)
	Region  RegionGroup `cmd:"" help:"Region string operations (parse, overlap)"`
	Blast   BlastGroup  `cmd:"" help:"BLAST report operations"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// RegionGroup contains region string operations.
type RegionGroup struct {
	Parse   RegionParseCmd   `cmd:"" help:"Parse region strings into a range collection"`
	Overlap RegionOverlapCmd `cmd:"" help:"Check whether two regions overlap"`
}

// BlastGroup contains BLAST report operations.
type BlastGroup struct {
	Ranges BlastRangesCmd `cmd:"" help:"Convert BLAST XML report HSPs into a range collection"`
}

// RegionParseCmd parses region strings into a range collection.
type RegionParseCmd struct {
	Regions []string `arg:"" help:"Region strings like chr1:100-200:+ or chr2:5000"`
}

func (c *RegionParseCmd) Run() error {
	col, err := ranges.NewSeqRanges(nil, nil, nil, nil, nil)
	if err != nil {
		return err
	}

	for _, s := range c.Regions {
		sr, err := ranges.ParseRegion(s)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", sr.Region())
		fmt.Printf("  Seqname: %s\n", sr.Seqname())
		fmt.Printf("  Range:   [%d, %d] (width %d)\n", sr.Start(), sr.End(), sr.Width())
		fmt.Printf("  Strand:  %s\n", sr.Strand())
		fmt.Println()

		if err := col.Append(sr); err != nil {
			return err
		}
	}

	fmt.Println(col.Show())
	fmt.Println()
	fmt.Printf("Fingerprint: %s\n", col.Fingerprint())
	return nil
}

// RegionOverlapCmd checks whether two regions overlap.
type RegionOverlapCmd struct {
	A string `arg:"" help:"First region string"`
	B string `arg:"" help:"Second region string"`
}

func (c *RegionOverlapCmd) Run() error {
	a, err := ranges.ParseRegion(c.A)
	if err != nil {
		return err
	}
	b, err := ranges.ParseRegion(c.B)
	if err != nil {
		return err
	}

	fmt.Printf("A: %s\n", a.String())
	fmt.Printf("B: %s\n", b.String())
	fmt.Println()

	if a.Overlaps(b) {
		fmt.Println("Result: OVERLAP")
		fmt.Printf("  Shared span: [%d, %d]\n", max(a.Start(), b.Start()), min(a.End(), b.End()))
		return nil
	}

	fmt.Println("Result: NO OVERLAP")
	switch {
	case a.Seqname() != b.Seqname():
		fmt.Printf("  Reason: different seqnames (%s vs %s)\n", a.Seqname(), b.Seqname())
	case a.Strand() != b.Strand():
		fmt.Printf("  Reason: different strands (%s vs %s)\n", a.Strand(), b.Strand())
	default:
		fmt.Println("  Reason: disjoint intervals")
	}
	return fmt.Errorf("regions do not overlap")
}

// BlastRangesCmd converts BLAST XML report HSPs into a range collection.
type BlastRangesCmd struct {
	Report string   `arg:"" help:"Path to BLAST XML report (plain, .gz, or .xz)" type:"existingfile"`
	Hits   bool     `help:"Anchor ranges on subject sequences instead of the query"`
	Keys   []string `help:"Data keys to include as table columns"`
	JSON   bool     `help:"Output one JSON object per range"`
}

func (c *BlastRangesCmd) Run() error {
	runID := uuid.New().String()
	ctx := logging.WithRunID(context.Background(), runID)

	start := time.Now()
	report, err := blast.ParseFile(c.Report)
	if err != nil {
		return err
	}
	logging.DebugContext(ctx, "report parsed",
		"path", c.Report,
		"program", report.Program,
		"iterations", len(report.Iterations),
		"skipped", len(report.Skipped))

	anchor := "query"
	var col *ranges.SeqRanges
	if c.Hits {
		anchor = "hit"
		col, err = report.HitRanges()
	} else {
		col, err = report.QueryRanges()
	}
	if err != nil {
		return err
	}

	logging.IngestEvent(c.Report, "blastxml", col.Len(), time.Since(start),
		"anchor", anchor,
		"run_id", runID)

	if c.JSON {
		for _, rec := range rangeRecords(col) {
			line, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to marshal range: %w", err)
			}
			fmt.Println(string(line))
		}
		return nil
	}

	fmt.Printf("Report: %s\n", c.Report)
	fmt.Printf("  Program:  %s %s\n", report.Program, report.Version)
	if report.Database != "" {
		fmt.Printf("  Database: %s\n", report.Database)
	}
	fmt.Printf("  Anchor:   %s\n", anchor)
	if len(report.Skipped) > 0 {
		fmt.Printf("  Skipped:  %d malformed HSP(s)\n", len(report.Skipped))
	}
	fmt.Println()

	fmt.Println(col.Show(c.Keys...))
	fmt.Println()
	fmt.Printf("Fingerprint: %s\n", col.Fingerprint())
	return nil
}

// rangeRecord is the JSON shape emitted by --json, one object per line.
type rangeRecord struct {
	Seqname string         `json:"seqname"`
	Start   int            `json:"start"`
	End     int            `json:"end"`
	Width   int            `json:"width"`
	Strand  string         `json:"strand"`
	Data    map[string]any `json:"data,omitempty"`
}

// rangeRecords flattens a collection into JSON-ready records.
func rangeRecords(col *ranges.SeqRanges) []rangeRecord {
	records := make([]rangeRecord, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		sr := col.At(i)
		rec := rangeRecord{
			Seqname: sr.Seqname(),
			Start:   sr.Start(),
			End:     sr.End(),
			Width:   sr.Width(),
			Strand:  string(sr.Strand()),
		}
		if sr.DataLen() > 0 {
			data := make(map[string]any, sr.DataLen())
			for _, k := range sr.Keys() {
				v, _ := sr.Get(k)
				data[k] = v
			}
			rec.Data = data
		}
		records = append(records, rec)
	}
	return records
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("bioranges version %s\n", version)
	return nil
}

// Helper functions

func logLevelFromFlag(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func logFormatFromFlag(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bioranges"),
		kong.Description("BioRanges - genomic ranges and BLAST report tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logLevelFromFlag(CLI.LogLevel), logFormatFromFlag(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
