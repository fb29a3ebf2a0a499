package ranges

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDisplayRanges caps the number of entry rows a summary renders. The
// header always reports the true entry count.
const maxDisplayRanges = 10

// formatTable renders a title line followed by a header row and entry
// rows, each column right-aligned to its widest cell. dataSep is the
// column index where a "| " divider is inserted ahead of the metadata
// columns, or -1 for none. No trailing newline.
func formatTable(title string, header []string, rows [][]string, dataSep int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(title)
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)
	for _, row := range all {
		sb.WriteByte('\n')
		for i, cell := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if i == dataSep {
				sb.WriteString("| ")
			}
			sb.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// String renders the bounded tabular summary of the collection: a header
// with the true entry count, column names, and at most maxDisplayRanges
// entry rows.
func (rs *Ranges) String() string {
	title := fmt.Sprintf("Ranges with %d ranges", len(rs.entries))
	header := []string{"start", "end", "width", "name"}

	n := len(rs.entries)
	if n > maxDisplayRanges {
		n = maxDisplayRanges
	}
	rows := make([][]string, 0, n)
	for _, r := range rs.entries[:n] {
		rows = append(rows, []string{
			strconv.Itoa(r.start),
			strconv.Itoa(r.end),
			strconv.Itoa(r.width),
			r.name,
		})
	}
	return formatTable(title, header, rows, -1)
}

// Show renders the bounded tabular summary of the collection, with one
// extra column per requested metadata key after a "|" divider. Entries
// without a requested key leave that cell blank. At most maxDisplayRanges
// entry rows are shown; the header carries the true count.
func (sc *SeqRanges) Show(keys ...string) string {
	title := fmt.Sprintf("SeqRanges with %d ranges", len(sc.entries))
	header := []string{"seqnames", "ranges", "strand"}
	dataSep := -1
	if len(keys) > 0 {
		dataSep = len(header)
		header = append(header, keys...)
	}

	n := len(sc.entries)
	if n > maxDisplayRanges {
		n = maxDisplayRanges
	}
	rows := make([][]string, 0, n)
	for _, sr := range sc.entries[:n] {
		row := []string{
			sr.seqname,
			fmt.Sprintf("[%d, %d]", sr.rng.start, sr.rng.end),
			string(sr.strand),
		}
		for _, key := range keys {
			if v, ok := sr.data[key]; ok {
				row = append(row, fmt.Sprint(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return formatTable(title, header, rows, dataSep)
}

// String renders the summary without metadata columns.
func (sc *SeqRanges) String() string {
	return sc.Show()
}
