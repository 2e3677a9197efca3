package summary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// tablePadding is the blank space on each side of a cell
const tablePadding = 1

// PrintTable renders rows as a box-drawn table with the report columns.
// Labels are left-aligned, numbers right-aligned.
func PrintTable(w io.Writer, rows []EndpointSummary) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}

	widths := make([]int, len(Header))
	for i, col := range Header {
		widths[i] = utf8.RuneCountInString(col)
	}
	for _, record := range records {
		for i, field := range record {
			widths[i] = max(widths[i], utf8.RuneCountInString(field))
		}
	}

	var out strings.Builder
	out.WriteString(drawTableDivider(widths, "┌", "┬", "┐", "─"))
	out.WriteString(drawTableRow(Header, widths, false))
	out.WriteString(drawTableDivider(widths, "├", "┼", "┤", "─"))
	for _, record := range records {
		out.WriteString(drawTableRow(record, widths, true))
	}
	out.WriteString(drawTableDivider(widths, "└", "┴", "┘", "─"))
	fmt.Fprintf(&out, "%d endpoints\n", len(rows))

	_, err := io.WriteString(w, out.String())
	return err
}

func drawTableRow(columns []string, widths []int, alignNumbers bool) string {
	var row strings.Builder
	pad := strings.Repeat(" ", tablePadding)

	row.WriteString("│")
	for i, col := range columns {
		fill := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(col))

		row.WriteString(pad)
		if alignNumbers && i > 0 {
			row.WriteString(fill)
			row.WriteString(col)
		} else {
			row.WriteString(col)
			row.WriteString(fill)
		}
		row.WriteString(pad)
		row.WriteString("│")
	}
	row.WriteString("\n")
	return row.String()
}

func drawTableDivider(widths []int, left, mid, right, fill string) string {
	var divider strings.Builder
	divider.WriteString(left)
	for i, width := range widths {
		divider.WriteString(strings.Repeat(fill, width+2*tablePadding))
		if i < len(widths)-1 {
			divider.WriteString(mid)
		}
	}
	divider.WriteString(right)
	divider.WriteString("\n")
	return divider.String()
}
