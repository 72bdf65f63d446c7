// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package preview prints the first rows of a table to the console.
package preview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/pdiddy/senate-rosters/internal/export"
)

// DefaultRows is the number of rows shown when no limit is configured.
const DefaultRows = 5

// missing is printed in place of a nil cell.
const missing = "None"

// Head writes title followed by the first n rows of t, each prefixed with
// its row index. An empty table prints "Empty table" with its column list.
func Head(w io.Writer, title string, t export.Table, n int) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	if t.Len() == 0 {
		_, err := fmt.Fprintf(w, "Empty table\nColumns: %v\n", t.Columns)
		return err
	}
	if n > t.Len() {
		n = t.Len()
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetColumnSeparator("")
	tw.SetHeaderLine(false)
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	tw.SetHeader(append([]string{""}, t.Columns...))
	for i, row := range t.Rows[:n] {
		record := make([]string, 0, len(row)+1)
		record = append(record, strconv.Itoa(i))
		for _, cell := range row {
			if cell == nil {
				record = append(record, missing)
			} else {
				record = append(record, *cell)
			}
		}
		tw.Append(record)
	}
	tw.Render()
	return nil
}
