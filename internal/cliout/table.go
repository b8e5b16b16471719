// Package cliout renders orchestration plans for the command line.
package cliout

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Table is a simple fixed-column text table with colored headers.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow appends a row, widening columns as needed.
func (t *Table) AddRow(row []string) {
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)

	var cells []string
	for i, h := range t.headers {
		cells = append(cells, pad(h, t.widths[i]))
	}
	header.Fprintln(w, strings.Join(cells, "  "))

	var rule []string
	for _, width := range t.widths {
		rule = append(rule, strings.Repeat("-", width))
	}
	fmt.Fprintln(w, strings.Join(rule, "  "))

	for _, row := range t.rows {
		cells = cells[:0]
		for i, cell := range row {
			if i < len(t.widths) {
				cell = pad(cell, t.widths[i])
			}
			cells = append(cells, cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
