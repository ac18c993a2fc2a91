// Package mdtable lays out Markdown tables whose source text lines up.
package mdtable

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Align selects a column's alignment marker and padding side.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign maps "left", "center" and "right" onto an Align.
func ParseAlign(raw string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown column alignment %q", raw)
}

// Column is a rendered column: header line, separator line, then one line per
// row. Every line has the same display width.
type Column []string

// RenderColumn renders one column, sizing it to its widest cell.
func RenderColumn(header string, rows []string, align Align) Column {
	w := DisplayWidth(header)
	for _, row := range rows {
		if rw := DisplayWidth(row); rw > w {
			w = rw
		}
	}

	colonL, colonR := " ", " "
	if align == AlignLeft || align == AlignCenter {
		colonL = ":"
	}
	if align == AlignRight || align == AlignCenter {
		colonR = ":"
	}

	col := make(Column, 0, len(rows)+2)
	col = append(col, cell(header, w, align))
	col = append(col, "|"+colonL+strings.Repeat("-", w)+colonR)
	for _, row := range rows {
		col = append(col, cell(row, w, align))
	}
	return col
}

// RenderTable joins same-index lines of every column and closes each line
// with the trailing separator. All columns must have the same number of lines.
func RenderTable(cols ...Column) string {
	if len(cols) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range cols[0] {
		for _, col := range cols {
			b.WriteString(col[i])
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// DisplayWidth counts terminal cells: East Asian wide and fullwidth runes take
// two, combining marks none.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		case isWide(r):
			n += 2
		default:
			n++
		}
	}
	return n
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// cell pads content to w cells. Centered cells pad like left-aligned ones;
// the separator's colons carry the alignment.
func cell(content string, w int, align Align) string {
	pad := strings.Repeat(" ", max(0, w-DisplayWidth(content)))
	if align == AlignRight {
		return "| " + pad + content + " "
	}
	return "| " + content + pad + " "
}
