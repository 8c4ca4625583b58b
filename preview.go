package gviz

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls preview border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// PreviewOpt configures Preview. The zero value means defaults; later
// options override earlier ones field by field.
type PreviewOpt struct {
	// Border selects the border character set. Default BorderRounded.
	Border BorderStyle

	// MaxWidth caps every column's width; longer cells are truncated with
	// "...". Zero means no limit.
	MaxWidth int
}

// Preview renders the table as a bordered text grid for terminals: a header
// row of column labels (falling back to id, then type) and one line per data
// row showing each cell's display string (f when present, the raw date
// literal for date types, compact JSON of v otherwise). Width math is
// rune-aware, so full-width characters stay aligned. Debugging aid only; the
// serialized export is authoritative. A table with no columns writes
// nothing.
func (t *Table) Preview(w io.Writer, opts ...PreviewOpt) error {
	if len(t.cols) == 0 {
		return nil
	}
	var o PreviewOpt
	for _, opt := range opts {
		if opt.Border != BorderRounded {
			o.Border = opt.Border
		}
		if opt.MaxWidth > 0 {
			o.MaxWidth = opt.MaxWidth
		}
	}

	header := make([]string, len(t.cols))
	for i, c := range t.cols {
		header[i] = c.heading()
	}
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.disp
	}

	widths := previewWidths(header, rows)
	if o.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > o.MaxWidth {
				widths[i] = o.MaxWidth
			}
		}
	}

	bc := borderSets[o.Border]
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawRow(w, header, widths, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func previewWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" ")
		sb.WriteString(formatPreviewCell(cell, width))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatPreviewCell(s string, width int) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
