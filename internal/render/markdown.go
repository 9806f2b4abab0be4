package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown(w io.Writer, g grid) error {
	numCols := len(g.header)
	if numCols == 0 {
		return nil
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for i, col := range g.header {
		widths[i] = max(runewidth.StringWidth(escapeMarkdown(col)), 3)
	}
	for _, row := range g.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(escapeMarkdown(cell)); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}

	if err := writeMarkdownRow(w, g.header, widths, g.aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch g.aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range g.rows {
		if err := writeMarkdownRow(w, row, widths, g.aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = escapeMarkdown(cells[i])
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// escapeMarkdown keeps a cell on one table row.
func escapeMarkdown(s string) string {
	if !strings.ContainsAny(s, "|\n\r") {
		return s
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.NewReplacer("\n", "<br>", "\r", "<br>").Replace(s)
}
