package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedStyle  = errors.New("unsupported style")
	ErrUnsupportedBorder = errors.New("unsupported border")
)

// Ellipsis stands in for elided rows and columns.
const Ellipsis = "…"

// Style selects the table layout.
type Style int

const (
	StyleBox Style = iota
	StyleMarkdown
)

func (s Style) String() string {
	switch s {
	case StyleBox:
		return "box"
	case StyleMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// --- Core Interfaces ---

// Source provides the cells of a table.
type Source interface {
	Header() []string
	NumRows() int
	Row(i int) []string
}

// --- Optional Interfaces ---

// Aligned sets per-column alignment.
// Default: AlignLeft. Also used by Markdown for alignment markers.
type Aligned interface {
	Alignments() []Alignment
}

// Typed provides a type label per column, drawn under the header in box
// style.
type Typed interface {
	Types() []string
}

// Captioned renders a line below the table.
// Default: no caption.
type Captioned interface {
	Caption() string
}

// --- Value Types ---

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = []struct {
	name  string
	style BorderStyle
}{
	{"rounded", BorderRounded},
	{"none", BorderNone},
	{"ascii", BorderASCII},
	{"heavy", BorderHeavy},
	{"double", BorderDouble},
}

func (b BorderStyle) String() string {
	for _, n := range borderNames {
		if n.style == b {
			return n.name
		}
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border name such as "rounded" or "ascii".
func ParseBorder(s string) (BorderStyle, error) {
	names := make([]string, len(borderNames))
	for i, n := range borderNames {
		if n.name == s {
			return n.style, nil
		}
		names[i] = n.name
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedBorder, s, strings.Join(names, ", "))
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Options is the presentation state of one rendering call.
type Options struct {
	Style  Style
	Border BorderStyle
	// MaxRows caps the rows drawn; the middle rows are elided. Zero means
	// unbounded.
	MaxRows int
	// MaxCols caps the columns drawn; the middle columns are elided. Zero
	// means unbounded.
	MaxCols int
	// MaxColWidth truncates wider cells with "...". Zero means no limit.
	MaxColWidth int
	ShowTypes   bool
	ShowCaption bool
}

// DefaultOptions returns rounded box tables with types and caption and no
// row or column limits.
func DefaultOptions() Options {
	return Options{
		Style:       StyleBox,
		Border:      BorderRounded,
		ShowTypes:   true,
		ShowCaption: true,
	}
}

// Write renders src to w.
func Write(w io.Writer, src Source, opts Options) error {
	g := layout(src, opts)
	var err error
	switch opts.Style {
	case StyleBox:
		err = writeTable(w, g, opts)
	case StyleMarkdown:
		err = writeMarkdown(w, g)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedStyle, opts.Style)
	}
	if err != nil {
		return err
	}
	if g.caption != "" {
		if _, err := fmt.Fprintln(w, g.caption); err != nil {
			return err
		}
	}
	return nil
}

// grid is a source reduced to the rows and columns that are drawn.
type grid struct {
	header  []string
	types   []string
	rows    [][]string
	aligns  []Alignment
	caption string
}

func layout(src Source, opts Options) grid {
	var g grid
	cols := visible(len(src.Header()), opts.MaxCols)
	g.header = pick(src.Header(), cols, Ellipsis)

	if t, ok := src.(Typed); ok && opts.ShowTypes && opts.Style == StyleBox {
		g.types = pick(t.Types(), cols, "")
	}

	var aligns []Alignment
	if a, ok := src.(Aligned); ok {
		aligns = a.Alignments()
	}
	g.aligns = make([]Alignment, len(cols))
	for i, c := range cols {
		if c >= 0 && c < len(aligns) {
			g.aligns[i] = aligns[c]
		}
	}

	for _, r := range visible(src.NumRows(), opts.MaxRows) {
		if r < 0 {
			row := make([]string, len(cols))
			for i := range row {
				row[i] = Ellipsis
			}
			g.rows = append(g.rows, row)
			continue
		}
		g.rows = append(g.rows, pick(src.Row(r), cols, Ellipsis))
	}

	if c, ok := src.(Captioned); ok && opts.ShowCaption {
		g.caption = c.Caption()
	}
	return g
}

// visible returns the indices drawn out of n when at most limit fit; -1
// marks the elision point. The first half is kept and the rest comes from
// the end.
func visible(n, limit int) []int {
	if limit <= 0 || n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	head := (limit + 1) / 2
	tail := limit - head
	idx := make([]int, 0, limit+1)
	for i := range head {
		idx = append(idx, i)
	}
	idx = append(idx, -1)
	for i := n - tail; i < n; i++ {
		idx = append(idx, i)
	}
	return idx
}

func pick(cells []string, idx []int, elided string) []string {
	out := make([]string, len(idx))
	for i, c := range idx {
		switch {
		case c < 0:
			out[i] = elided
		case c < len(cells):
			out[i] = cells[c]
		}
	}
	return out
}
