// Package view turns a loaded table into the output of one view mode.
package view

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/frame"
	"github.com/bjaus/tabpeek/internal/render"
)

// Options returns the presentation for cfg on top of base. Markdown tables
// never elide columns.
func Options(cfg tabpeek.ResolvedConfig, base render.Options) render.Options {
	opts := base
	if cfg.Markdown {
		opts.Style = render.StyleMarkdown
		opts.MaxCols = 0
	}
	return opts
}

// NewRand returns the generator used by the sample view. A nil seed draws
// a fresh one.
func NewRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// Dispatch writes the view of f selected by cfg.Mode to w.
func Dispatch(w io.Writer, cfg tabpeek.ResolvedConfig, f *frame.Frame, opts render.Options, rng *rand.Rand) error {
	switch cfg.Mode {
	case tabpeek.ColumnsOnly:
		return render.WriteList(w, f.Names())
	case tabpeek.Describe:
		return render.Write(w, sheet{f.Describe()}, opts)
	case tabpeek.Head, tabpeek.Full:
		return render.Write(w, sheet{f}, opts)
	case tabpeek.Tail:
		return render.Write(w, sheet{f.Tail(countOr(cfg, f))}, opts)
	case tabpeek.Sample:
		if rng == nil {
			rng = NewRand(cfg.Seed)
		}
		return render.Write(w, sheet{f.Sample(countOr(cfg, f), rng)}, opts)
	default:
		return fmt.Errorf("%w: view mode %s", tabpeek.ErrInvalidArgument, cfg.Mode)
	}
}

// countOr is the explicit row count, or every row when none was given.
func countOr(cfg tabpeek.ResolvedConfig, f *frame.Frame) int {
	if cfg.Count > 0 {
		return cfg.Count
	}
	return f.NumRows()
}

// sheet presents a frame to the renderer.
type sheet struct{ f *frame.Frame }

func (s sheet) Header() []string   { return s.f.Names() }
func (s sheet) NumRows() int       { return s.f.NumRows() }
func (s sheet) Row(i int) []string { return s.f.Row(i) }

func (s sheet) Alignments() []render.Alignment {
	aligns := make([]render.Alignment, s.f.NumCols())
	for i, k := range s.f.Kinds() {
		if k.Numeric() {
			aligns[i] = render.AlignRight
		}
	}
	return aligns
}

func (s sheet) Types() []string {
	kinds := s.f.Kinds()
	types := make([]string, len(kinds))
	for i, k := range kinds {
		types[i] = k.String()
	}
	return types
}

func (s sheet) Caption() string {
	return fmt.Sprintf("shape: (%d, %d)", s.f.NumRows(), s.f.NumCols())
}
