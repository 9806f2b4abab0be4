// Package loader reads a source into a [frame.Frame].
//
// Delimited text is parsed with encoding/csv; Parquet goes through the
// arrow-go parquet reader. Standard input is buffered completely before
// parsing, so both formats can be read from a pipe.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-logr/logr"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/frame"
)

// Request describes what to load.
type Request struct {
	Source     string
	Format     tabpeek.FileFormat
	Delimiter  rune
	HasHeader  bool
	Projection []string
	Budget     tabpeek.RowBudget
}

// RequestFor builds the request of a resolved configuration.
func RequestFor(cfg tabpeek.ResolvedConfig) Request {
	return Request{
		Source:     cfg.Source,
		Format:     cfg.Format,
		Delimiter:  cfg.Delimiter,
		HasHeader:  cfg.HasHeader,
		Projection: cfg.Projection,
		Budget:     cfg.Budget,
	}
}

// Loader loads tables from files or standard input.
type Loader struct {
	stdin io.Reader
	mem   memory.Allocator
}

// Option configures a Loader.
type Option func(*Loader)

// WithAllocator sets the arrow allocator used for Parquet reads.
func WithAllocator(mem memory.Allocator) Option {
	return func(l *Loader) { l.mem = mem }
}

// New returns a Loader that reads the stdin source from stdin.
func New(stdin io.Reader, opts ...Option) *Loader {
	l := &Loader{stdin: stdin, mem: memory.DefaultAllocator}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// source is what both readers need: sequential reads for delimited text and
// random access for the Parquet footer.
type source interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

// Load reads req.Source. Errors wrap [tabpeek.ErrSourceNotFound],
// [tabpeek.ErrUnreadableSource] or [tabpeek.ErrUnparseableSource].
func (l *Loader) Load(ctx context.Context, req Request) (*frame.Frame, error) {
	log := logr.FromContextOrDiscard(ctx)

	if req.Source == tabpeek.Stdin {
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: standard input: %w", tabpeek.ErrUnreadableSource, err)
		}
		log.V(1).Info("buffered standard input", "bytes", len(data))
		return l.parse(ctx, "standard input", bytes.NewReader(data), req)
	}

	info, err := os.Stat(req.Source)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: no such file %s", tabpeek.ErrSourceNotFound, req.Source)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", tabpeek.ErrUnreadableSource, err)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%w: %s is not a regular file", tabpeek.ErrSourceNotFound, req.Source)
	}

	f, err := os.Open(req.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tabpeek.ErrUnreadableSource, err)
	}
	defer f.Close()
	log.V(1).Info("opened file", "path", req.Source, "bytes", info.Size())
	return l.parse(ctx, req.Source, f, req)
}

func (l *Loader) parse(ctx context.Context, name string, src source, req Request) (*frame.Frame, error) {
	var (
		f   *frame.Frame
		err error
	)
	if req.Format == tabpeek.ColumnarBinary {
		f, err = readParquet(ctx, src, req, l.mem)
	} else {
		f, err = readDelimited(src, req)
	}
	if err != nil {
		if errors.Is(err, tabpeek.ErrUnreadableSource) {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", tabpeek.ErrUnparseableSource, name, err)
	}

	if req.Projection != nil {
		if f, err = f.Select(req.Projection); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", tabpeek.ErrUnparseableSource, name, err)
		}
	}

	logr.FromContextOrDiscard(ctx).V(1).Info("loaded table",
		"source", name, "format", req.Format.String(), "budget", req.Budget.String(),
		"rows", f.NumRows(), "columns", f.NumCols())
	return f, nil
}
