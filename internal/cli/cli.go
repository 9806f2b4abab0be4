// Package cli is the tabpeek command line.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/loader"
	"github.com/bjaus/tabpeek/internal/settings"
	"github.com/bjaus/tabpeek/internal/view"
)

// Version is reported by --version. It is set at link time.
var Version = "dev"

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by [Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case tabpeek.IsUsageError(err):
		return ExitUsage
	default:
		return ExitError
	}
}

// Run executes the command with args (without the program name). Output is
// written to stdout only when the whole invocation succeeds.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

type flags struct {
	maxRows         int
	delimiter       string
	selection       string
	format          string
	noHeader        bool
	head            bool
	tail            bool
	sample          bool
	describe        bool
	columnNamesOnly bool
	markdown        bool
	strict          bool
	seed            uint64
	config          string
	verbose         int
}

// NewCommand returns the root command reading piped data from stdin.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "tabpeek [filepath]",
		Short: "Preview CSV, TSV and Parquet files in the terminal",
		Long: `tabpeek prints a table view of a delimited-text or Parquet file.

The format is inferred from the extension (.csv, .tsv, .parquet). Anything
else, including standard input ("-" or no path), is read as comma-delimited
text unless --format or --delimiter say otherwise.`,
		Example: `  tabpeek data.csv --head
  tabpeek data.parquet -s name,age -n 20
  tabpeek data.tsv --describe
  cat data.txt | tabpeek -d ';' --sample -n 5 --seed 42`,
		Version:       Version,
		Args:          maxArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", tabpeek.ErrInvalidArgument, err)
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.IntVarP(&f.maxRows, tabpeek.FlagMaxRows, "n", 0, "number of rows to load (head default: 10)")
	fs.StringVarP(&f.delimiter, tabpeek.FlagDelimiter, "d", "", "field delimiter for delimited text (a single character, or \\t)")
	fs.StringVarP(&f.selection, tabpeek.FlagSelect, "s", "", "comma-separated columns to keep, in output order")
	fs.BoolVar(&f.noHeader, tabpeek.FlagNoHeader, false, "treat the first row as data; columns are named column_1..column_n")
	fs.BoolVar(&f.head, tabpeek.FlagHead, false, "show the first rows")
	fs.BoolVar(&f.tail, tabpeek.FlagTail, false, "show the last rows")
	fs.BoolVar(&f.sample, tabpeek.FlagSample, false, "show randomly sampled rows")
	fs.BoolVarP(&f.describe, tabpeek.FlagDescribe, "D", false, "show summary statistics")
	fs.BoolVarP(&f.columnNamesOnly, tabpeek.FlagColumnNamesOnly, "c", false, "print only the column names")
	fs.BoolVarP(&f.markdown, tabpeek.FlagMarkdown, "m", false, "render a markdown table")
	fs.StringVarP(&f.format, tabpeek.FlagFormat, "f", "", "input format: csv, tsv or parquet (default: from the extension)")
	fs.BoolVar(&f.strict, "strict", false, "fail when the format cannot be inferred from the extension")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for --sample")
	fs.StringVar(&f.config, "config", "", "config file (default: $"+settings.EnvVar+" or <config dir>/tabpeek/config.yaml)")
	fs.CountVarP(&f.verbose, "verbose", "v", "log to stderr; repeat for more detail")
	return cmd
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", tabpeek.ErrInvalidArgument, err)
		}
		return nil
	}
}

// rawArgs builds the unvalidated command line. Optional values are set only
// for flags that were given.
func (f *flags) rawArgs(fs *pflag.FlagSet, args []string) tabpeek.RawArgs {
	raw := tabpeek.RawArgs{
		NoHeader:        f.noHeader,
		Head:            f.head,
		Tail:            f.tail,
		Sample:          f.sample,
		Describe:        f.describe,
		ColumnNamesOnly: f.columnNamesOnly,
		Markdown:        f.markdown,
		Strict:          f.strict,
	}
	if len(args) > 0 {
		raw.Path = args[0]
	}
	if fs.Changed(tabpeek.FlagMaxRows) {
		raw.MaxRows = &f.maxRows
	}
	if fs.Changed(tabpeek.FlagDelimiter) {
		raw.Delimiter = &f.delimiter
	}
	if fs.Changed(tabpeek.FlagSelect) {
		raw.Select = &f.selection
	}
	if fs.Changed(tabpeek.FlagFormat) {
		raw.Format = &f.format
	}
	if fs.Changed("seed") {
		raw.Seed = &f.seed
	}
	return raw
}

func run(cmd *cobra.Command, args []string, f *flags, stdin io.Reader, stdout, stderr io.Writer) error {
	log := newLogger(stderr, f.verbose)
	ctx := logr.NewContext(cmd.Context(), log)

	cfg, err := tabpeek.Validate(f.rawArgs(cmd.Flags(), args))
	if err != nil {
		return err
	}
	log.V(1).Info("resolved config",
		"source", cfg.Source, "format", cfg.Format.String(), "mode", cfg.Mode.String(),
		"budget", cfg.Budget.String(), "header", cfg.HasHeader, "projection", cfg.Projection)

	path, required := settings.Path(f.config)
	s, err := settings.Load(path, required)
	if err != nil {
		return fmt.Errorf("%w: %w", tabpeek.ErrInvalidArgument, err)
	}
	base, err := s.Options()
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	log.V(2).Info("presentation", "config", path, "border", base.Border.String(), "maxRows", base.MaxRows, "maxCols", base.MaxCols)

	table, err := loader.New(stdin).Load(ctx, loader.RequestFor(cfg))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := view.Dispatch(&buf, cfg, table, view.Options(cfg, base), view.NewRand(cfg.Seed)); err != nil {
		return err
	}
	if _, err := buf.WriteTo(stdout); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// newLogger logs to w at the given verbosity; zero logs errors only.
func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(w, prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}
