package tabpeek

import (
	"fmt"
	"strings"
)

// Flag names as they appear on the command line, used in conflict errors.
const (
	FlagHead            = "head"
	FlagTail            = "tail"
	FlagSample          = "sample"
	FlagDescribe        = "describe"
	FlagColumnNamesOnly = "column-names-only"
	FlagMaxRows         = "max-rows"
	FlagSelect          = "select"
	FlagNoHeader        = "no-header"
	FlagMarkdown        = "markdown"
	FlagDelimiter       = "delimiter"
	FlagFormat          = "format"
)

// RawArgs is the unvalidated command line. Pointer fields are nil when the
// flag was not given.
type RawArgs struct {
	Path            string
	MaxRows         *int
	Delimiter       *string
	Select          *string
	Format          *string
	NoHeader        bool
	Head            bool
	Tail            bool
	Sample          bool
	Describe        bool
	ColumnNamesOnly bool
	Markdown        bool
	Strict          bool
	Seed            *uint64
}

// ResolvedConfig holds the effective settings of one invocation.
// It is built once by [Validate] and never modified.
type ResolvedConfig struct {
	Source     string
	Format     FileFormat
	Delimiter  rune
	HasHeader  bool
	Projection []string
	Budget     RowBudget
	Mode       ViewMode
	// Count is the explicit --max-rows value, zero when absent.
	Count    int
	Markdown bool
	Seed     *uint64
}

// FromStdin reports whether the source is standard input.
func (c ResolvedConfig) FromStdin() bool {
	return c.Source == Stdin
}

type namedFlag struct {
	name string
	set  bool
}

// Validate checks flag combinations and resolves the effective
// configuration. It performs no I/O.
func Validate(raw RawArgs) (ResolvedConfig, error) {
	if err := checkConflicts(raw); err != nil {
		return ResolvedConfig{}, err
	}

	cfg := ResolvedConfig{
		Source:    raw.Path,
		HasHeader: !raw.NoHeader,
		Mode:      modeOf(raw),
		Markdown:  raw.Markdown,
		Seed:      raw.Seed,
	}
	if cfg.Source == "" {
		cfg.Source = Stdin
	}

	if raw.MaxRows != nil {
		if *raw.MaxRows < 1 {
			return ResolvedConfig{}, fmt.Errorf("%w: --%s must be at least 1, got %d", ErrInvalidArgument, FlagMaxRows, *raw.MaxRows)
		}
		cfg.Count = *raw.MaxRows
	}

	if raw.Format != nil {
		f, err := ParseFormat(*raw.Format)
		if err != nil {
			return ResolvedConfig{}, err
		}
		cfg.Format = f
	} else {
		cfg.Format = ResolveFormat(cfg.Source)
		if cfg.Format == Unknown && raw.Strict {
			if cfg.FromStdin() {
				return ResolvedConfig{}, fmt.Errorf("%w: standard input has no extension, pass --%s", ErrUnrecognizedFormat, FlagFormat)
			}
			return ResolvedConfig{}, fmt.Errorf("%w: cannot infer format of %s from its extension", ErrUnrecognizedFormat, cfg.Source)
		}
	}

	if cfg.Format.Delimited() {
		var override *rune
		if raw.Delimiter != nil {
			r, err := ParseDelimiter(*raw.Delimiter)
			if err != nil {
				return ResolvedConfig{}, err
			}
			override = &r
		}
		cfg.Delimiter = ResolveDelimiter(cfg.Format, override)
	}

	if raw.Select != nil {
		cfg.Projection = ParseProjection(*raw.Select)
	}

	cfg.Budget = ResolveRowBudget(cfg.Mode, cfg.Count)
	return cfg, nil
}

// ParseProjection splits a --select value on commas. Names are kept exactly
// as written, in order, duplicates included.
func ParseProjection(s string) []string {
	return strings.Split(s, ",")
}

func modeOf(raw RawArgs) ViewMode {
	switch {
	case raw.ColumnNamesOnly:
		return ColumnsOnly
	case raw.Describe:
		return Describe
	case raw.Head:
		return Head
	case raw.Tail:
		return Tail
	case raw.Sample:
		return Sample
	default:
		return Full
	}
}

func checkConflicts(raw RawArgs) error {
	modes := []namedFlag{
		{FlagHead, raw.Head},
		{FlagTail, raw.Tail},
		{FlagSample, raw.Sample},
	}
	for i, a := range modes {
		for _, b := range modes[i+1:] {
			if a.set && b.set {
				return &ConflictError{First: a.name, Second: b.name}
			}
		}
	}

	if raw.ColumnNamesOnly {
		others := append(modes,
			namedFlag{FlagMaxRows, raw.MaxRows != nil},
			namedFlag{FlagSelect, raw.Select != nil},
			namedFlag{FlagNoHeader, raw.NoHeader},
			namedFlag{FlagDescribe, raw.Describe},
			namedFlag{FlagMarkdown, raw.Markdown},
		)
		for _, o := range others {
			if o.set {
				return &ConflictError{First: FlagColumnNamesOnly, Second: o.name}
			}
		}
	}

	if raw.Describe {
		for _, m := range modes {
			if m.set {
				return &ConflictError{First: FlagDescribe, Second: m.name}
			}
		}
	}
	return nil
}
