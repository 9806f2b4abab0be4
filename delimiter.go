package tabpeek

import (
	"fmt"
	"unicode/utf8"
)

// ResolveDelimiter picks the field delimiter. An override always wins;
// otherwise tab-separated files use a tab and everything else a comma.
// It must not be consulted for [ColumnarBinary].
func ResolveDelimiter(format FileFormat, override *rune) rune {
	if override != nil {
		return *override
	}
	if format == DelimitedTab {
		return '\t'
	}
	return ','
}

// ParseDelimiter parses a --delimiter flag value. The value must be a single
// character; `\t` and "tab" are accepted as spellings of the tab character.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidArgument, s)
	}
	switch r {
	case 0, '"', '\r', '\n':
		return 0, fmt.Errorf("%w: delimiter %q cannot separate fields", ErrInvalidArgument, s)
	}
	return r, nil
}
