package tabpeek

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stdin is the source identifier meaning "read from standard input".
const Stdin = "-"

// FileFormat identifies how a source is parsed.
type FileFormat int

const (
	Unknown FileFormat = iota
	DelimitedComma
	DelimitedTab
	ColumnarBinary
)

var formatNames = map[FileFormat]string{
	Unknown:        "unknown",
	DelimitedComma: "csv",
	DelimitedTab:   "tsv",
	ColumnarBinary: "parquet",
}

// String returns the short format name used by the --format flag.
func (f FileFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FileFormat(%d)", int(f))
}

// Delimited reports whether the format is read as delimited text.
// Unknown is read as delimited text.
func (f FileFormat) Delimited() bool {
	return f != ColumnarBinary
}

// Formats returns the names accepted by [ParseFormat].
func Formats() []string {
	return []string{"csv", "tsv", "parquet"}
}

// ResolveFormat maps a source identifier to a FileFormat using its extension.
// The extension is case-sensitive. Stdin and unrecognized or missing
// extensions yield Unknown.
func ResolveFormat(source string) FileFormat {
	if source == Stdin || source == "" {
		return Unknown
	}
	base := filepath.Base(source)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return Unknown
	}
	switch base[i+1:] {
	case "csv":
		return DelimitedComma
	case "tsv":
		return DelimitedTab
	case "parquet":
		return ColumnarBinary
	default:
		return Unknown
	}
}

// ParseFormat parses a --format flag value.
func ParseFormat(s string) (FileFormat, error) {
	for f, name := range formatNames {
		if f != Unknown && name == s {
			return f, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q (want one of %s)", ErrUnrecognizedFormat, s, strings.Join(Formats(), ", "))
}
