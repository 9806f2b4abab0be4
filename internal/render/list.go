package render

import (
	"io"
	"strings"
)

// WriteList writes items one per line.
func WriteList(w io.Writer, items []string) error {
	if len(items) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(items, "\n")+"\n")
	return err
}
