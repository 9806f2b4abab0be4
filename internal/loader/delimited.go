package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bjaus/tabpeek"
	"github.com/bjaus/tabpeek/internal/frame"
)

var (
	errEmpty       = errors.New("no rows")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

const bom = "\ufeff"

// readDelimited parses delimited text, keeping at most req.Budget data rows.
// Every record must have as many fields as the first one.
func readDelimited(r io.Reader, req Request) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = req.Delimiter
	cr.FieldsPerRecord = 0

	read := func() ([]string, error) {
		rec, err := cr.Read()
		if err == nil {
			for _, field := range rec {
				if !utf8.ValidString(field) {
					line, _ := cr.FieldPos(0)
					return nil, fmt.Errorf("%w on line %d", errInvalidUTF8, line)
				}
			}
			return rec, nil
		}
		var perr *csv.ParseError
		if errors.Is(err, io.EOF) || errors.As(err, &perr) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", tabpeek.ErrUnreadableSource, err)
	}

	var names []string
	if req.HasHeader {
		rec, err := read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", errEmpty)
		}
		if err != nil {
			return nil, err
		}
		rec[0] = strings.TrimPrefix(rec[0], bom)
		names = rec
	}

	var records [][]string
	for i := 0; req.Budget.Allows(i); i++ {
		rec, err := read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if i == 0 && !req.HasHeader {
			rec[0] = strings.TrimPrefix(rec[0], bom)
		}
		records = append(records, rec)
	}

	if !req.HasHeader {
		if len(records) == 0 {
			return nil, errEmpty
		}
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("column_%d", i+1)
		}
	}
	return frame.FromRecords(names, records)
}
