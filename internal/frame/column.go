package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the data type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDatetime
	KindOther
)

// String returns the short type name shown under column headers.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "i64"
	case KindFloat:
		return "f64"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDatetime:
		return "datetime"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Numeric reports whether values of the kind carry a float64.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is a named, typed sequence of cells. Every cell has a display text;
// numeric kinds also carry a float64.
type Column struct {
	name string
	kind Kind
	text []string
	null []bool
	num  []float64
}

// NewColumn returns an empty column.
func NewColumn(name string, kind Kind) *Column {
	return &Column{name: name, kind: kind}
}

// Append adds a non-null cell. v is ignored for non-numeric kinds.
func (c *Column) Append(text string, v float64) {
	c.text = append(c.text, text)
	c.null = append(c.null, false)
	if c.kind.Numeric() {
		c.num = append(c.num, v)
	}
}

// AppendNull adds a null cell.
func (c *Column) AppendNull() {
	c.text = append(c.text, "")
	c.null = append(c.null, true)
	if c.kind.Numeric() {
		c.num = append(c.num, 0)
	}
}

func (c *Column) Name() string { return c.name }
func (c *Column) Kind() Kind   { return c.kind }
func (c *Column) Len() int     { return len(c.text) }

// Text returns the display text of cell i; null cells return "".
func (c *Column) Text(i int) string { return c.text[i] }

// IsNull reports whether cell i is null.
func (c *Column) IsNull(i int) bool { return c.null[i] }

// Float returns the numeric value of cell i. ok is false for null cells and
// non-numeric kinds.
func (c *Column) Float(i int) (v float64, ok bool) {
	if !c.kind.Numeric() || c.null[i] {
		return 0, false
	}
	return c.num[i], true
}

func (c *Column) slice(i, j int) *Column {
	out := &Column{name: c.name, kind: c.kind, text: c.text[i:j], null: c.null[i:j]}
	if c.kind.Numeric() {
		out.num = c.num[i:j]
	}
	return out
}

func (c *Column) take(idx []int) *Column {
	out := &Column{
		name: c.name,
		kind: c.kind,
		text: make([]string, len(idx)),
		null: make([]bool, len(idx)),
	}
	if c.kind.Numeric() {
		out.num = make([]float64, len(idx))
	}
	for k, i := range idx {
		out.text[k] = c.text[i]
		out.null[k] = c.null[i]
		if out.num != nil {
			out.num[k] = c.num[i]
		}
	}
	return out
}

// inferColumn detects the kind of raw text cells. Empty cells are null and
// do not take part in detection. A column of only nulls is a string column.
func inferColumn(name string, cells []string) *Column {
	kind := detectKind(cells)
	c := &Column{name: name, kind: kind}
	for _, s := range cells {
		if s == "" {
			c.AppendNull()
			continue
		}
		var v float64
		switch kind {
		case KindInt:
			n, _ := strconv.ParseInt(s, 10, 64)
			v = float64(n)
		case KindFloat:
			v, _ = strconv.ParseFloat(s, 64)
		case KindBool:
			s = strings.ToLower(s)
		}
		c.Append(s, v)
	}
	return c
}

func detectKind(cells []string) Kind {
	isInt, isFloat, isBool := true, true, true
	seen := false
	for _, s := range cells {
		if s == "" {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat && !isInt {
			if v, err := strconv.ParseFloat(s, 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				isFloat = false
			}
		}
		if isBool && !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
			isBool = false
		}
		if !isInt && !isFloat && !isBool {
			return KindString
		}
	}
	switch {
	case !seen:
		return KindString
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	default:
		return KindString
	}
}
