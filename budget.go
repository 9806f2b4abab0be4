package tabpeek

import "strconv"

// DefaultHeadRows is the page size of --head when no row count is given.
const DefaultHeadRows = 10

// RowBudget is the number of rows the loader may materialize.
// The zero value is Unbounded.
type RowBudget struct {
	n       int
	bounded bool
}

// Unbounded allows every row of the source.
var Unbounded = RowBudget{}

// Bounded allows at most n rows.
func Bounded(n int) RowBudget {
	return RowBudget{n: n, bounded: true}
}

// Limit returns the bound and whether there is one.
func (b RowBudget) Limit() (int, bool) {
	return b.n, b.bounded
}

// Allows reports whether a source row with zero-based index i may be kept.
func (b RowBudget) Allows(i int) bool {
	return !b.bounded || i < b.n
}

func (b RowBudget) String() string {
	if !b.bounded {
		return "unbounded"
	}
	return strconv.Itoa(b.n)
}

// ResolveRowBudget computes how many rows must be loaded for mode.
// count is the explicit --max-rows value, zero when absent.
//
// Precedence is strict: columns-only needs a single row; tail and sample need
// the whole table whatever the count; then an explicit count; then the head
// default.
func ResolveRowBudget(mode ViewMode, count int) RowBudget {
	switch {
	case mode == ColumnsOnly:
		return Bounded(1)
	case mode == Tail || mode == Sample:
		return Unbounded
	case count > 0:
		return Bounded(count)
	case mode == Head:
		return Bounded(DefaultHeadRows)
	default:
		return Unbounded
	}
}
