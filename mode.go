package tabpeek

import "fmt"

// ViewMode selects what is printed for the loaded table.
type ViewMode int

const (
	Full ViewMode = iota
	Head
	Tail
	Sample
	Describe
	ColumnsOnly
)

func (m ViewMode) String() string {
	switch m {
	case Full:
		return "full"
	case Head:
		return "head"
	case Tail:
		return "tail"
	case Sample:
		return "sample"
	case Describe:
		return "describe"
	case ColumnsOnly:
		return "columns-only"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}
