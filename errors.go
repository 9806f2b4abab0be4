package tabpeek

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. Every failure surfaced by
// the tool wraps exactly one of them.
var (
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	ErrSourceNotFound     = errors.New("source not found")
	ErrUnreadableSource   = errors.New("unreadable source")
	ErrUnparseableSource  = errors.New("unparseable source")
)

// ConflictError reports two flags that cannot be combined.
// It matches [ErrConflictingFlags] with [errors.Is].
type ConflictError struct {
	First  string
	Second string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: --%s cannot be used with --%s", ErrConflictingFlags, e.First, e.Second)
}

// Is reports whether target is [ErrConflictingFlags].
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictingFlags
}

// IsUsageError reports whether err was caused by the command line itself
// rather than by the data source.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrUnrecognizedFormat)
}
