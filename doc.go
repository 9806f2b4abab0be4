// Package tabpeek resolves the configuration of a table preview.
//
// A preview reads a delimited-text or Parquet file (or standard input) and
// prints one view of it: every row, the first or last rows, a random sample,
// summary statistics or the column names. This package holds the decisions
// made before any data is read; loading and rendering live in internal
// packages.
//
// # Resolution
//
// [Validate] turns a [RawArgs] into a [ResolvedConfig]:
//
//   - [ResolveFormat] infers a [FileFormat] from the path extension
//     (.csv, .tsv, .parquet; anything else is [Unknown] and read as
//     comma-delimited text)
//   - [ResolveDelimiter] applies an explicit delimiter over the format default
//   - [ResolveRowBudget] decides how many rows the loader must materialize
//
// Row budget precedence is strict:
//
//	columns-only  → Bounded(1)
//	tail, sample  → Unbounded
//	--max-rows N  → Bounded(N)
//	head          → Bounded(10)
//	otherwise     → Unbounded
//
// # Errors
//
// Failures wrap one of the exported sentinels:
//
//   - [ErrConflictingFlags]: two flags that cannot be combined ([ConflictError])
//   - [ErrInvalidArgument]: a malformed flag value
//   - [ErrUnrecognizedFormat]: unknown --format, or an unknown extension with --strict
//   - [ErrSourceNotFound]: the path is not a regular file
//   - [ErrUnreadableSource]: reading failed
//   - [ErrUnparseableSource]: the content is malformed
package tabpeek
