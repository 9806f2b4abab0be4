// Package render draws tables for the terminal.
//
// [Write] takes a [Source] and an [Options] value and renders it in one of
// two styles:
//
//   - [StyleBox]: a bordered table ([BorderRounded] by default)
//   - [StyleMarkdown]: a GitHub-flavored Markdown table
//
// All presentation state travels in [Options]; nothing is read from the
// environment.
//
// # Interface Design
//
// A Source supplies the header and the rows. Optional interfaces enhance
// the rendering:
//
//   - [Aligned]: per-column alignment, also used for Markdown markers
//   - [Typed]: a type label under each header cell (box style only)
//   - [Captioned]: a line below the table
//
// # Limits
//
// [Options.MaxRows] and [Options.MaxCols] keep the first and last rows or
// columns and replace the middle with a single [Ellipsis] row or column.
// [Options.MaxColWidth] truncates wide cells with "...".
//
// # Lists
//
// [WriteList] prints one item per line, used for column names.
package render
