// Package gviz builds typed, column-oriented data tables and serializes
// them into the hybrid JSON/JavaScript-literal wire format consumed by the
// Google Charts DataTable API.
//
// Columns are registered first and frozen by the first row insertion; rows
// are validated and encoded eagerly when added, so [Table.Write] and
// [Table.Marshal] only join cached fragments:
//
//	t := gviz.New()
//	err := t.AddColumns(
//		gviz.Column{ID: "name", Label: "Name", Type: gviz.String},
//		gviz.Column{ID: "size", Label: "Size", Type: gviz.Number},
//	)
//	err = t.AddRow("widget", 15.6)
//	data, err := t.Marshal(gviz.FormatOpt{Pretty: true})
//
// # Columns and Rows
//
// Every column declares one of six types: [Date], [DateTime], [TimeOfDay],
// [Boolean], [Number], or [String]. The declared type alone governs how each
// cell's value is coerced; nothing is inferred from the value's own shape.
// Rows may be positional ([Table.AddRow]) or keyed by column id
// ([Table.AddRowMap]); keyed rows require every column to carry an id. Each
// entry may be a bare value, a [Cell] with an optional formatted label and
// extra metadata, or a map with "v"/"f"/"p" keys. Delimited text ingests
// through [Table.AddRowsCSV], and declarative column definitions load from
// [ColumnsFromJSON], [ColumnsFromYAML], or [ColumnsFromTOML].
//
// # Date Handling
//
// Cells in date-typed columns emit a raw, unquoted JavaScript literal as
// their "v": a Date constructor call for [Date] and [DateTime], a bracketed
// integer list for [TimeOfDay]. The value may be an explicit []int digit
// list (used verbatim), epoch seconds (decomposed in the zone set by the
// Location option of [TableOpt], default local time; full calendar year,
// zero-based month), a [time.Time], or an RFC 3339 string. Note that a [TimeOfDay]
// value decomposed from a clock keeps only the hour and the final digit of
// the tuple, matching the upstream wire behavior; pass explicit digits such
// as []int{6, 12, 1} for full hour/minute/second control.
//
// # Export
//
// The output envelope holds exactly two keys, "cols" then "rows". Compact
// mode emits no whitespace between structural tokens; pretty mode indents
// four spaces per nesting level. The Columns option of [FormatOpt] projects
// and reorders columns (and every row's cells) by id without mutating the
// table.
// [Table.Preview] renders a bordered terminal view for debugging.
//
// # Diagnostics
//
// Fatal validation problems surface as errors wrapping [ErrSchema] or
// [ErrEncoding]. Stylistic schema issues, such as a column id that collides
// with a JavaScript reserved word, are pedantic warnings: they flow to the
// sink configured via the Warn option of [TableOpt] (default: collected on
// the table, see [Table.Warnings]) and never affect control flow. The Quiet
// option turns them off.
//
// # Concurrency
//
// A [Table] is not safe for concurrent use. Column metadata and row
// encoding are cross-referential, so share a table across goroutines only
// behind external synchronization covering the whole table.
package gviz
