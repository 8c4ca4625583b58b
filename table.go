package gviz

import (
	"fmt"
	"time"
)

// Table is a typed, column-oriented data table. Columns are registered first
// and frozen once the first row arrives; rows are validated and serialized
// eagerly at insertion, so exports only join cached fragments.
//
// A Table is not safe for concurrent use. Column metadata and row encoding
// are cross-referential, so callers sharing a table across goroutines must
// synchronize around the whole table.
type Table struct {
	cols    []Column
	colJSON []string
	idIndex map[string]int
	allIDs  bool

	rows []encodedRow

	loc      *time.Location
	quiet    bool
	sink     func(Warning)
	warnings []Warning
}

// encodedRow is one ingested row: per column, the cached serialized cell
// fragment plus the display string used by Preview.
type encodedRow struct {
	frags []string
	disp  []string
}

// TableOpt configures a Table. The zero value means defaults; later options
// override earlier ones field by field, and zero fields leave the default in
// place.
type TableOpt struct {
	// Quiet suppresses pedantic diagnostics entirely. Default off, i.e.
	// pedantic mode is on.
	Quiet bool

	// Location is the time zone used to decompose epoch-second values in
	// date-typed cells. Default time.Local.
	Location *time.Location

	// Warn receives pedantic warnings as they are emitted. Default is to
	// collect them on the table, retrievable via Warnings.
	Warn func(Warning)
}

// New returns an empty table.
func New(opts ...TableOpt) *Table {
	t := &Table{
		idIndex: map[string]int{},
		loc:     time.Local,
	}
	for _, o := range opts {
		if o.Quiet {
			t.quiet = true
		}
		if o.Location != nil {
			t.loc = o.Location
		}
		if o.Warn != nil {
			t.sink = o.Warn
		}
	}
	if t.sink == nil {
		t.sink = func(w Warning) { t.warnings = append(t.warnings, w) }
	}
	return t
}

// AddColumn appends a single column. See AddColumns.
func (t *Table) AddColumn(col Column) error {
	return t.AddColumns(col)
}

// AddColumns validates and appends columns in input order, then rebuilds the
// registry's derived state (id lookup and cached column JSON). The whole
// batch is validated before anything is appended. Fails once any row exists:
// the column set is frozen by the first row insertion.
func (t *Table) AddColumns(cols ...Column) error {
	if len(t.rows) > 0 {
		return fmt.Errorf("%w: cannot add columns after rows exist", ErrSchema)
	}
	seen := make(map[string]struct{}, len(t.cols)+len(cols))
	for _, c := range t.cols {
		if c.ID != "" {
			seen[c.ID] = struct{}{}
		}
	}
	var pending []Warning
	for _, c := range cols {
		if err := c.validate(); err != nil {
			return err
		}
		if c.ID == "" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: duplicate column id %q", ErrSchema, c.ID)
		}
		seen[c.ID] = struct{}{}
		pending = append(pending, idWarnings(c.ID)...)
	}
	t.cols = append(t.cols, cols...)
	if err := t.rebuild(); err != nil {
		return err
	}
	for _, w := range pending {
		t.emit(w)
	}
	return nil
}

// AddRow appends one positional row. Entry i corresponds to column i; a nil
// entry, or a missing trailing entry, yields a null cell. Each entry may be
// a bare value, a Cell, or a map with "v"/"f"/"p" keys. The row is fully
// validated and encoded before it is stored, so a failing row is never
// partially committed.
func (t *Table) AddRow(cells ...any) error {
	return t.addPositional(cells)
}

// AddRowMap appends one keyed row mapping column ids to cells. Requires
// every column to have an id; keys must resolve to known column ids.
// Unspecified columns yield null cells.
func (t *Table) AddRowMap(cells map[string]any) error {
	if len(t.cols) == 0 {
		return fmt.Errorf("%w: no columns defined", ErrSchema)
	}
	if !t.allIDs {
		return fmt.Errorf("%w: keyed rows require every column to have an id", ErrSchema)
	}
	row := make([]Cell, len(t.cols))
	for id, v := range cells {
		idx, ok := t.idIndex[id]
		if !ok {
			return fmt.Errorf("%w: unknown column id %q", ErrSchema, id)
		}
		c, err := t.toCell(v)
		if err != nil {
			return err
		}
		row[idx] = c
	}
	return t.appendRow(row)
}

// AddRows appends a batch of rows. Each element is either a positional row
// ([]any) or a keyed row (map[string]any). The batch is not atomic:
// ingestion stops at the first invalid row, leaving earlier rows of the
// batch committed.
func (t *Table) AddRows(rows ...any) error {
	for i, r := range rows {
		var err error
		switch row := r.(type) {
		case []any:
			err = t.addPositional(row)
		case map[string]any:
			err = t.AddRowMap(row)
		default:
			err = fmt.Errorf("%w: unsupported row shape %T", ErrSchema, r)
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

// NumColumns returns the number of registered columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows returns the number of ingested rows.
func (t *Table) NumRows() int { return len(t.rows) }

// ColumnIDs returns the column ids in registration order, with an empty
// string at each position whose column has no id.
func (t *Table) ColumnIDs() []string {
	ids := make([]string, len(t.cols))
	for i, c := range t.cols {
		ids[i] = c.ID
	}
	return ids
}

func (t *Table) addPositional(entries []any) error {
	if len(t.cols) == 0 {
		return fmt.Errorf("%w: no columns defined", ErrSchema)
	}
	if len(entries) > len(t.cols) {
		t.warn(WarnRowWidth, "", fmt.Sprintf("row has %d entries for %d columns; extras ignored", len(entries), len(t.cols)))
	}
	row := make([]Cell, len(t.cols))
	for i := range t.cols {
		if i >= len(entries) {
			continue
		}
		c, err := t.toCell(entries[i])
		if err != nil {
			return err
		}
		row[i] = c
	}
	return t.appendRow(row)
}

// appendRow encodes every cell under its column's declared type, then
// commits the row. Encoding failures leave the table untouched.
func (t *Table) appendRow(cells []Cell) error {
	row := encodedRow{
		frags: make([]string, len(cells)),
		disp:  make([]string, len(cells)),
	}
	for i, c := range cells {
		frag, disp, err := encodeCell(t.cols[i].Type, c, t.loc)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		row.frags[i] = frag
		row.disp[i] = disp
	}
	t.rows = append(t.rows, row)
	return nil
}
