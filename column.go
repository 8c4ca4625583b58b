package gviz

import (
	"fmt"
	"regexp"
)

// Column describes one typed slot in every row.
type Column struct {
	// ID optionally names the column. Ids must be unique across the table,
	// and keyed row input requires every column to have one.
	ID string

	// Label is the display heading for the column.
	Label string

	// Type governs how every cell in this column is encoded. Required.
	Type ColumnType

	// Pattern is an opaque formatting hint passed through to the output.
	Pattern string

	// P is opaque extra metadata carried into the output's "p" field.
	// It must be JSON-encodable.
	P any
}

func (c Column) validate() error {
	if !c.Type.valid() {
		return fmt.Errorf("%w: unknown column type %q", ErrSchema, c.Type)
	}
	if c.P != nil {
		if _, err := marshalJSON(c.P); err != nil {
			return fmt.Errorf("%w: column %q: p failed to serialize: %v", ErrSchema, c.ID, err)
		}
	}
	return nil
}

// fragment serializes the column to its wire JSON object. Key order is the
// encoder's canonical lexical order, which keeps cached fragments byte-stable.
func (c Column) fragment() (string, error) {
	m := map[string]any{"type": c.Type.String()}
	if c.ID != "" {
		m["id"] = c.ID
	}
	if c.Label != "" {
		m["label"] = c.Label
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	if c.P != nil {
		m["p"] = c.P
	}
	return marshalJSON(m)
}

// heading is the preview header for the column.
func (c Column) heading() string {
	if c.Label != "" {
		return c.Label
	}
	if c.ID != "" {
		return c.ID
	}
	return c.Type.String()
}

// rebuild recomputes the registry's derived state from the column list: the
// id lookup, the all-columns-have-ids flag, and every column's cached JSON
// fragment.
func (t *Table) rebuild() error {
	t.idIndex = make(map[string]int, len(t.cols))
	t.allIDs = len(t.cols) > 0
	t.colJSON = make([]string, len(t.cols))
	for i, c := range t.cols {
		if c.ID != "" {
			t.idIndex[c.ID] = i
		} else {
			t.allIDs = false
		}
		frag, err := c.fragment()
		if err != nil {
			return fmt.Errorf("%w: column %q: %v", ErrSchema, c.ID, err)
		}
		t.colJSON[i] = frag
	}
	return nil
}

var idCharset = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// idWarnings runs the pedantic id checks. Diagnostics only, never control
// flow; the caller emits them once the whole batch has been committed, so
// rejected batches leave no warnings behind.
func idWarnings(id string) []Warning {
	var ws []Warning
	if !idCharset.MatchString(id) {
		ws = append(ws, Warning{Code: WarnIDCharset, Column: id, Message: "column id contains characters outside [A-Za-z0-9_]"})
	}
	if jsReserved[id] {
		ws = append(ws, Warning{Code: WarnIDReserved, Column: id, Message: "column id is a JavaScript reserved word"})
	}
	return ws
}
