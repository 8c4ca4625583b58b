package gviz

import "fmt"

// Cell is one value occupying one (row, column) position. The zero value is
// a null cell.
type Cell struct {
	// V is the cell value. Its interpretation is governed solely by the
	// column's declared type, never inferred from the value's own shape.
	// A nil V encodes as null for every column type.
	V any

	// F is an optional display label. It must be string-coercible.
	F any

	// P is opaque extra metadata carried into the output's "p" field.
	// It must be JSON-encodable.
	P any
}

// toCell normalizes one raw row entry into a Cell. Accepted shapes: nil
// (null cell), Cell or *Cell, a map with "v"/"f"/"p" keys (the loose surface
// for data arriving from decoded JSON), or a bare value, which is shorthand
// for Cell{V: value}. Unrecognized map keys warn in pedantic mode.
func (t *Table) toCell(v any) (Cell, error) {
	switch x := v.(type) {
	case nil:
		return Cell{}, nil
	case Cell:
		return x, nil
	case *Cell:
		if x == nil {
			return Cell{}, nil
		}
		return *x, nil
	case map[string]any:
		var c Cell
		for k, val := range x {
			switch k {
			case "v":
				c.V = val
			case "f":
				c.F = val
			case "p":
				c.P = val
			default:
				t.warn(WarnCellKey, "", fmt.Sprintf("unrecognized cell key %q", k))
			}
		}
		return c, nil
	default:
		return Cell{V: v}, nil
	}
}
